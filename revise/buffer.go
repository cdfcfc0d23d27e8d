/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package revise

import "github.com/ctessum/unit"

// NodeType tags the variant of a Buffer. The source models this with an
// implicit per-class type name; here it's a closed tagged enum, kept as
// a plain string tag rather than a Go sum type with variant structs so
// that C5a's "same node_type" partitioning stays a simple equality test.
type NodeType string

// The closed NodeType enumeration, grouped by subsystem.
const (
	GenC              NodeType = "GenC"
	GenS              NodeType = "GenS"
	LoadC             NodeType = "LoadC"
	LoadS             NodeType = "LoadS"
	StorageC          NodeType = "StorageC"
	StorageS          NodeType = "StorageS"
	Bus               NodeType = "Bus"
	CoalDock          NodeType = "CoalDock"
	CoalSource        NodeType = "CoalSource"
	CoalIndBuffer     NodeType = "CoalIndBuffer"
	NGProcessor       NodeType = "NGProcessor"
	NGReceiptDelivery NodeType = "NGReceiptDelivery"
	NGStorage         NodeType = "NGStorage"
	NGTerminal        NodeType = "NGTerminal"
	Compressor        NodeType = "Compressor"
	NGIndBuffer       NodeType = "NGIndBuffer"
	OilTerminal       NodeType = "OilTerminal"
	OilPort           NodeType = "OilPort"
	OilRefinery       NodeType = "OilRefinery"
	OilIndBuffer      NodeType = "OilIndBuffer"
)

// FuelEntry pairs a fuel/refinement with a capacity, the unit the
// source represents as parallel (fuelType, capacity) lists on
// generators. Carried as an opaque numeric attribute; never simulated.
type FuelEntry struct {
	Fuel     Refinement
	Capacity *unit.Unit
}

// Buffer is a point facility.
type Buffer struct {
	Name       string
	NodeType   NodeType
	X, Y       float64
	Refinements []Refinement
	Fuels      []FuelEntry
	Region     string // pre-declared state/ISO/NG-region, if any
	ISO        string
	Clusters   []Cluster
	Controllers []string
}

// HasRefinement reports whether b serves r.
func (b *Buffer) HasRefinement(r Refinement) bool {
	for _, x := range b.Refinements {
		if x == r {
			return true
		}
	}
	return false
}

// InCluster reports whether b participates in cluster c.
func (b *Buffer) InCluster(c Cluster) bool {
	for _, x := range b.Clusters {
		if x == c {
			return true
		}
	}
	return false
}

// addCluster appends c to b's cluster set if not already present.
func (b *Buffer) addCluster(c Cluster) {
	if !b.InCluster(c) {
		b.Clusters = append(b.Clusters, c)
	}
}

// addController appends ctrl to b's controller list if not already
// present, preserving P7 (no duplicate controllers per buffer).
func (b *Buffer) addController(ctrl string) {
	for _, c := range b.Controllers {
		if c == ctrl {
			return
		}
	}
	b.Controllers = append(b.Controllers, ctrl)
}

// hasFuelCapacityPair reports whether b already carries the exact
// (fuel, capacity) pair, per spec.md's design note on GenC/GenS
// fuel-tuple equality in 5a.
func (b *Buffer) hasFuelCapacityPair(f FuelEntry) bool {
	for _, x := range b.Fuels {
		if x.Fuel == f.Fuel && unitEqual(x.Capacity, f.Capacity) {
			return true
		}
	}
	return false
}

func unitEqual(a, b *unit.Unit) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value() == b.Value() && unit.DimensionsMatch(a, b)
}
