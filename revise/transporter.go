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

// LineType tags the variant of a Transporter, driven by subsystem.
type LineType string

// The closed LineType enumeration.
const (
	ElecLine     LineType = "ElecLine"
	NGPipe       LineType = "NGPipe"
	OilCrudePipe LineType = "OilCrudePipe"
	OilRefPipe   LineType = "OilRefPipe"
	CoalRailroad LineType = "CoalRailroad"
	OtherPipe    LineType = "otherPipe"
)

// Endpoint is a line endpoint before C6 naming collapses it to a
// buffer name: a bare geolocation plus (after C2) a cluster id.
type Endpoint struct {
	X, Y    float64
	Cluster Cluster
	Name    string // set by C6; empty ("") means still a bare tuple
}

// NewEndpoint constructs a bare-tuple Endpoint for ingestion-time
// transporter records, before C2 assigns a cluster or C6 resolves a
// name.
func NewEndpoint(x, y float64) Endpoint {
	return Endpoint{X: x, Y: y}
}

// Transporter is a line facility.
type Transporter struct {
	Name        string
	LineType    LineType
	Origin      Endpoint
	Dest        Endpoint
	Refinements []Refinement
	Status      string
	Controllers []string
}

// HasRefinement reports whether t carries r.
func (t *Transporter) HasRefinement(r Refinement) bool {
	for _, x := range t.Refinements {
		if x == r {
			return true
		}
	}
	return false
}

// FBus returns the origin endpoint's resolved buffer name, the field
// P6 calls fBus.
func (t *Transporter) FBus() string { return t.Origin.Name }

// TBus returns the destination endpoint's resolved buffer name (tBus).
func (t *Transporter) TBus() string { return t.Dest.Name }

// refinementIntersection returns the refinements common to a and b, in
// a's order, used by C6's radial connector emission.
func refinementIntersection(a, b []Refinement) []Refinement {
	var out []Refinement
	for _, r := range a {
		for _, s := range b {
			if r == s {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// refinementUnion returns the union of a and b, preserving a's order
// then appending new members of b.
func refinementUnion(a, b []Refinement) []Refinement {
	out := append([]Refinement(nil), a...)
	for _, r := range b {
		found := false
		for _, x := range out {
			if x == r {
				found = true
				break
			}
		}
		if !found {
			out = append(out, r)
		}
	}
	return out
}
