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

// Package revise implements the topology-revision core: a deterministic
// six-component pipeline (C1-C6) that clusters endpoints, snaps
// disconnected lines and buffers onto a common graph, collapses
// near-coincident nodes, joins collinear line chains, inserts junction
// buffers, and assigns regional/operator attribution and primary/
// secondary endpoint naming.
package revise

import (
	"github.com/sirupsen/logrus"
)

// PolygonCatalog is the interface C6 region attribution consults. It is
// satisfied structurally by package region's Catalog so that revise
// never imports region (region reaches revise only through package
// ingest, keeping the dependency one-directional).
type PolygonCatalog interface {
	// Locate returns the label of the polygon containing (x,y) and
	// true, or ("", false) if none contains it.
	Locate(x, y float64) (string, bool)
	// Nearest returns the label of the entry nearest to (x,y), or
	// ("", false) for an empty catalog. Called whenever Locate fails.
	// Package region's Catalog measures the distance to each polygon's
	// bounding box, not to the polygon itself.
	Nearest(x, y float64) (string, bool)
}

// Catalogs bundles the three polygon catalogs C6 consults.
type Catalogs struct {
	States  PolygonCatalog
	ISO     PolygonCatalog
	NGRegion PolygonCatalog
}

// syntheticRequest is one entry in C2's synthetic-transporter queue,
// consumed by C3.
type syntheticRequest struct {
	fromRow, toRow int
}

// Context owns every mutable structure the revision pipeline operates
// on. The graph state has no singleton or package-level copy; a caller
// that wants to revise two independent graphs concurrently constructs
// two Contexts. The clustering radii (EpsilonPrimary, EpsilonSecondary,
// EpsilonTertiary) are the one package-level setting all Contexts share.
type Context struct {
	transporters []*Transporter
	buffers      []*Buffer
	points       []pointRow
	refinements  *refinementTable
	controllers  []string

	nextCluster Cluster
	synthQueue  []syntheticRequest
	clusterCache map[Cluster]*clusterInfo

	catalogs Catalogs
	log      *logrus.Entry
}

// NewContext constructs an empty revision context. transporters and
// buffers are the raw ingestion output, in subsystem-then-ingestion
// order; catalogs may be the zero value if region attribution is not
// needed (PolygonMiss will fire for every buffer in that case).
func NewContext(transporters []*Transporter, buffers []*Buffer, catalogs Catalogs) *Context {
	c := &Context{
		transporters: transporters,
		buffers:      buffers,
		refinements:  newRefinementTable(),
		nextCluster:  firstCluster,
		catalogs:     catalogs,
		log:          logrus.WithField("component", "revise"),
	}
	return c
}

// Buffers returns the revised buffer list. Valid only after Revise
// returns successfully.
func (c *Context) Buffers() []*Buffer { return c.buffers }

// Transporters returns the revised transporter list.
func (c *Context) Transporters() []*Transporter { return c.transporters }

// Refinements returns the discovered refinement list, in discovery
// order.
func (c *Context) Refinements() []Refinement { return c.refinements.List() }

// Controllers returns the process-wide controller list accumulated by
// C6 region attribution.
func (c *Context) Controllers() []string { return c.controllers }

func (c *Context) allocCluster() Cluster {
	id := c.nextCluster
	c.nextCluster++
	return id
}

func (c *Context) logStage(name string) {
	c.log.WithFields(logrus.Fields{
		"transporters": len(c.transporters),
		"buffers":      len(c.buffers),
		"points":       len(c.points),
	}).Info(name)
}

// Revise runs C1 through C6 in order on the context's current
// transporters and buffers, mutating them in place and returning the
// first error encountered. A component that detects an invariant
// violation aborts the whole pipeline; no partial graph is surfaced to
// the caller in that case (the context is left in the state it was in
// when the error occurred, and must be discarded).
func (c *Context) Revise() error {
	stages := []struct {
		name string
		fn   func() error
	}{
		{"C1 point-table assembler", c.assemble},
		{"C2 spatial clusterer", c.cluster},
		{"C3 transporter synthesizer", c.synthesize},
		{"C4 pruner", c.prune},
		{"C5 cluster condenser", c.condense},
		{"C6 attributor & namer", c.attribute},
	}
	for _, s := range stages {
		if err := s.fn(); err != nil {
			c.log.WithError(err).WithField("component", s.name).Error("revision aborted")
			return err
		}
		c.logStage(s.name)
	}
	return nil
}
