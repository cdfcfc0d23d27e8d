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

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// indexedPoint is the Bounder the per-column rtree indexes: a
// zero-area box at a point-row's coordinates, tagged with the row's
// index so SearchIntersect results can be mapped back.
type indexedPoint struct {
	row int
	geom.Point
}

func (p *indexedPoint) Bounds() *geom.Bounds { return p.Point.Bounds() }

func dist(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// columnTrees builds one rtree per refinement column, containing every
// point-row active in that column, the same bounding-box-then-exact-
// distance idiom the teacher's GridDef/SrgSpec use for spatial lookup.
func (c *Context) columnTrees() map[int]*rtree.Rtree {
	trees := make(map[int]*rtree.Rtree)
	for i := range c.points {
		for _, col := range c.points[i].Columns {
			t, ok := trees[col]
			if !ok {
				t = rtree.NewTree(25, 50)
				trees[col] = t
			}
			t.Insert(&indexedPoint{row: i, Point: geom.Point{X: c.points[i].X, Y: c.points[i].Y}})
		}
	}
	return trees
}

// within returns the indices of every point-row within radius of
// (x,y) in column col, sorted by ascending distance (ties broken by
// row index, which keeps the downstream cluster-id tie-break
// deterministic).
func (c *Context) within(trees map[int]*rtree.Rtree, col int, x, y, radius float64) []int {
	t, ok := trees[col]
	if !ok {
		return nil
	}
	box := rtree.ToRect(geom.Point{X: x, Y: y}, radius)
	hits := t.SearchIntersect(box)
	type cand struct {
		row int
		d   float64
	}
	var cands []cand
	for _, h := range hits {
		ip := h.(*indexedPoint)
		d := dist(x, y, ip.X, ip.Y)
		if d <= radius {
			cands = append(cands, cand{ip.row, d})
		}
	}
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if cands[j].d < cands[i].d || (cands[j].d == cands[i].d && cands[j].row < cands[i].row) {
				cands[i], cands[j] = cands[j], cands[i]
			}
		}
	}
	out := make([]int, len(cands))
	for i, x := range cands {
		out[i] = x.row
	}
	return out
}

// cluster is C2, the spatial clusterer: primary, secondary, and
// tertiary passes followed by midpoint collapse. Grounded line for
// line on SnapEdges2Grid.py's snapEdges2GridRef, generalized from its
// per-nonzero-entry clustering to the per-point-row positional
// contract spec.md locks in as I1.
func (c *Context) cluster() error {
	trees := c.columnTrees()
	nT := len(c.transporters)

	// Primary pass: drive off transporter endpoints in insertion
	// order.
	for k := 0; k < 2*nT; k++ {
		if c.points[k].clustered() {
			continue
		}
		found := c.candidatesAcrossColumns(trees, k, EpsilonPrimary)
		if len(found) == 0 {
			continue
		}
		var clusteredFound []int
		for _, f := range found {
			if c.points[f].clustered() {
				clusteredFound = append(clusteredFound, f)
			}
		}
		if len(clusteredFound) > 0 {
			extend := c.points[clusteredFound[0]].Cluster
			for _, f := range found {
				if !c.points[f].clustered() {
					c.points[f].Cluster = extend
				}
			}
		} else {
			fresh := c.allocCluster()
			for _, f := range found {
				c.points[f].Cluster = fresh
			}
		}
	}

	// Secondary / tertiary pass: every remaining unclustered row
	// (endpoint or buffer), nearest existing endpoint only.
	for k := range c.points {
		if c.points[k].clustered() {
			continue
		}
		nearestRow, nearestDist, ok := c.nearestEndpoint(trees, k)
		if !ok {
			continue // leave unclustered; pruned by C4
		}
		switch {
		case nearestDist <= EpsilonSecondary:
			c.points[k].Cluster = c.points[nearestRow].Cluster
		case nearestDist <= EpsilonTertiary:
			c.points[k].Cluster = c.allocCluster()
			c.synthQueue = append(c.synthQueue, syntheticRequest{fromRow: k, toRow: nearestRow})
		}
	}

	c.collapseMidpoints()
	c.syncBufferClusters()
	c.syncTransporterEndpoints()
	return nil
}

// candidatesAcrossColumns unions within() across every column row k is
// active in, deduplicating by row index.
func (c *Context) candidatesAcrossColumns(trees map[int]*rtree.Rtree, k int, radius float64) []int {
	seen := map[int]bool{}
	var out []int
	p := c.points[k]
	for _, col := range p.Columns {
		for _, r := range c.within(trees, col, p.X, p.Y, radius) {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// nearestEndpoint finds the closest transporter-endpoint row (not
// buffer) to row k sharing a column, per the secondary pass's
// "nearest endpoint" rule.
func (c *Context) nearestEndpoint(trees map[int]*rtree.Rtree, k int) (row int, d float64, ok bool) {
	p := c.points[k]
	best := -1
	bestDist := math.MaxFloat64
	for _, col := range p.Columns {
		for _, r := range c.within(trees, col, p.X, p.Y, EpsilonTertiary) {
			if !c.isTransporterRow(r) || r == k {
				continue
			}
			dd := dist(p.X, p.Y, c.points[r].X, c.points[r].Y)
			if dd < bestDist || (dd == bestDist && r < best) {
				best, bestDist = r, dd
			}
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestDist, true
}

// collapseMidpoints replaces every clustered row's (x,y) with its
// cluster's centroid.
func (c *Context) collapseMidpoints() {
	sumX := map[Cluster]float64{}
	sumY := map[Cluster]float64{}
	count := map[Cluster]int{}
	for _, p := range c.points {
		if !p.clustered() {
			continue
		}
		sumX[p.Cluster] += p.X
		sumY[p.Cluster] += p.Y
		count[p.Cluster]++
	}
	for i := range c.points {
		p := &c.points[i]
		if !p.clustered() {
			continue
		}
		n := float64(count[p.Cluster])
		p.X = sumX[p.Cluster] / n
		p.Y = sumY[p.Cluster] / n
	}
}

// syncBufferClusters writes each buffer's point-row cluster into its
// Clusters list (the base entry C5a later extends with absorbed
// duplicates' cluster ids).
func (c *Context) syncBufferClusters() {
	nT := len(c.transporters)
	for i, b := range c.buffers {
		row := c.points[2*nT+i]
		if row.clustered() {
			b.Clusters = nil
			b.addCluster(row.Cluster)
		}
	}
}
