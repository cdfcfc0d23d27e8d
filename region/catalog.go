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

// Package region loads the polygon catalogs C6 region attribution
// consults (states, ISO/control areas, NG regions) and answers point
// containment and nearest-polygon queries, the same bounding-box-
// then-exact-test idiom package aep's GridDef uses for grid-cell
// lookup.
package region

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Entry is one (label, polygon) pair in a catalog.
type Entry struct {
	Label   string
	Polygon geom.Polygonal
}

type indexedEntry struct {
	idx int
	geom.Polygonal
}

// Catalog is an ordered sequence of labeled polygons, indexed by an
// rtree of their bounds for fast containment lookup; Nearest scans
// every entry. It satisfies revise.PolygonCatalog structurally.
type Catalog struct {
	entries []Entry
	tree    *rtree.Rtree
}

// NewCatalog builds a Catalog from entries, in the given order.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: entries, tree: rtree.NewTree(25, 50)}
	for i, e := range entries {
		c.tree.Insert(&indexedEntry{idx: i, Polygonal: e.Polygon})
	}
	return c
}

// Locate returns the label of the polygon containing (x,y), and true,
// or ("", false) if no polygon in the catalog contains it.
func (c *Catalog) Locate(x, y float64) (string, bool) {
	if c == nil || len(c.entries) == 0 {
		return "", false
	}
	p := geom.Point{X: x, Y: y}
	for _, h := range c.tree.SearchIntersect(p.Bounds()) {
		e := h.(*indexedEntry)
		if p.Within(e.Polygonal) == geom.Inside {
			return c.entries[e.idx].Label, true
		}
	}
	return "", false
}

// Nearest returns the label of the polygon with minimum Euclidean
// distance from its bounds to (x,y). Used as the PolygonMiss fallback
// when Locate finds no container.
func (c *Catalog) Nearest(x, y float64) (string, bool) {
	if c == nil || len(c.entries) == 0 {
		return "", false
	}
	best := -1
	bestDist := math.MaxFloat64
	for i, e := range c.entries {
		b := e.Polygon.Bounds()
		d := boundsDistance(b, x, y)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	if best < 0 {
		return "", false
	}
	return c.entries[best].Label, true
}

func boundsDistance(b *geom.Bounds, x, y float64) float64 {
	dx := 0.0
	if x < b.Min.X {
		dx = b.Min.X - x
	} else if x > b.Max.X {
		dx = x - b.Max.X
	}
	dy := 0.0
	if y < b.Min.Y {
		dy = b.Min.Y - y
	} else if y > b.Max.Y {
		dy = y - b.Max.Y
	}
	return math.Sqrt(dx*dx + dy*dy)
}
