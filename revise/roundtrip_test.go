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

import "testing"

// R2 — a uniform translation smaller than eps1/10 should not change
// the cluster partition (only the clustering pass is re-run here,
// since full Revise() collapses coordinates to cluster midpoints,
// which would trivially erase any translation).
func TestRoundTripSmallTranslationStablePartition(t *testing.T) {
	build := func(dx, dy float64) *Context {
		ts := []*Transporter{
			elecLine("T1", 0+dx, 0+dy, 1+dx, 0+dy),
			elecLine("T2", 1.0010+dx, 0+dy, 2+dx, 0+dy),
		}
		c := NewContext(ts, nil, Catalogs{})
		if err := c.assemble(); err != nil {
			t.Fatal(err)
		}
		if err := c.cluster(); err != nil {
			t.Fatal(err)
		}
		return c
	}
	base := build(0, 0)
	shifted := build(EpsilonPrimary/20, -EpsilonPrimary/20)

	partition := func(c *Context) [][2]int {
		var pairs [][2]int
		for i := 0; i < 2*len(c.transporters); i++ {
			pairs = append(pairs, [2]int{i, int(c.points[i].Cluster)})
		}
		return pairs
	}
	bp, sp := partition(base), partition(shifted)
	if len(bp) != len(sp) {
		t.Fatalf("partition size mismatch: %d vs %d", len(bp), len(sp))
	}
	// Compare equivalence structure (which rows share a cluster),
	// not raw cluster ids, since id allocation order is unaffected
	// here but isn't the invariant under test.
	sameGroup := func(pairs [][2]int, i, j int) bool { return pairs[i][1] == pairs[j][1] }
	for i := range bp {
		for j := range bp {
			if sameGroup(bp, i, j) != sameGroup(sp, i, j) {
				t.Errorf("row pair (%d,%d) grouping differs after small translation", i, j)
			}
		}
	}
}

// R1 — running revision twice is equivalent to running it once: a
// second pass over an already-revised graph should be a fixed point
// (no further merges, joins, or insertions).
func TestRoundTripFixedPoint(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0, 0, 1, 0),
		elecLine("T2", 1.0005, 0, 2, 0),
	}
	bs := []*Buffer{genC("G1", 0, 0), loadC("L1", 2, 0)}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	nT1, nB1 := len(c.transporters), len(c.buffers)

	c2 := NewContext(c.transporters, c.buffers, Catalogs{})
	if err := c2.Revise(); err != nil {
		t.Fatal(err)
	}
	if len(c2.transporters) != nT1 || len(c2.buffers) != nB1 {
		t.Errorf("second revision pass changed graph size: (%d,%d) -> (%d,%d)", nT1, nB1, len(c2.transporters), len(c2.buffers))
	}
}
