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

// Cluster is a dense 32-bit cluster id assigned by C2. The zero value
// means "unassigned".
type Cluster uint32

// pointRow unifies a buffer or a transporter endpoint into one index
// space. Its index in Context.points satisfies the positional
// contract (I1): i < 2*len(transporters) is a transporter endpoint
// (origin if i is even, dest if odd) of transporter i/2; i >=
// 2*len(transporters) is buffer i-2*len(transporters).
//
// pointRow never moves on its own: Context.deleteRow and
// Context.insertRow are the only operations that change row positions,
// so every index shift happens in one place.
type pointRow struct {
	X, Y    float64
	Columns []int // global refinement columns the row's entity serves
	Cluster Cluster
}

// sharesColumn reports whether p and q are active in at least one
// common refinement column. C2 does not call it; its passes restrict
// candidates through one rtree per column instead.
func (p *pointRow) sharesColumn(q *pointRow) bool {
	for _, a := range p.Columns {
		for _, b := range q.Columns {
			if a == b {
				return true
			}
		}
	}
	return false
}

func (p *pointRow) clustered() bool { return p.Cluster != noCluster }

// isTransporterRow reports whether row i addresses a transporter
// endpoint rather than a buffer, given the current transporter count.
func (c *Context) isTransporterRow(i int) bool {
	return i < 2*len(c.transporters)
}

// bufferIndex converts a point-row index known to address a buffer
// into the buffer slice index.
func (c *Context) bufferIndex(i int) int {
	return i - 2*len(c.transporters)
}

// transporterOf returns the transporter index and origin/dest flag
// (true = origin) that row i addresses. Caller must have checked
// isTransporterRow(i).
func (c *Context) transporterOf(i int) (idx int, isOrigin bool) {
	return i / 2, i%2 == 0
}

// deleteRow removes the point-row at index i and shifts every
// downstream row's position down by one. It is the sole place row
// indices change on deletion; callers are responsible for removing the
// corresponding buffer/transporter entity themselves and for keeping
// len(points) in lock-step with 2*len(transporters)+len(buffers).
func (c *Context) deleteRow(i int) error {
	if i < 0 || i >= len(c.points) {
		return invariantViolation("deleteRow", "index out of range", i)
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
	return nil
}

// insertRow inserts row at index i, shifting rows at and after i up by
// one. Used by C3 to splice synthetic transporter endpoints in at
// position 2*len(transporters_before), and by C5c to append junction
// buffer rows.
func (c *Context) insertRow(i int, row pointRow) error {
	if i < 0 || i > len(c.points) {
		return invariantViolation("insertRow", "index out of range", i)
	}
	c.points = append(c.points, pointRow{})
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = row
	return nil
}

// syncTransporterEndpoints copies each transporter's two point-row
// positions (coordinates and cluster-id) into its Origin/Dest fields,
// the one place the Transporter-facing view is refreshed from the
// point table's working representation.
func (c *Context) syncTransporterEndpoints() {
	for i, t := range c.transporters {
		o := c.points[2*i]
		d := c.points[2*i+1]
		t.Origin.X, t.Origin.Y, t.Origin.Cluster = o.X, o.Y, o.Cluster
		t.Dest.X, t.Dest.Y, t.Dest.Cluster = d.X, d.Y, d.Cluster
	}
}

// deleteRows removes multiple indices in one pass, highest-first so
// earlier indices stay valid, and reports an InvariantViolationError if
// any index would underflow the table.
func (c *Context) deleteRows(indices ...int) error {
	sorted := append([]int(nil), indices...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] > sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	for _, idx := range sorted {
		if err := c.deleteRow(idx); err != nil {
			return err
		}
	}
	return nil
}
