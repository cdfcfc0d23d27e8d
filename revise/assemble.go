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

// assemble is C1, the point-table assembler. It flattens every
// transporter endpoint and buffer into Context.points in the
// positional order lines-endpoints-first, buffers-second (I1), each
// row carrying the refinement columns its entity actually serves so
// C2 can restrict candidate search to a single commodity column.
func (c *Context) assemble() error {
	nT := len(c.transporters)
	nB := len(c.buffers)

	// First pass: register every refinement so every row's Columns
	// reference a stable column index.
	for _, t := range c.transporters {
		for _, r := range t.Refinements {
			if _, err := c.refinements.columnFor(r); err != nil {
				// Unknown refinement at this stage is not fatal; C1
				// has no errors per its contract. The column simply
				// won't be registered, and the endpoint carries no
				// columns for that refinement (pruned later if it
				// ends up unclustered).
				continue
			}
		}
	}
	for _, b := range c.buffers {
		for _, r := range b.Refinements {
			if _, err := c.refinements.columnFor(r); err != nil {
				continue
			}
		}
	}

	points := make([]pointRow, 0, 2*nT+nB)

	for _, t := range c.transporters {
		var cols []int
		for _, r := range t.Refinements {
			if col, ok := c.refinements.index[r]; ok {
				cols = append(cols, col)
			}
		}
		points = append(points, pointRow{X: t.Origin.X, Y: t.Origin.Y, Columns: cols})
		points = append(points, pointRow{X: t.Dest.X, Y: t.Dest.Y, Columns: cols})
	}
	for _, b := range c.buffers {
		var cols []int
		for _, r := range b.Refinements {
			if col, ok := c.refinements.index[r]; ok {
				cols = append(cols, col)
			}
		}
		points = append(points, pointRow{X: b.X, Y: b.Y, Columns: cols})
	}

	c.points = points
	return nil
}
