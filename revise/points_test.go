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

func TestDeleteRowShiftsDownstream(t *testing.T) {
	c := &Context{points: []pointRow{
		{X: 0}, {X: 1}, {X: 2}, {X: 3},
	}}
	if err := c.deleteRow(1); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 2, 3}
	if len(c.points) != len(want) {
		t.Fatalf("got %d rows, want %d", len(c.points), len(want))
	}
	for i, x := range want {
		if c.points[i].X != x {
			t.Errorf("row %d: got X=%v, want %v", i, c.points[i].X, x)
		}
	}
}

func TestDeleteRowOutOfRange(t *testing.T) {
	c := &Context{points: []pointRow{{X: 0}}}
	if err := c.deleteRow(5); err == nil {
		t.Fatal("expected InvariantViolationError, got nil")
	}
}

func TestInsertRowShiftsDownstream(t *testing.T) {
	c := &Context{points: []pointRow{{X: 0}, {X: 1}}}
	if err := c.insertRow(1, pointRow{X: 9}); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 9, 1}
	for i, x := range want {
		if c.points[i].X != x {
			t.Errorf("row %d: got X=%v, want %v", i, c.points[i].X, x)
		}
	}
}

// TestPositionalContract is property P1: every transporter endpoint
// row lives at 2*index(t)+{0,1}.
func TestPositionalContract(t *testing.T) {
	c := &Context{
		transporters: []*Transporter{{}, {}, {}},
		buffers:      []*Buffer{{}, {}},
	}
	c.points = make([]pointRow, 2*len(c.transporters)+len(c.buffers))
	for i := range c.transporters {
		if !c.isTransporterRow(2*i) || !c.isTransporterRow(2*i+1) {
			t.Errorf("transporter %d: endpoint rows not recognized as transporter rows", i)
		}
	}
	for i := range c.buffers {
		row := 2*len(c.transporters) + i
		if c.isTransporterRow(row) {
			t.Errorf("buffer %d: row %d misclassified as transporter row", i, row)
		}
		if c.bufferIndex(row) != i {
			t.Errorf("buffer %d: bufferIndex(%d) = %d, want %d", i, row, c.bufferIndex(row), i)
		}
	}
}
