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

func elecLine(name string, ox, oy, dx, dy float64) *Transporter {
	return &Transporter{
		Name:        name,
		LineType:    ElecLine,
		Origin:      Endpoint{X: ox, Y: oy},
		Dest:        Endpoint{X: dx, Y: dy},
		Refinements: []Refinement{RefElectric132kV},
		Status:      "true",
	}
}

func genC(name string, x, y float64) *Buffer {
	return &Buffer{Name: name, NodeType: GenC, X: x, Y: y, Refinements: []Refinement{RefElectric132kV}}
}

func loadC(name string, x, y float64) *Buffer {
	return &Buffer{Name: name, NodeType: LoadC, X: x, Y: y, Refinements: []Refinement{RefElectric132kV}}
}

// S1 — Primary snap.
func TestScenarioPrimarySnap(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0.0000, 0.0000, 1.0000, 0.0000),
		elecLine("T2", 1.0010, 0.0000, 2.0000, 0.0000),
	}
	c := NewContext(ts, nil, Catalogs{})
	if err := c.assemble(); err != nil {
		t.Fatal(err)
	}
	if err := c.cluster(); err != nil {
		t.Fatal(err)
	}
	if ts[0].Dest.Cluster == noCluster || ts[1].Origin.Cluster == noCluster {
		t.Fatalf("expected both near-coincident endpoints to be clustered")
	}
	if ts[0].Dest.Cluster != ts[1].Origin.Cluster {
		t.Errorf("T1.dest and T2.origin should share a cluster; got %d and %d", ts[0].Dest.Cluster, ts[1].Origin.Cluster)
	}
	clusters := map[Cluster]bool{}
	for _, p := range c.points {
		if p.clustered() {
			clusters[p.Cluster] = true
		}
	}
	if len(clusters) != 3 {
		t.Errorf("expected 3 clusters, got %d", len(clusters))
	}
}

// S2 — Secondary attach.
func TestScenarioSecondaryAttach(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0.0000, 0.0000, 1.0000, 0.0000),
		elecLine("T2", 1.0010, 0.0000, 2.0000, 0.0000),
	}
	bs := []*Buffer{loadC("L1", 1.0050, 0.0005)}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	if ts[0].TBus() != "L1" || ts[1].FBus() != "L1" {
		t.Errorf("expected LoadC to be named primary of the middle cluster; got tBus=%s fBus=%s", ts[0].TBus(), ts[1].FBus())
	}
}

// S3 — Tertiary synthesis.
func TestScenarioTertiarySynthesis(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0, 0, 1, 0),
		elecLine("T2", 2, 0, 3, 0),
	}
	bs := []*Buffer{genC("G1", 1.2, 0.0)}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.assemble(); err != nil {
		t.Fatal(err)
	}
	if err := c.cluster(); err != nil {
		t.Fatal(err)
	}
	if len(c.synthQueue) != 1 {
		t.Fatalf("expected one synthetic transporter request, got %d", len(c.synthQueue))
	}
	if err := c.synthesize(); err != nil {
		t.Fatal(err)
	}
	if len(c.transporters) != 3 {
		t.Fatalf("expected a synthetic transporter to be materialized, got %d transporters", len(c.transporters))
	}
	if c.transporters[2].LineType != ElecLine {
		t.Errorf("expected synthetic transporter to be ElecLine, got %s", c.transporters[2].LineType)
	}
}

// S4 — Self-loop kill.
func TestScenarioSelfLoopKill(t *testing.T) {
	ts := []*Transporter{elecLine("T1", 0, 0, 0.0001, 0.0001)}
	c := NewContext(ts, nil, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	if len(c.transporters) != 0 {
		t.Errorf("expected self-loop to be removed, got %d transporters", len(c.transporters))
	}
}

// S5 — Line join.
func TestScenarioLineJoin(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0, 0, 1, 0),
		elecLine("T2", 1.0005, 0, 2, 0),
		elecLine("T3", 2.0005, 0, 3, 0),
	}
	bs := []*Buffer{genC("G1", 0, 0), loadC("L1", 3, 0)}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	if len(c.transporters) != 1 {
		t.Fatalf("expected the 3-segment chain to collapse to 1 transporter, got %d", len(c.transporters))
	}
	tr := c.transporters[0]
	if !((tr.FBus() == "G1" && tr.TBus() == "L1") || (tr.FBus() == "L1" && tr.TBus() == "G1")) {
		t.Errorf("expected joined transporter to span G1 and L1, got fBus=%s tBus=%s", tr.FBus(), tr.TBus())
	}
}

// S6 — Independent buffer insertion.
func TestScenarioIndependentBufferInsertion(t *testing.T) {
	ng := func(name string, ox, oy, dx, dy float64) *Transporter {
		return &Transporter{
			Name: name, LineType: NGPipe,
			Origin: Endpoint{X: ox, Y: oy}, Dest: Endpoint{X: dx, Y: dy},
			Refinements: []Refinement{RefProcessedGas}, Status: "true",
		}
	}
	ts := []*Transporter{
		ng("P1", -1, 0, 0, 0),
		ng("P2", 1, 0, 0, 0),
		ng("P3", 0, -1, 0, 0),
		ng("P4", 0, 1, 0, 0),
	}
	c := NewContext(ts, nil, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	var junction *Buffer
	for _, b := range c.buffers {
		if b.NodeType == NGIndBuffer {
			junction = b
		}
	}
	if junction == nil {
		t.Fatalf("expected an NGIndBuffer to be synthesized at the meeting point")
	}
	for _, tr := range c.transporters {
		if tr.FBus() != junction.Name && tr.TBus() != junction.Name {
			t.Errorf("transporter %s does not touch the synthesized junction buffer", tr.Name)
		}
	}
}

// B1 — zero transporters prunes every buffer (no-goal guard).
func TestBoundaryZeroTransporters(t *testing.T) {
	bs := []*Buffer{genC("G1", 0, 0), loadC("L1", 1, 1)}
	c := NewContext(nil, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	if len(c.transporters) != 0 || len(c.buffers) != 0 {
		t.Errorf("expected all buffers pruned with zero transporters, got %d transporters, %d buffers", len(c.transporters), len(c.buffers))
	}
}

// B2 — two same-type buffers in one cluster collapse to a single
// buffer. The different-type case (radial connector) is not checked
// here.
func TestBoundarySameClusterDuplicates(t *testing.T) {
	ts := []*Transporter{elecLine("T1", 0, 0, 0.5, 0)}
	bs := []*Buffer{
		genC("G1", 0, 0),
		genC("G2", 0.0001, 0.0001),
		loadC("L1", 0.5, 0),
	}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, b := range c.buffers {
		if b.NodeType == GenC {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the two same-type GenC buffers to collapse to 1, got %d", count)
	}
}

// B3 — a chain of k>=2 buffer-free transporters collapses to one.
func TestBoundaryChainCollapse(t *testing.T) {
	ts := []*Transporter{
		elecLine("T1", 0, 0, 1, 0),
		elecLine("T2", 1.0005, 0, 2, 0),
	}
	bs := []*Buffer{genC("G1", 0, 0), loadC("L1", 2, 0)}
	c := NewContext(ts, bs, Catalogs{})
	if err := c.Revise(); err != nil {
		t.Fatal(err)
	}
	if len(c.transporters) != 1 {
		t.Errorf("expected 2-segment chain to collapse to 1 transporter, got %d", len(c.transporters))
	}
}
