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

import "strconv"

// condense is C5: same-type buffer merge (5a), line-segment join (5b),
// and independent buffer insertion (5c), applied in order. Grounded on
// AMES.py's condenseClusterBuffers, condenseBuffers, joinLineSegs, and
// addIndBuffers.
func (c *Context) condense() error {
	if err := c.mergeSameTypeBuffers(); err != nil {
		return err
	}
	if err := c.joinLines(); err != nil {
		return err
	}
	if err := c.insertJunctionBuffers(); err != nil {
		return err
	}
	return nil
}

// clusterEndpointRows returns the transporter-endpoint rows belonging
// to cluster cl, and whether any buffer also belongs to it.
func (c *Context) clusterEndpointRows(cl Cluster) (rows []int, hasBuffer bool) {
	nT := len(c.transporters)
	for i := 0; i < 2*nT; i++ {
		if c.points[i].Cluster == cl {
			rows = append(rows, i)
		}
	}
	for i := range c.buffers {
		if c.points[2*nT+i].Cluster == cl {
			hasBuffer = true
			break
		}
	}
	return rows, hasBuffer
}

// --- 5a: same-type buffer merge ---

func (c *Context) mergeSameTypeBuffers() error {
	byCluster := map[Cluster][]int{}
	for i, b := range c.buffers {
		for _, cl := range b.Clusters {
			byCluster[cl] = append(byCluster[cl], i)
		}
	}

	var toDelete []int
	seen := map[int]bool{}
	for _, idxs := range byCluster {
		byType := map[NodeType][]int{}
		for _, i := range idxs {
			byType[c.buffers[i].NodeType] = append(byType[c.buffers[i].NodeType], i)
		}
		for _, group := range byType {
			if len(group) < 2 {
				continue
			}
			prime := group[0]
			for _, dup := range group[1:] {
				if seen[dup] {
					continue
				}
				if c.buffers[prime].NodeType == GenC || c.buffers[prime].NodeType == GenS {
					for _, f := range c.buffers[dup].Fuels {
						if !c.buffers[prime].hasFuelCapacityPair(f) {
							c.buffers[prime].Fuels = append(c.buffers[prime].Fuels, f)
						}
					}
				}
				for _, cl := range c.buffers[dup].Clusters {
					c.buffers[prime].addCluster(cl)
				}
				toDelete = append(toDelete, dup)
				seen[dup] = true
			}
		}
	}

	// Highest index first so earlier indices stay valid through the
	// cascade of point-row and buffer-slice deletions.
	for i := 0; i < len(toDelete); i++ {
		for j := i + 1; j < len(toDelete); j++ {
			if toDelete[j] > toDelete[i] {
				toDelete[i], toDelete[j] = toDelete[j], toDelete[i]
			}
		}
	}
	nT := len(c.transporters)
	for _, dup := range toDelete {
		if err := c.deleteRow(2*nT + dup); err != nil {
			return err
		}
		c.buffers = append(c.buffers[:dup], c.buffers[dup+1:]...)
	}
	return nil
}

// --- 5b: line-segment join ---

func (c *Context) setEndpoint(i int, origin bool, ep Endpoint) {
	if origin {
		c.transporters[i].Origin = ep
		c.points[2*i] = pointRow{X: ep.X, Y: ep.Y, Columns: c.points[2*i].Columns, Cluster: ep.Cluster}
	} else {
		c.transporters[i].Dest = ep
		c.points[2*i+1] = pointRow{X: ep.X, Y: ep.Y, Columns: c.points[2*i+1].Columns, Cluster: ep.Cluster}
	}
}

func (c *Context) deleteTransporter(idx int) error {
	if err := c.deleteRows(2*idx, 2*idx+1); err != nil {
		return err
	}
	c.transporters = append(c.transporters[:idx], c.transporters[idx+1:]...)
	return nil
}

// joinLines repeatedly fuses degree-2, buffer-free cluster passthroughs
// until a full pass finds none left, the simplest correct
// implementation of "re-examine t until no further fusion is possible
// at either end" from spec.md's 5b: rescanning from scratch after every
// fusion sidesteps the index-shift bookkeeping a single mutating sweep
// would otherwise need.
func (c *Context) joinLines() error {
	for {
		fused, err := c.fuseOnePass()
		if err != nil {
			return err
		}
		if !fused {
			break
		}
	}
	c.syncTransporterEndpoints()
	return nil
}

func (c *Context) fuseOnePass() (bool, error) {
	for i := range c.transporters {
		for _, origin := range []bool{true, false} {
			t := c.transporters[i]
			cl := t.Dest.Cluster
			if origin {
				cl = t.Origin.Cluster
			}
			if cl == noCluster {
				continue
			}
			rows, hasBuffer := c.clusterEndpointRows(cl)
			if hasBuffer || len(rows) != 2 {
				continue
			}
			peerRow := -1
			for _, r := range rows {
				if ti, _ := c.transporterOf(r); ti != i {
					peerRow = r
				}
			}
			if peerRow < 0 {
				continue
			}
			peerIdx, peerIsOrigin := c.transporterOf(peerRow)
			peer := c.transporters[peerIdx]
			farEnd := peer.Origin
			if peerIsOrigin {
				farEnd = peer.Dest
			}
			if farEnd.Cluster == noCluster {
				continue
			}
			otherEnd := t.Origin
			if origin {
				otherEnd = t.Dest
			}
			if otherEnd.Cluster == farEnd.Cluster {
				continue // would form a self-loop; never fuse
			}
			c.setEndpoint(i, origin, farEnd)
			if err := c.deleteTransporter(peerIdx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// --- 5c: independent buffer insertion ---

func junctionSubtype(refs []Refinement) NodeType {
	has := func(set ...Refinement) bool {
		for _, r := range refs {
			for _, s := range set {
				if r == s {
					return true
				}
			}
		}
		return false
	}
	switch {
	case has(RefElectric132kV):
		return Bus
	case has(RefProcessedGas, RefSyngas, RefRawGas):
		return NGIndBuffer
	case has(RefProcessedOil, RefCrudeOil, RefLiquidBiomass, RefWaterEnergy, RefSolidBiomass):
		return OilIndBuffer
	case has(RefCoal):
		return CoalIndBuffer
	default:
		return Bus
	}
}

func (c *Context) insertJunctionBuffers() error {
	present := map[Cluster]bool{}
	nT := len(c.transporters)
	for i := 0; i < 2*nT; i++ {
		if c.points[i].clustered() {
			present[c.points[i].Cluster] = true
		}
	}
	var clusters []Cluster
	for cl := range present {
		clusters = append(clusters, cl)
	}
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			if clusters[j] < clusters[i] {
				clusters[i], clusters[j] = clusters[j], clusters[i]
			}
		}
	}

	for _, cl := range clusters {
		rows, hasBuffer := c.clusterEndpointRows(cl)
		if hasBuffer || len(rows) < 3 {
			continue
		}
		x, y := c.points[rows[0]].X, c.points[rows[0]].Y
		var refs []Refinement
		for _, r := range rows {
			ti, _ := c.transporterOf(r)
			refs = refinementUnion(refs, c.transporters[ti].Refinements)
		}
		var cols []int
		for _, r := range refs {
			if col, ok := c.refinements.index[r]; ok {
				cols = append(cols, col)
			}
		}
		nb := &Buffer{
			Name:        "junction-" + strconv.FormatUint(uint64(cl), 10),
			NodeType:    junctionSubtype(refs),
			X:           x,
			Y:           y,
			Refinements: refs,
			Clusters:    []Cluster{cl},
		}
		row := 2*len(c.transporters) + len(c.buffers)
		if err := c.insertRow(row, pointRow{X: x, Y: y, Columns: cols, Cluster: cl}); err != nil {
			return err
		}
		c.buffers = append(c.buffers, nb)
	}
	return nil
}
