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

// prune is C4: isolate removal followed by self-loop removal, then a
// re-scan for buffers newly isolated by the self-loop pass. Grounded on
// AMES.py:deleteIsoNodes.
func (c *Context) prune() error {
	if err := c.removeIsolateBuffers(); err != nil {
		return err
	}
	if err := c.removeSelfLoops(); err != nil {
		return err
	}
	// A buffer whose cluster no longer holds any transporter endpoint
	// only touched removed self-loops: unset its cluster so the re-scan
	// drops it.
	nT := len(c.transporters)
	live := map[Cluster]bool{}
	for i := 0; i < 2*nT; i++ {
		live[c.points[i].Cluster] = true
	}
	for i := range c.buffers {
		if !live[c.points[2*nT+i].Cluster] {
			c.points[2*nT+i].Cluster = noCluster
		}
	}
	if err := c.removeIsolateBuffers(); err != nil {
		return err
	}
	c.syncTransporterEndpoints()
	return nil
}

// removeSelfLoops drops every transporter whose origin and destination
// share a cluster, along with its two point-rows, shifting downstream
// transporter-row indices by -2 per removal.
func (c *Context) removeSelfLoops() error {
	for i := 0; i < len(c.transporters); {
		t := c.transporters[i]
		if t.Origin.Cluster != noCluster && t.Origin.Cluster == t.Dest.Cluster {
			if err := c.deleteRows(2*i, 2*i+1); err != nil {
				return err
			}
			c.transporters = append(c.transporters[:i], c.transporters[i+1:]...)
			continue // re-examine index i, now the next transporter
		}
		i++
	}
	return nil
}

// removeIsolateBuffers drops every buffer none of whose point-rows
// carry a cluster-id (a buffer can own only one row, but the check is
// expressed generally in case future subtypes own more than one).
func (c *Context) removeIsolateBuffers() error {
	nT := len(c.transporters)
	for i := 0; i < len(c.buffers); {
		row := 2*nT + i
		if !c.points[row].clustered() {
			if err := c.deleteRow(row); err != nil {
				return err
			}
			c.buffers = append(c.buffers[:i], c.buffers[i+1:]...)
			continue // re-examine index i, now the next buffer
		}
		i++
	}
	return nil
}
