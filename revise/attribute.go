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
	"runtime"
	"strings"
	"sync"
)

// attribute is C6: region attribution, cluster-primary selection and
// endpoint naming, radial connector emission, and the isolated
// oil-plant rescue pass. Grounded on AMES.py's setNodeStates/setRegion,
// setController, setISO, findClusterPrimary, setPipeODNames2,
// linkClusterBuffers, and reviseOil.
func (c *Context) attribute() error {
	c.attributeRegions()
	if err := c.nameEndpoints(); err != nil {
		return err
	}
	c.emitRadialConnectors()
	c.rescueIsolatedOilPlants()
	return nil
}

// canonicalizeISO applies the fixed substring rules; any other label
// passes through unchanged.
func canonicalizeISO(label string) string {
	u := strings.ToUpper(label)
	switch {
	case strings.Contains(u, "NEW ENGLAND"), strings.Contains(u, "ISONE"):
		return "ISONE"
	case strings.Contains(u, "NEW YORK"), strings.Contains(u, "NYISO"):
		return "NYISO"
	case strings.Contains(u, "PJM"):
		return "PJM"
	}
	return label
}

// locate tries Locate then falls back to Nearest, returning ("", false)
// only if the catalog has neither a container nor a nearest candidate
// (an empty catalog).
func locate(cat PolygonCatalog, x, y float64) (string, bool) {
	if cat == nil {
		return "", false
	}
	if lbl, ok := cat.Locate(x, y); ok {
		return lbl, true
	}
	return cat.Nearest(x, y)
}

// resolveControllers is the pure, read-only half of region attribution
// for a single buffer: every lookup it performs (map/struct field reads
// and PolygonCatalog.Locate/Nearest) touches no shared mutable state, so
// it is safe to run concurrently across buffers.
func (c *Context) resolveControllers(b *Buffer) []string {
	var ctrls []string
	if b.ISO != "" {
		ctrls = append(ctrls, canonicalizeISO(b.ISO))
	} else if lbl, ok := locate(c.catalogs.ISO, b.X, b.Y); ok {
		ctrls = append(ctrls, canonicalizeISO(lbl))
	} else {
		ctrls = append(ctrls, "UNKNOWN")
	}

	if b.Region != "" {
		ctrls = append(ctrls, b.Region)
	} else if lbl, ok := locate(c.catalogs.States, b.X, b.Y); ok {
		ctrls = append(ctrls, lbl)
	} else {
		ctrls = append(ctrls, "UNKNOWN")
	}

	if b.NodeType == NGStorage {
		if lbl, ok := locate(c.catalogs.NGRegion, b.X, b.Y); ok {
			ctrls = append(ctrls, lbl)
		} else {
			ctrls = append(ctrls, "UNKNOWN")
		}
	}
	return ctrls
}

// attributeRegions implements region/ISO/NG-region attribution: a
// pre-declared attribute wins; otherwise polygon containment with
// nearest-polygon fallback (PolygonMissError conditions resolve to an
// "UNKNOWN" controller, per spec.md §7). The polygon lookups are the one
// read-only, per-buffer-independent piece of the pipeline, so they run
// across a bounded pool of goroutines the same way
// InitInMAPdata/aeputil's spatial loader stride a fixed-size index range
// per worker; results are collected into a buffer-indexed slice and
// applied to the shared controller list on the calling goroutine, so no
// lock is needed on the buffers themselves.
func (c *Context) attributeRegions() {
	n := len(c.buffers)
	results := make([][]string, n)

	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > n {
		nprocs = n
	}
	if nprocs < 1 {
		nprocs = 1
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for i := p; i < n; i += nprocs {
				results[i] = c.resolveControllers(c.buffers[i])
			}
		}(p)
	}
	wg.Wait()

	c.controllers = nil
	seen := map[string]bool{}
	for i, b := range c.buffers {
		for _, ctrl := range results[i] {
			b.addController(ctrl)
			if !seen[ctrl] {
				seen[ctrl] = true
				c.controllers = append(c.controllers, ctrl)
			}
		}
	}
}

// primaryPriority returns, for a line_type, the node-type priority
// order of spec.md §4.6's table. A nil slice means "no named priority:
// fall back to first buffer in discovery order" (otherPipe and any
// line_type not in the table).
func primaryPriority(lt LineType) []NodeType {
	switch lt {
	case ElecLine:
		return []NodeType{LoadC, LoadS, GenC, GenS}
	case NGPipe:
		return []NodeType{NGReceiptDelivery, NGProcessor, Compressor}
	case OilRefPipe, OilCrudePipe:
		return []NodeType{OilPort, OilTerminal, OilRefinery}
	case CoalRailroad:
		return []NodeType{CoalDock, CoalSource}
	}
	return nil
}

// selectPrimary picks the primary buffer among idxs (buffer indices,
// in discovery order) for line_type lt: first priority match wins,
// discovery order breaks ties within a priority class, and any
// unmatched priority list falls back to the first buffer discovered.
func (c *Context) selectPrimary(lt LineType, idxs []int) *Buffer {
	for _, nt := range primaryPriority(lt) {
		for _, i := range idxs {
			if c.buffers[i].NodeType == nt {
				return c.buffers[i]
			}
		}
	}
	return c.buffers[idxs[0]]
}

// clusterInfo is the per-cluster primary-selection cache entry.
type clusterInfo struct {
	primary    *Buffer
	bufferIdxs []int
	lineType   LineType
}

func (c *Context) bufferIndicesInCluster(cl Cluster) []int {
	nT := len(c.transporters)
	var idxs []int
	for i := range c.buffers {
		if c.points[2*nT+i].Cluster == cl {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// nameEndpoints is cluster-primary selection plus endpoint naming: it
// resolves every transporter endpoint's bare geolocation to a buffer
// name where its cluster has one (I5), then discards any transporter
// whose either endpoint cannot be named.
func (c *Context) nameEndpoints() error {
	cache := map[Cluster]*clusterInfo{}
	getInfo := func(cl Cluster, lt LineType) *clusterInfo {
		if info, ok := cache[cl]; ok {
			return info
		}
		idxs := c.bufferIndicesInCluster(cl)
		info := &clusterInfo{bufferIdxs: idxs, lineType: lt}
		switch len(idxs) {
		case 0:
			info.primary = nil
		case 1:
			info.primary = c.buffers[idxs[0]]
		default:
			info.primary = c.selectPrimary(lt, idxs)
		}
		cache[cl] = info
		return info
	}

	var keep []*Transporter
	for _, t := range c.transporters {
		oInfo := getInfo(t.Origin.Cluster, t.LineType)
		dInfo := getInfo(t.Dest.Cluster, t.LineType)
		if oInfo.primary != nil {
			t.Origin.Name = oInfo.primary.Name
		}
		if dInfo.primary != nil {
			t.Dest.Name = dInfo.primary.Name
		}
		if oInfo.primary == nil || dInfo.primary == nil {
			continue // cannot name both endpoints; discard
		}
		t.Controllers = unionStrings(oInfo.primary.Controllers, dInfo.primary.Controllers)
		keep = append(keep, t)
	}
	c.transporters = keep
	c.clusterCache = cache
	return nil
}

// sortedClusterIDs returns cache's keys in ascending order, so that
// cluster-keyed passes over a map iterate deterministically (the same
// discipline insertJunctionBuffers applies to its cluster set).
func sortedClusterIDs(cache map[Cluster]*clusterInfo) []Cluster {
	ids := make([]Cluster, 0, len(cache))
	for cl := range cache {
		ids = append(ids, cl)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	return ids
}

// emitRadialConnectors emits, for every cluster whose selected primary
// has sibling buffers, one connector transporter per non-primary
// buffer whose refinements intersect the primary's. Clusters are
// visited in ascending id order so the emitted sequence (and thus the
// final transporter ordering) is deterministic, per spec.md's
// pipeline-determinism requirement.
func (c *Context) emitRadialConnectors() {
	for _, cl := range sortedClusterIDs(c.clusterCache) {
		info := c.clusterCache[cl]
		if info.primary == nil || len(info.bufferIdxs) < 2 {
			continue
		}
		for _, idx := range info.bufferIdxs {
			b := c.buffers[idx]
			if b == info.primary {
				continue
			}
			shared := refinementIntersection(info.primary.Refinements, b.Refinements)
			if len(shared) == 0 {
				continue
			}
			conn := &Transporter{
				Name:     "radial-" + info.primary.Name + "-" + b.Name,
				LineType: info.lineType,
				Origin: Endpoint{X: info.primary.X, Y: info.primary.Y, Cluster: cl, Name: info.primary.Name},
				Dest:    Endpoint{X: b.X, Y: b.Y, Cluster: cl, Name: b.Name},
				Refinements: shared,
				Status:      "true",
				Controllers: unionStrings(info.primary.Controllers, b.Controllers),
			}
			c.transporters = append(c.transporters, conn)
		}
	}
}

// rescueIsolatedOilPlants is the post-C6 isolated oil-plant rescue:
// every controllable generator carrying processed oil that is not an
// endpoint of any processed-oil transporter gets connected to the
// nearest oil terminal/port/independent buffer within range.
func (c *Context) rescueIsolatedOilPlants() {
	oilEndpoint := map[string]bool{}
	for _, t := range c.transporters {
		if t.HasRefinement(RefProcessedOil) {
			oilEndpoint[t.Origin.Name] = true
			oilEndpoint[t.Dest.Name] = true
		}
	}
	var neighbors []*Buffer
	for _, b := range c.buffers {
		switch b.NodeType {
		case OilTerminal, OilPort, OilIndBuffer:
			neighbors = append(neighbors, b)
		}
	}
	for _, b := range c.buffers {
		if b.NodeType != GenC || !b.HasRefinement(RefProcessedOil) || oilEndpoint[b.Name] {
			continue
		}
		var nearest *Buffer
		best := math.MaxFloat64
		for _, n := range neighbors {
			d := dist(b.X, b.Y, n.X, n.Y)
			if d <= OilRescueRadius() && d < best {
				best, nearest = d, n
			}
		}
		if nearest == nil {
			c.log.WithField("buffer", b.Name).Warn("isolated oil plant: no neighbor within rescue radius")
			continue
		}
		c.transporters = append(c.transporters, &Transporter{
			Name:        "oil-rescue-" + nearest.Name + "-" + b.Name,
			LineType:    OilRefPipe,
			Origin:      Endpoint{X: nearest.X, Y: nearest.Y, Name: nearest.Name},
			Dest:        Endpoint{X: b.X, Y: b.Y, Name: b.Name},
			Refinements: []Refinement{RefProcessedOil},
			Status:      "true",
			Controllers: unionStrings(nearest.Controllers, b.Controllers),
		})
	}
}

func unionStrings(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, s := range b {
		found := false
		for _, x := range out {
			if x == s {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}
