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

// lineTypeFor maps a refinement to the synthetic transporter type C3
// materializes for it, per spec.md's C3 type table.
func lineTypeFor(r Refinement) (LineType, bool) {
	switch r {
	case RefElectric132kV:
		return ElecLine, true
	case RefProcessedGas, RefSyngas, RefRawGas:
		return NGPipe, true
	case RefProcessedOil:
		return OilRefPipe, true
	case RefCrudeOil, RefLiquidBiomass, RefWaterEnergy:
		return OilCrudePipe, true
	case RefCoal:
		return CoalRailroad, true
	case RefOther, RefSolidBiomass, RefUranium:
		return OtherPipe, true
	}
	return "", false
}

// synthesize is C3, the transporter synthesizer. It consumes the
// synthetic-transporter queue C2 recorded and, for each entry, either
// materializes a new transporter and splices its two point-rows in at
// the positional boundary (AMES.py:updateTransporters), or — if the
// source row's refinement is unrecognized — leaves the source row
// unclustered for C4 to prune.
func (c *Context) synthesize() error {
	queue := c.synthQueue
	c.synthQueue = nil

	// Buffer rows shift by +2 per synthetic transporter spliced in
	// ahead of them; endpoint rows captured before this loop never
	// move. resolveRow maps a row index recorded by C2 to its current
	// position, keyed off the stable buffer offset rather than the
	// now-stale raw index.
	nTOrig := len(c.transporters)
	resolveRow := func(orig int) int {
		if orig < 2*nTOrig {
			return orig
		}
		return 2*len(c.transporters) + (orig - 2*nTOrig)
	}

	for _, req := range queue {
		fromRow := resolveRow(req.fromRow)
		toRow := resolveRow(req.toRow)

		fromCol := c.points[fromRow].Columns
		if len(fromCol) == 0 {
			continue
		}
		ref := c.refinements.order[fromCol[0]]
		lt, ok := lineTypeFor(ref)
		if !ok {
			c.points[fromRow].Cluster = noCluster
			continue
		}

		from := c.points[fromRow]
		to := c.points[toRow]

		nT := len(c.transporters)
		insertAt := 2 * nT

		t := &Transporter{
			Name:        synthName(nT),
			LineType:    lt,
			Origin:      Endpoint{X: to.X, Y: to.Y, Cluster: to.Cluster},
			Dest:        Endpoint{X: from.X, Y: from.Y, Cluster: from.Cluster},
			Refinements: []Refinement{ref},
			Status:      "true",
		}
		c.transporters = append(c.transporters, t)

		if err := c.insertRow(insertAt, pointRow{X: to.X, Y: to.Y, Columns: fromCol, Cluster: to.Cluster}); err != nil {
			return err
		}
		if err := c.insertRow(insertAt+1, pointRow{X: from.X, Y: from.Y, Columns: fromCol, Cluster: from.Cluster}); err != nil {
			return err
		}
	}
	c.syncTransporterEndpoints()
	return nil
}

func synthName(n int) string {
	return "synth-transporter-" + strconv.Itoa(n)
}
