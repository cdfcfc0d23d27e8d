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

package ingest

import "github.com/LIINES/hfgt-revise/revise"

// CoalFiles names the shapefiles behind one coal-subsystem ingestion
// pass, mirroring CoalGrid.py's instantiate_* call list.
type CoalFiles struct {
	PowerPlants, Docks, Sources, Railroads string
	FuelTable                              string
}

// BuildCoal assembles the coal subsystem, grounded on CoalGrid.py's
// instantiate_CoalPowerPlant/instantiate_CoalDock/
// instantiate_CoalSource/instantiate_CoalRailroad.
func BuildCoal(f CoalFiles) ([]*revise.Buffer, []*revise.Transporter, error) {
	seen := map[[2]float64]bool{}
	var buffers []*revise.Buffer

	gen, err := BuildBuffers(f.PowerPlants, BufferSpec{
		NodeType:          revise.GenC,
		NameField:         "PLANT_NAME",
		StatusField:       "STATUS",
		RejectStatuses:    []string{"NOT_OP"},
		RejectBlankStatus: true,
		FuelField:         "FUEL_CAT",
		FuelTablePath:     f.FuelTable,
		Refinements:       []revise.Refinement{revise.RefElectric132kV},
		RegionField:       "STUSPS",
		ISOField:          "ISO",
		CapacityFields:    []string{"OP_CAP", "SUMMER_CAP", "WINTER_CAP"},
		CapacityConv:      MW,
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, gen...)

	docks, err := BuildBuffers(f.Docks, BufferSpec{
		NodeType:    revise.CoalDock,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefCoal},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, docks...)

	sources, err := BuildBuffers(f.Sources, BufferSpec{
		NodeType: revise.CoalSource, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Closed"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefCoal},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, sources...)

	rail, err := BuildTransporters(f.Railroads, LineSpec{
		LineType:    revise.CoalRailroad,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefCoal},
	})
	if err != nil {
		return nil, nil, err
	}

	return buffers, rail, nil
}
