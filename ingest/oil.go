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

// OilFiles names the shapefiles behind one oil-subsystem ingestion
// pass, mirroring OilGrid.py's instantiate_* call list.
type OilFiles struct {
	PowerPlants, Terminals, Ports, Refineries, CrudePipes, RefinedPipes string
	FuelTable                                                          string
}

// BuildOil assembles the oil subsystem, grounded on OilGrid.py's
// instantiate_OilPowerPlant/instantiate_OilTerminal/
// instantiate_OilPorts/instantiate_OilRefineries/
// instantiate_OilCrudePipe/instantiate_OilRefinedPipe.
func BuildOil(f OilFiles) ([]*revise.Buffer, []*revise.Transporter, error) {
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

	terminals, err := BuildBuffers(f.Terminals, BufferSpec{
		NodeType: revise.OilTerminal, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Rejected", "Withdrawn"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefProcessedOil, revise.RefCrudeOil, revise.RefLiquidBiomass, revise.RefProcessedGas},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, terminals...)

	ports, err := BuildBuffers(f.Ports, BufferSpec{
		NodeType:    revise.OilPort,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefProcessedOil, revise.RefCrudeOil},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, ports...)

	refineries, err := BuildBuffers(f.Refineries, BufferSpec{
		NodeType:       revise.OilRefinery,
		NameField:      "NAME",
		Refinements:    []revise.Refinement{revise.RefProcessedOil, revise.RefCrudeOil},
		RegionField:    "STUSPS", ISOField: "ISO",
		CapacityFields: []string{"CAPACITY"}, CapacityConv: MMBTUPerHour,
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, refineries...)

	crude, err := BuildTransporters(f.CrudePipes, LineSpec{
		LineType: revise.OilCrudePipe, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Shut Down"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefCrudeOil},
	})
	if err != nil {
		return nil, nil, err
	}

	refined, err := BuildTransporters(f.RefinedPipes, LineSpec{
		LineType: revise.OilRefPipe, NameField: "NAME",
		StatusField: "PROJSTATUS", RejectStatuses: []string{"Out of Service", "Shut Down"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefProcessedOil},
	})
	if err != nil {
		return nil, nil, err
	}

	return buffers, append(crude, refined...), nil
}
