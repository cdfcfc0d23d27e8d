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

// ElectricFiles names the shapefiles behind one electric-subsystem
// ingestion pass, mirroring ElectricGrid.py's initialize_electric_grid
// datafiles list.
type ElectricFiles struct {
	PowerPlants, Buses, Loads, Storage, Lines string
	FuelTable                                 string
}

// BuildElectric assembles the electric subsystem's buffers and
// transporters, grounded on ElectricGrid.py's instantiate_gen_c/
// instantiate_gen_s/instantiate_load_c/instantiate_load_s/
// instantiate_storage_c/instantiate_storage_s/instantiate_buses/
// instantiate_electricLine.
func BuildElectric(f ElectricFiles) ([]*revise.Buffer, []*revise.Transporter, error) {
	seen := map[[2]float64]bool{}
	var buffers []*revise.Buffer

	genC, err := BuildBuffers(f.PowerPlants, BufferSpec{
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
	buffers = append(buffers, genC...)

	genS, err := BuildBuffers(f.PowerPlants, BufferSpec{
		NodeType:          revise.GenS,
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
	buffers = append(buffers, genS...)

	loadC, err := BuildBuffers(f.Loads, BufferSpec{
		NodeType:       revise.LoadC,
		NameField:      "NAME",
		Refinements:    []revise.Refinement{revise.RefElectric132kV},
		RegionField:    "STUSPS",
		ISOField:       "ISO",
		CapacityFields: []string{"LOAD_MW"},
		CapacityConv:   MW,
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, loadC...)

	storage, err := BuildBuffers(f.Storage, BufferSpec{
		NodeType:       revise.StorageC,
		NameField:      "NAME",
		Refinements:    []revise.Refinement{revise.RefElectric132kV},
		RegionField:    "STUSPS",
		ISOField:       "ISO",
		CapacityFields: []string{"OP_CAP"},
		CapacityConv:   MW,
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, storage...)

	buses, err := BuildBuffers(f.Buses, BufferSpec{
		NodeType:    revise.Bus,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefElectric132kV},
		RegionField: "STUSPS",
		ISOField:    "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, buses...)

	lines, err := BuildTransporters(f.Lines, LineSpec{
		LineType:    revise.ElecLine,
		NameField:   "LINE_NAME",
		StatusField: "STATUS",
		Refinements: []revise.Refinement{revise.RefElectric132kV},
	})
	if err != nil {
		return nil, nil, err
	}

	return buffers, lines, nil
}
