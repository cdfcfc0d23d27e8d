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

// NGFiles names the shapefiles behind one natural-gas-subsystem
// ingestion pass, mirroring NGGrid.py's instantiate_* call list.
type NGFiles struct {
	PowerPlants, Terminals, ReceiptDelivery, Processors, Storage, Compressors, Pipes string
	FuelTable                                                                       string
}

// BuildNG assembles the NG subsystem, grounded on NGGrid.py's
// instantiate_NGPowerPlant/instantiate_terminal/
// instantiate_NGReceiptDelivery/instantiate_processor/
// instantiate_NGStorage/instantiate_compressor/instantiate_NGPipe.
func BuildNG(f NGFiles) ([]*revise.Buffer, []*revise.Transporter, error) {
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
		NodeType: revise.NGTerminal, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Rejected", "Withdrawn", "Cancelled"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefProcessedGas, revise.RefSyngas},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, terminals...)

	receiptDelivery, err := BuildBuffers(f.ReceiptDelivery, BufferSpec{
		NodeType:    revise.NGReceiptDelivery,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefRawGas, revise.RefProcessedGas, revise.RefSyngas},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, receiptDelivery...)

	processors, err := BuildBuffers(f.Processors, BufferSpec{
		NodeType: revise.NGProcessor, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Cancelled"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefRawGas, revise.RefProcessedGas},
		RegionField: "STUSPS", ISOField: "ISO",
		CapacityFields: []string{"CAPACITY"}, CapacityConv: MMBTUPerHour,
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, processors...)

	storage, err := BuildBuffers(f.Storage, BufferSpec{
		NodeType: revise.NGStorage, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Rejected", "Abandoned", "Canceled"}, RejectBlankStatus: true,
		FuelField: "TYPE", FuelTablePath: f.FuelTable,
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, storage...)

	compressors, err := BuildBuffers(f.Compressors, BufferSpec{
		NodeType:    revise.Compressor,
		NameField:   "NAME",
		Refinements: []revise.Refinement{revise.RefProcessedGas, revise.RefSyngas, revise.RefRawGas},
		RegionField: "STUSPS", ISOField: "ISO",
	}, seen)
	if err != nil {
		return nil, nil, err
	}
	buffers = append(buffers, compressors...)

	pipes, err := BuildTransporters(f.Pipes, LineSpec{
		LineType: revise.NGPipe, NameField: "NAME",
		StatusField: "STATUS", RejectStatuses: []string{"Canceled"}, RejectBlankStatus: true,
		Refinements: []revise.Refinement{revise.RefProcessedGas, revise.RefSyngas, revise.RefRawGas},
	})
	if err != nil {
		return nil, nil, err
	}

	return buffers, pipes, nil
}
