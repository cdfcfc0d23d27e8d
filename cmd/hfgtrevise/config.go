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

package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/LIINES/hfgt-revise/ingest"
)

// RegionConfig names one polygon catalog's shapefile and the attribute
// field carrying its label.
type RegionConfig struct {
	Shapefile  string
	LabelField string
}

// RadiiConfig optionally overrides the process-wide clustering radii.
// A zero field leaves the corresponding revise.Epsilon* at its default.
type RadiiConfig struct {
	Primary   float64
	Secondary float64
	Tertiary  float64
}

// ConfigData holds the information needed to run one revision: the
// per-subsystem input shapefiles, the polygon catalogs C6 attributes
// against, and the output locations. Mirrors inmap/cmd/config.go's
// ConfigData in structure and in the os.ExpandEnv-over-every-path-field
// treatment below.
type ConfigData struct {
	Electric ingest.ElectricFiles
	NaturalGas ingest.NGFiles
	Oil      ingest.OilFiles
	Coal     ingest.CoalFiles

	States   RegionConfig
	ISO      RegionConfig
	NGRegion RegionConfig

	Radii RadiiConfig

	// OutputFile is the path to the HFGT-schema XML file to create. Can
	// include environment variables.
	OutputFile string

	// SystemName is the LFES root element's "name" attribute in the
	// output document.
	SystemName string

	// LogFile is the path to the desired logfile location. If left
	// blank, logging goes to stderr only.
	LogFile string
}

func expandEnvFields(files *ingest.ElectricFiles, ng *ingest.NGFiles, oil *ingest.OilFiles, coal *ingest.CoalFiles) {
	files.PowerPlants = os.ExpandEnv(files.PowerPlants)
	files.Buses = os.ExpandEnv(files.Buses)
	files.Loads = os.ExpandEnv(files.Loads)
	files.Storage = os.ExpandEnv(files.Storage)
	files.Lines = os.ExpandEnv(files.Lines)
	files.FuelTable = os.ExpandEnv(files.FuelTable)

	ng.PowerPlants = os.ExpandEnv(ng.PowerPlants)
	ng.Terminals = os.ExpandEnv(ng.Terminals)
	ng.ReceiptDelivery = os.ExpandEnv(ng.ReceiptDelivery)
	ng.Processors = os.ExpandEnv(ng.Processors)
	ng.Storage = os.ExpandEnv(ng.Storage)
	ng.Compressors = os.ExpandEnv(ng.Compressors)
	ng.Pipes = os.ExpandEnv(ng.Pipes)
	ng.FuelTable = os.ExpandEnv(ng.FuelTable)

	oil.PowerPlants = os.ExpandEnv(oil.PowerPlants)
	oil.Terminals = os.ExpandEnv(oil.Terminals)
	oil.Ports = os.ExpandEnv(oil.Ports)
	oil.Refineries = os.ExpandEnv(oil.Refineries)
	oil.CrudePipes = os.ExpandEnv(oil.CrudePipes)
	oil.RefinedPipes = os.ExpandEnv(oil.RefinedPipes)
	oil.FuelTable = os.ExpandEnv(oil.FuelTable)

	coal.PowerPlants = os.ExpandEnv(coal.PowerPlants)
	coal.Docks = os.ExpandEnv(coal.Docks)
	coal.Sources = os.ExpandEnv(coal.Sources)
	coal.Railroads = os.ExpandEnv(coal.Railroads)
	coal.FuelTable = os.ExpandEnv(coal.FuelTable)
}

// ReadConfigFile reads and parses a TOML configuration file, the exact
// pattern of inmap/cmd/config.go:ReadConfigFile.
func ReadConfigFile(filename string) (*ConfigData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and try again", filename)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	b, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config := new(ConfigData)
	if _, err := toml.Decode(string(b), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}

	expandEnvFields(&config.Electric, &config.NaturalGas, &config.Oil, &config.Coal)
	config.States.Shapefile = os.ExpandEnv(config.States.Shapefile)
	config.ISO.Shapefile = os.ExpandEnv(config.ISO.Shapefile)
	config.NGRegion.Shapefile = os.ExpandEnv(config.NGRegion.Shapefile)
	config.OutputFile = os.ExpandEnv(config.OutputFile)
	config.LogFile = os.ExpandEnv(config.LogFile)

	if config.OutputFile == "" {
		return nil, fmt.Errorf("you need to specify an output file in the configuration file " +
			"(for example: OutputFile = \"output.xml\")")
	}
	if config.SystemName == "" {
		config.SystemName = "HFGT"
	}

	outdir := filepath.Dir(config.OutputFile)
	if err := os.MkdirAll(outdir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("problem creating output directory: %v", err)
	}
	return config, nil
}
