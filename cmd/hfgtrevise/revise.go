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
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LIINES/hfgt-revise/ingest"
	"github.com/LIINES/hfgt-revise/region"
	"github.com/LIINES/hfgt-revise/revise"
	"github.com/LIINES/hfgt-revise/xmlout"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Ingest the configured shapefiles and write a revised HFGT XML file.",
	Long: "revise reads the electric, natural gas, oil, and coal subsystem " +
		"shapefiles named in the configuration file, runs the topology " +
		"revision pipeline over the combined graph, and writes the result " +
		"to the configured output file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Revise(Config))
	},
}

func loadCatalog(rc RegionConfig) (*region.Catalog, error) {
	if rc.Shapefile == "" {
		return nil, nil
	}
	return region.Load(rc.Shapefile, rc.LabelField)
}

// Revise ingests every subsystem named in cfg, runs the revision
// pipeline, and writes the HFGT XML output, the Go equivalent of
// AMES.py's top-level "build the grid, revise it, write_xml_hfgt" call
// sequence.
func Revise(cfg *ConfigData) error {
	log := logrus.WithField("component", "cmd")

	var buffers []*revise.Buffer
	var transporters []*revise.Transporter

	eb, et, err := ingest.BuildElectric(cfg.Electric)
	if err != nil {
		return fmt.Errorf("ingesting electric subsystem: %v", err)
	}
	buffers, transporters = append(buffers, eb...), append(transporters, et...)
	log.WithField("buffers", len(eb)).WithField("transporters", len(et)).Info("ingested electric subsystem")

	nb, nt, err := ingest.BuildNG(cfg.NaturalGas)
	if err != nil {
		return fmt.Errorf("ingesting natural gas subsystem: %v", err)
	}
	buffers, transporters = append(buffers, nb...), append(transporters, nt...)
	log.WithField("buffers", len(nb)).WithField("transporters", len(nt)).Info("ingested natural gas subsystem")

	ob, ot, err := ingest.BuildOil(cfg.Oil)
	if err != nil {
		return fmt.Errorf("ingesting oil subsystem: %v", err)
	}
	buffers, transporters = append(buffers, ob...), append(transporters, ot...)
	log.WithField("buffers", len(ob)).WithField("transporters", len(ot)).Info("ingested oil subsystem")

	cb, ct, err := ingest.BuildCoal(cfg.Coal)
	if err != nil {
		return fmt.Errorf("ingesting coal subsystem: %v", err)
	}
	buffers, transporters = append(buffers, cb...), append(transporters, ct...)
	log.WithField("buffers", len(cb)).WithField("transporters", len(ct)).Info("ingested coal subsystem")

	states, err := loadCatalog(cfg.States)
	if err != nil {
		return fmt.Errorf("loading states catalog: %v", err)
	}
	iso, err := loadCatalog(cfg.ISO)
	if err != nil {
		return fmt.Errorf("loading ISO catalog: %v", err)
	}
	ngRegion, err := loadCatalog(cfg.NGRegion)
	if err != nil {
		return fmt.Errorf("loading NG region catalog: %v", err)
	}

	catalogs := revise.Catalogs{States: states, ISO: iso, NGRegion: ngRegion}
	ctx := revise.NewContext(transporters, buffers, catalogs)
	if err := ctx.Revise(); err != nil {
		return fmt.Errorf("revising topology: %v", err)
	}

	log.WithField("buffers", len(ctx.Buffers())).
		WithField("transporters", len(ctx.Transporters())).
		WithField("controllers", len(ctx.Controllers())).
		Info("revision complete")

	if err := xmlout.WriteFile(cfg.OutputFile, cfg.SystemName, ctx); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}
