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

// Command hfgtrevise is a command-line interface for the HFGT topology
// reviser.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LIINES/hfgt-revise/revise"
)

var (
	configFile string

	// Config holds the global configuration data, set by RootCmd's
	// PersistentPreRunE before any subcommand runs.
	Config *ConfigData
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "hfgtrevise",
	Short: "A deterministic topology reviser for multi-energy infrastructure graphs.",
	Long: `hfgtrevise ingests per-subsystem shapefiles describing electric, natural
gas, oil, and coal infrastructure, revises the resulting graph into a
single connected hetero-functional topology, and writes it out as an
HFGT-schema XML document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Startup(configFile))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		completedMessage()
	},
}

// Startup reads the configuration file, applies any clustering-radii
// overrides it specifies, and prints a welcome message.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}
	if Config.Radii.Primary != 0 {
		revise.EpsilonPrimary = Config.Radii.Primary
	}
	if Config.Radii.Secondary != 0 {
		revise.EpsilonSecondary = Config.Radii.Secondary
	}
	if Config.Radii.Tertiary != 0 {
		revise.EpsilonTertiary = Config.Radii.Tertiary
	}

	if Config.LogFile != "" {
		f, err := os.OpenFile(Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %v", err)
		}
		logrus.SetOutput(f)
	}

	fmt.Println("\n" +
		"------------------------------------------------\n" +
		"                    Welcome!\n" +
		"          HFGT Topology Reviser                 \n" +
		"------------------------------------------------")
	return nil
}

func completedMessage() {
	fmt.Println("\n" +
		"------------------------------------\n" +
		"       hfgtrevise completed!\n" +
		"------------------------------------")
}

func labelErr(err error) error {
	if err != nil {
		return fmt.Errorf("ERROR: %v", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(reviseCmd)
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./hfgtrevise.toml", "configuration file location")
}
