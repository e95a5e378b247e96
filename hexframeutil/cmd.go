/*
Copyright © 2026 the Hexframe authors.
This file is part of Hexframe.

Hexframe is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Hexframe is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Hexframe.  If not, see <http://www.gnu.org/licenses/>.
*/

package hexframeutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/hexframe"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Hexframe.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile specifies the dataset to read. The format is chosen
              from the file extension: .csv, .shp, or .xlsx.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets: []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags(),
				polyfillCmd.Flags(), linetraceCmd.Flags(), smoothCmd.Flags()},
		},
		{
			name: "InputSchema",
			usage: `
              InputSchema specifies an optional TOML file declaring the types
              of the input columns. Without it, column types are inferred.`,
			defaultVal: "",
			flagsets: []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags(),
				polyfillCmd.Flags(), linetraceCmd.Flags(), smoothCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path where results are saved. The
              format is chosen from the file extension: .csv, .shp, or
              .geojson.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets: []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags(),
				polyfillCmd.Flags(), linetraceCmd.Flags(), smoothCmd.Flags()},
		},
		{
			name: "Resolution",
			usage: `
              Resolution specifies the grid resolution (0-15) that cells are
              assigned, filled, or traced at.`,
			shorthand:  "r",
			defaultVal: 9,
			flagsets: []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags(),
				polyfillCmd.Flags(), linetraceCmd.Flags()},
		},
		{
			name: "LatColumn",
			usage: `
              LatColumn is the name of the input column holding latitudes
              in degrees.`,
			defaultVal: hexframe.DefaultLatColumn,
			flagsets:   []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags()},
		},
		{
			name: "LngColumn",
			usage: `
              LngColumn is the name of the input column holding longitudes
              in degrees.`,
			defaultVal: hexframe.DefaultLngColumn,
			flagsets:   []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags()},
		},
		{
			name: "Geometry",
			usage: `
              Geometry chooses the geometry attached to the output: 'none',
              'boundary' for cell polygons, or 'centroid' for cell centers.`,
			defaultVal: "none",
			flagsets: []*pflag.FlagSet{indexCmd.Flags(), aggregateCmd.Flags(),
				polyfillCmd.Flags(), smoothCmd.Flags()},
		},
		{
			name: "SetIndex",
			usage: `
              SetIndex specifies whether the assigned cell addresses become
              the table index instead of a regular column.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{indexCmd.Flags()},
		},
		{
			name: "Operation",
			usage: `
              Operation is the reduction applied to each group of rows:
              sum, mean, count, min, or max.`,
			defaultVal: "sum",
			flagsets:   []*pflag.FlagSet{aggregateCmd.Flags()},
		},
		{
			name: "Parents",
			usage: `
              Parents specifies that the input is already indexed by cell
              addresses and should be aggregated to parent cells at
              Resolution, instead of assigning cells from coordinates.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{aggregateCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables maps new column names to expressions over the
              aggregated columns, for example
              {"density": "val / area(h3_cell)"}.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{aggregateCmd.Flags()},
		},
		{
			name: "Report",
			usage: `
              Report specifies whether to print a table of column totals
              after aggregating.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{aggregateCmd.Flags()},
		},
		{
			name: "Explode",
			usage: `
              Explode specifies whether list results are expanded to one
              output row per cell instead of one list per input row.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{polyfillCmd.Flags(), linetraceCmd.Flags()},
		},
		{
			name: "Resample",
			usage: `
              Resample specifies whether filled cells replace the input
              geometry as the table index, dropping rows whose geometry
              covers no cells.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{polyfillCmd.Flags()},
		},
		{
			name: "RingRadius",
			usage: `
              RingRadius is the k-ring radius for equal-weight smoothing.
              The default of -1 means Weights are used instead.`,
			shorthand:  "k",
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{smoothCmd.Flags()},
		},
		{
			name: "Weights",
			usage: `
              Weights is a JSON list of per-ring smoothing weights, outermost
              ring last, for example "[4, 2, 1]". Exactly one of RingRadius
              and Weights must be given.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{smoothCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("HEXFRAME")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(indexCmd)
	Root.AddCommand(aggregateCmd)
	Root.AddCommand(polyfillCmd)
	Root.AddCommand(linetraceCmd)
	Root.AddCommand(smoothCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("hexframe: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "hexframe",
	Short: "Bind tables of geospatial data to the H3 hexagonal grid.",
	Long: `Hexframe assigns table rows to cells of the H3 hexagonal hierarchical
grid and works with the resulting cell-indexed tables: aggregating rows to
coarser cells, filling polygons and tracing lines with cells, and smoothing
values over cell neighborhoods.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'HEXFRAME_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Hexframe.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Hexframe v%s\n", hexframe.Version)
	},
	DisableAutoGenTag: true,
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Assign table rows to grid cells.",
	Long: `index reads a point dataset, assigns each row the address of the grid
cell containing its location at the configured resolution, and writes the
result, optionally with cell boundary or centroid geometry attached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		resolution, err := checkResolution(Cfg.GetInt("Resolution"))
		if err != nil {
			return err
		}
		geometry, err := checkGeometry(Cfg.GetString("Geometry"))
		if err != nil {
			return err
		}
		return Index(inputFile, os.ExpandEnv(Cfg.GetString("InputSchema")),
			outputFile, resolution,
			Cfg.GetString("LatColumn"), Cfg.GetString("LngColumn"),
			Cfg.GetBool("SetIndex"), geometry)
	},
	DisableAutoGenTag: true,
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Group rows by grid cell and reduce them.",
	Long: `aggregate assigns each row to a grid cell (or, with --Parents, walks
already-assigned cells up to their parents at the configured resolution),
groups rows sharing a cell, and reduces each numeric column with the
configured operation. Additional output columns can be derived from the
aggregated values with OutputVariables expressions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		resolution, err := checkResolution(Cfg.GetInt("Resolution"))
		if err != nil {
			return err
		}
		geometry, err := checkGeometry(Cfg.GetString("Geometry"))
		if err != nil {
			return err
		}
		operation, err := checkOperation(Cfg.GetString("Operation"))
		if err != nil {
			return err
		}
		return Aggregate(cmd.OutOrStdout(),
			inputFile, os.ExpandEnv(Cfg.GetString("InputSchema")),
			outputFile, resolution, operation,
			Cfg.GetString("LatColumn"), Cfg.GetString("LngColumn"),
			Cfg.GetBool("Parents"), geometry,
			GetStringMapString("OutputVariables", Cfg),
			Cfg.GetBool("Report"))
	},
	DisableAutoGenTag: true,
}

var polyfillCmd = &cobra.Command{
	Use:   "polyfill",
	Short: "Fill polygon geometries with grid cells.",
	Long: `polyfill reads a polygon dataset and computes, for each row, the set
of cells at the configured resolution whose centroids fall inside the row's
polygon (holes excluded). With --Resample, the filled cells become the table
index and rows covering no cells are dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		resolution, err := checkResolution(Cfg.GetInt("Resolution"))
		if err != nil {
			return err
		}
		geometry, err := checkGeometry(Cfg.GetString("Geometry"))
		if err != nil {
			return err
		}
		return Polyfill(inputFile, os.ExpandEnv(Cfg.GetString("InputSchema")),
			outputFile, resolution,
			Cfg.GetBool("Explode"), Cfg.GetBool("Resample"), geometry)
	},
	DisableAutoGenTag: true,
}

var linetraceCmd = &cobra.Command{
	Use:   "linetrace",
	Short: "Trace line geometries through grid cells.",
	Long: `linetrace reads a line dataset and computes, for each row, the
sequence of cells at the configured resolution that the line passes through,
with consecutive duplicates removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		resolution, err := checkResolution(Cfg.GetInt("Resolution"))
		if err != nil {
			return err
		}
		return LineTrace(inputFile, os.ExpandEnv(Cfg.GetString("InputSchema")),
			outputFile, resolution, Cfg.GetBool("Explode"))
	},
	DisableAutoGenTag: true,
}

var smoothCmd = &cobra.Command{
	Use:   "smooth",
	Short: "Smooth cell-indexed values over grid neighborhoods.",
	Long: `smooth reads a dataset indexed by cell addresses and spreads each
row's numeric values over the cell's k-ring neighborhood, either uniformly
(--RingRadius) or with per-ring weights (--Weights).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		geometry, err := checkGeometry(Cfg.GetString("Geometry"))
		if err != nil {
			return err
		}
		weights, err := toFloat64SliceE(Cfg.GetString("Weights"))
		if err != nil {
			return err
		}
		return Smooth(inputFile, os.ExpandEnv(Cfg.GetString("InputSchema")),
			outputFile, Cfg.GetInt("RingRadius"), weights, geometry)
	},
	DisableAutoGenTag: true,
}
