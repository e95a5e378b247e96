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
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialmodel/hexframe/h3grid"
)

// checkInputFile expands any environment variables in the input file path
// and makes sure the file exists.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: InputFile="data.csv")`)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("hexframe: the InputFile doesn't exist: %v", err)
	}
	return f, nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="output.csv")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("hexframe: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// checkResolution ensures that the grid resolution is within the range the
// grid defines.
func checkResolution(r int) (int, error) {
	if r < 0 || r > h3grid.MaxResolution {
		return r, fmt.Errorf("hexframe: the Resolution configuration variable must be between 0 and %d but is %d", h3grid.MaxResolution, r)
	}
	return r, nil
}

// checkGeometry ensures that an acceptable output geometry was specified.
func checkGeometry(g string) (string, error) {
	if g != "none" && g != "boundary" && g != "centroid" {
		return g, fmt.Errorf("the Geometry variable in the configuration "+
			"needs to be set to either none, boundary, or centroid, but is currently set to `%s`", g)
	}
	return g, nil
}

// checkOperation ensures that an acceptable reduction operation was
// specified.
func checkOperation(op string) (string, error) {
	switch op {
	case "sum", "mean", "count", "min", "max":
		return op, nil
	}
	return op, fmt.Errorf("the Operation variable in the configuration "+
		"needs to be set to sum, mean, count, min, or max, but is currently set to `%s`", op)
}

// toFloat64SliceE converts a JSON list of numbers to a slice of floats.
// An empty string converts to a nil slice.
func toFloat64SliceE(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	var o []float64
	if err := json.Unmarshal([]byte(s), &o); err != nil {
		return nil, fmt.Errorf("hexframe: parsing Weights: %v", err)
	}
	return o, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i))
	}
}
