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
	"fmt"
	"math"
	"sort"

	"github.com/Knetic/govaluate"

	"github.com/spatialmodel/hexframe/frame"
	"github.com/spatialmodel/hexframe/h3grid"
)

// outputFunctions are the functions available to OutputVariables
// expressions:
//
// 'exp(x)' applies the exponential function e^x.
//
// 'log(x)' applies the natural logarithm.
//
// 'sqrt(x)' applies the square root.
//
// 'area(cell)' returns the area of the grid cell with the given address
// in square kilometers. The current row's address is available in the
// variable 'h3_cell'.
var outputFunctions = map[string]govaluate.ExpressionFunction{
	"exp": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("hexframe: got %d arguments for function 'exp', but needs 1", len(arg))
		}
		return (float64)(math.Exp(arg[0].(float64))), nil
	},
	"log": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("hexframe: got %d arguments for function 'log', but needs 1", len(arg))
		}
		return (float64)(math.Log(arg[0].(float64))), nil
	},
	"sqrt": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("hexframe: got %d arguments for function 'sqrt', but needs 1", len(arg))
		}
		return (float64)(math.Sqrt(arg[0].(float64))), nil
	},
	"area": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("hexframe: got %d arguments for function 'area', but needs 1", len(arg))
		}
		address, ok := arg[0].(string)
		if !ok {
			return nil, fmt.Errorf("hexframe: function 'area' needs a cell address but got %v", arg[0])
		}
		return h3grid.Area(address, "km^2")
	},
}

// applyOutputVariables appends a column for each output variable, computed
// by evaluating its expression row by row. Expressions can use the numeric
// columns of the table and the variable 'h3_cell', which holds the row's
// cell address.
func applyOutputVariables(f *frame.Frame, outputVariables map[string]string) (*frame.Frame, error) {
	if len(outputVariables) == 0 {
		return f, nil
	}
	names := make([]string, 0, len(outputVariables))
	for name := range outputVariables {
		names = append(names, name)
	}
	sort.Strings(names)

	numeric := make(map[string][]float64)
	for _, col := range f.Columns() {
		if !f.IsNumeric(col) {
			continue
		}
		vals, err := f.Floats(col)
		if err != nil {
			return nil, err
		}
		numeric[col] = vals
	}
	index := f.Index()

	for _, name := range names {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(outputVariables[name], outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("hexframe: parsing output variable %s: %v", name, err)
		}
		out := make([]interface{}, f.Len())
		for row := 0; row < f.Len(); row++ {
			params := make(map[string]interface{}, len(numeric)+1)
			for col, vals := range numeric {
				params[col] = vals[row]
			}
			if address, ok := index[row].(string); ok {
				params["h3_cell"] = address
			}
			v, err := expression.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("hexframe: evaluating output variable %s: %v", name, err)
			}
			out[row] = v
		}
		if f, err = f.Assign(name, out); err != nil {
			return nil, err
		}
	}
	return f, nil
}
