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
	"io"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/hexframe"
	"github.com/spatialmodel/hexframe/frame"
)

// readHex reads a dataset and binds it to the grid operations.
func readHex(inputFile, schemaPath string) (*hexframe.Hex, error) {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	f, err := ReadFrame(inputFile, schema)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"file": inputFile,
		"rows": f.Len(),
	}).Info("hexframe: read dataset")
	return hexframe.New(f), nil
}

// writeHex writes the result dataset and logs its size.
func writeHex(h *hexframe.Hex, outputFile string) error {
	if err := WriteFrame(h.Frame(), outputFile); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file": outputFile,
		"rows": h.Frame().Len(),
	}).Info("hexframe: wrote dataset")
	return nil
}

// setCellIndex moves the finest cell address column of f to the index, for
// datasets that carry previously assigned addresses as a regular column.
// Frames that already have a named index are returned unchanged.
func setCellIndex(f *frame.Frame) (*frame.Frame, error) {
	if f.IndexName() != "" {
		return f, nil
	}
	for r := 15; r >= 0; r-- {
		name := fmt.Sprintf("h3_%02d", r)
		if f.HasColumn(name) {
			return f.SetIndex(name)
		}
	}
	return nil, fmt.Errorf("hexframe: the dataset has no cell address column (h3_00 through h3_15)")
}

// attachGeometry adds the configured geometry to a cell-indexed table.
func attachGeometry(h *hexframe.Hex, geometry string) (*hexframe.Hex, error) {
	switch geometry {
	case "boundary":
		return h.CellToBoundary()
	case "centroid":
		return h.CellToPoint()
	}
	return h, nil
}

// Index assigns each row of the input dataset to a grid cell and writes
// the result.
func Index(inputFile, schemaPath, outputFile string, resolution int, latCol, lngCol string, setIndex bool, geometry string) error {
	h, err := readHex(inputFile, schemaPath)
	if err != nil {
		return err
	}
	if h, err = h.AssignCells(resolution, latCol, lngCol, setIndex); err != nil {
		return err
	}
	if setIndex {
		if h, err = attachGeometry(h, geometry); err != nil {
			return err
		}
	}
	return writeHex(h, outputFile)
}

// Aggregate groups the input dataset by grid cell and reduces each numeric
// column, optionally deriving further columns from the result and printing
// a report of column totals to w.
func Aggregate(w io.Writer, inputFile, schemaPath, outputFile string, resolution int, operation, latCol, lngCol string, parents bool, geometry string, outputVariables map[string]string, report bool) error {
	h, err := readHex(inputFile, schemaPath)
	if err != nil {
		return err
	}
	returnGeometry := geometry == "boundary"
	if parents {
		f, err := setCellIndex(h.Frame())
		if err != nil {
			return err
		}
		h = hexframe.New(f)
		if h, err = h.AggregateParents(resolution, operation, returnGeometry); err != nil {
			return err
		}
	} else {
		if h, err = h.AggregateCells(resolution, operation, latCol, lngCol, returnGeometry); err != nil {
			return err
		}
	}
	if geometry == "centroid" {
		if h, err = h.CellToPoint(); err != nil {
			return err
		}
	}
	f, err := applyOutputVariables(h.Frame(), outputVariables)
	if err != nil {
		return err
	}
	h = hexframe.New(f)
	if report {
		t, err := TotalsReport(h.Frame())
		if err != nil {
			return err
		}
		if _, err := t.Tabbed(w); err != nil {
			return err
		}
	}
	return writeHex(h, outputFile)
}

// Polyfill fills each input polygon with grid cells and writes the result.
func Polyfill(inputFile, schemaPath, outputFile string, resolution int, explode, resample bool, geometry string) error {
	h, err := readHex(inputFile, schemaPath)
	if err != nil {
		return err
	}
	if resample {
		if h, err = h.PolyfillResample(resolution, geometry == "boundary"); err != nil {
			return err
		}
		if geometry == "centroid" {
			if h, err = h.CellToPoint(); err != nil {
				return err
			}
		}
	} else {
		if h, err = h.Polyfill(resolution, explode); err != nil {
			return err
		}
	}
	return writeHex(h, outputFile)
}

// LineTrace traces each input line through grid cells and writes the
// result.
func LineTrace(inputFile, schemaPath, outputFile string, resolution int, explode bool) error {
	h, err := readHex(inputFile, schemaPath)
	if err != nil {
		return err
	}
	if h, err = h.LineTrace(resolution, explode); err != nil {
		return err
	}
	return writeHex(h, outputFile)
}

// Smooth spreads the values of a cell-indexed dataset over grid
// neighborhoods and writes the result.
func Smooth(inputFile, schemaPath, outputFile string, k int, weights []float64, geometry string) error {
	h, err := readHex(inputFile, schemaPath)
	if err != nil {
		return err
	}
	f, err := setCellIndex(h.Frame())
	if err != nil {
		return err
	}
	h = hexframe.New(f)
	if h, err = h.KRingSmoothing(k, weights, geometry == "boundary"); err != nil {
		return err
	}
	if geometry == "centroid" {
		if h, err = h.CellToPoint(); err != nil {
			return err
		}
	}
	return writeHex(h, outputFile)
}
