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
	"text/tabwriter"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/hexframe/frame"
)

// A Table holds a text representation of report data.
type Table [][]string

// Tabbed creates a tab-separated table.
func (t Table) Tabbed(w io.Writer) (n int, err error) {
	ww := new(tabwriter.Writer)
	ww.Init(w, 0, 2, 0, '\t', 0)
	var nn int
	for _, l := range t {
		for _, r := range l {
			nn, err = fmt.Fprint(ww, r+"\t")
			if err != nil {
				return
			}
			n += nn
		}
		nn, err = fmt.Fprint(ww, "\n")
		if err != nil {
			return
		}
		n += nn
	}
	if err = ww.Flush(); err != nil {
		return
	}
	return
}

// columnUnits gives dimensions for the columns whose unit is known from
// their role in the grid. Cell areas are reported in square kilometers.
func columnUnits(name string) unit.Dimensions {
	if name == "h3_cell_area" {
		return unit.Meter2
	}
	return nil
}

// TotalsReport builds a table of the totals of each numeric column,
// annotating columns with known units with their dimensions.
func TotalsReport(f *frame.Frame) (Table, error) {
	header := []string{"Rows"}
	totals := []string{fmt.Sprintf("%d", f.Len())}
	for _, name := range f.Columns() {
		if !f.IsNumeric(name) {
			continue
		}
		vals, err := f.Floats(name)
		if err != nil {
			return nil, err
		}
		total := floats.Sum(vals)
		if dims := columnUnits(name); dims != nil {
			u := unit.New(total*1e6, dims) // km² stored as m².
			header = append(header, fmt.Sprintf("%s (%s)", name, dims.String()))
			totals = append(totals, fmt.Sprintf("%g", u.Value()))
		} else {
			header = append(header, name)
			totals = append(totals, fmt.Sprintf("%g", total))
		}
	}
	return Table{header, totals}, nil
}
