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

package h3grid

import (
	"github.com/ctessum/geom"
	h3 "github.com/uber/h3-go/v4"
)

// LineTrace returns the ordered addresses of the cells that g passes
// through at the given resolution. For each pair of consecutive vertices,
// the shortest grid path between their cells is emitted inclusive of both
// endpoints; the parts of a multi-line are traced in their given order and
// concatenated. The result never contains the same address twice in a row
// (the junction cell shared by consecutive segments appears once), but an
// address may reappear later if the line crosses its own path. An empty
// line yields an empty result, not an error. Geometries other than lines
// and multi-lines cause an UnsupportedGeometryError.
func LineTrace(g geom.Geom, resolution int) ([]string, error) {
	cells, err := trace(g, resolution)
	if err != nil {
		return nil, err
	}
	return dedupSequential(cells), nil
}

func trace(g geom.Geom, resolution int) ([]string, error) {
	switch t := g.(type) {
	case geom.LineString:
		return traceLine(t, resolution)
	case geom.MultiLineString:
		var all []string
		for _, line := range t {
			cells, err := traceLine(line, resolution)
			if err != nil {
				return nil, err
			}
			all = append(all, cells...)
		}
		return all, nil
	default:
		return nil, &UnsupportedGeometryError{Geom: g}
	}
}

func traceLine(line geom.LineString, resolution int) ([]string, error) {
	var cells []string
	for i := 0; i+1 < len(line); i++ {
		a, err := vertexCell(line[i], resolution)
		if err != nil {
			return nil, err
		}
		b, err := vertexCell(line[i+1], resolution)
		if err != nil {
			return nil, err
		}
		path, err := gridPath(a, b)
		if err != nil {
			return nil, err
		}
		cells = append(cells, path...)
	}
	return cells, nil
}

func vertexCell(pt geom.Point, resolution int) (h3.Cell, error) {
	c, err := h3.LatLngToCell(h3.NewLatLng(pt.Y, pt.X), resolution)
	if err != nil {
		return 0, cellError("LineTrace", err, pt.Y, pt.X, resolution)
	}
	return c, nil
}

// dedupSequential suppresses every element that equals the immediately
// preceding one, regardless of how the sequence was generated.
func dedupSequential(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if n := len(out); n == 0 || out[n-1] != c {
			out = append(out, c)
		}
	}
	return out
}
