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

package hexframe

import (
	"github.com/ctessum/geom"

	"github.com/spatialmodel/hexframe/h3grid"
)

// applyGeometryList calls fn on every row's geometry and collects the
// resulting cell lists into column, exploding to one row per cell if
// requested. A nil geometry yields an empty list.
func (h *Hex) applyGeometryList(fn func(geom.Geom) ([]string, error), column string, explode bool) (*Hex, error) {
	geoms, err := h.geometries()
	if err != nil {
		return nil, err
	}
	vals := make([]interface{}, len(geoms))
	for i, g := range geoms {
		if g == nil {
			vals[i] = []string{}
			continue
		}
		cells, err := fn(g)
		if err != nil {
			return nil, err
		}
		if cells == nil {
			cells = []string{}
		}
		vals[i] = cells
	}
	f, err := h.f.Assign(column, vals)
	if err != nil {
		return nil, err
	}
	if explode {
		f, err = f.Explode(column)
		if err != nil {
			return nil, err
		}
	}
	return h.with(f), nil
}

// Polyfill adds the cells covering each row's polygon or multi-polygon
// geometry at the given resolution in column "h3_polyfill", either as a
// list per row or, with explode, as one row per covering cell. A geometry
// covering no cell centers yields an empty list, or no rows when
// exploding.
func (h *Hex) Polyfill(resolution int, explode bool) (*Hex, error) {
	return h.applyGeometryList(func(g geom.Geom) ([]string, error) {
		return h3grid.Polyfill(g, resolution)
	}, "h3_polyfill", explode)
}

// PolyfillResample converts a table of polygon rows into a table of cell
// rows at the given resolution: each row is duplicated onto every cell
// covering its geometry, and the result is indexed by covering cell. Rows
// whose geometry covers no cells are dropped with a warning recommending a
// finer resolution. If returnGeometry is true the cell boundary polygons
// are stored in the geometry column.
//
// Values are duplicated as-is onto every covering cell; they are not
// apportioned by covered area, and when several input polygons cover the
// same cell the result keeps one row per input polygon.
func (h *Hex) PolyfillResample(resolution int, returnGeometry bool) (*Hex, error) {
	filled, err := h.Polyfill(resolution, false)
	if err != nil {
		return nil, err
	}
	col, err := filled.f.Column("h3_polyfill")
	if err != nil {
		return nil, err
	}
	uncovered := 0
	for _, v := range col {
		if cells, ok := v.([]string); ok && len(cells) == 0 {
			uncovered++
		}
	}
	if uncovered > 0 {
		h.Log.Warnf("hexframe: dropping %d rows with geometry covering no cells at resolution %d; consider using a finer resolution", uncovered, resolution)
	}
	f, err := filled.f.Explode("h3_polyfill")
	if err != nil {
		return nil, err
	}
	f = f.Drop(GeometryColumn)
	f, err = f.SetIndex("h3_polyfill")
	if err != nil {
		return nil, err
	}
	f = f.RenameIndex(resColumn(resolution))
	hh := h.with(f)
	if returnGeometry {
		return hh.CellToBoundary()
	}
	return hh, nil
}
