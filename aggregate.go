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
	"github.com/spatialmodel/hexframe/h3grid"
)

// AggregateCells assigns a cell address to each row at the given
// resolution, groups rows sharing an address, and combines their numeric
// values with operation (see frame.GroupBy.Aggregate for the accepted
// forms). The coordinate and geometry columns are dropped. If
// returnGeometry is true the cell boundary polygons are stored in the
// geometry column of the result.
func (h *Hex) AggregateCells(resolution int, operation interface{}, latCol, lngCol string, returnGeometry bool) (*Hex, error) {
	hh, err := h.AssignCells(resolution, latCol, lngCol, true)
	if err != nil {
		return nil, err
	}
	f := hh.f.Drop(latCol, lngCol, GeometryColumn)
	agg, err := f.GroupByIndex().Aggregate(operation)
	if err != nil {
		return nil, err
	}
	out := h.with(agg)
	if returnGeometry {
		return out.CellToBoundary()
	}
	return out, nil
}

// AggregateParents replaces each row's index with its cell's ancestor at
// the given coarser resolution, groups rows sharing an ancestor, and
// combines their numeric values with operation. Any stale geometry column
// is dropped; if returnGeometry is true the ancestor cell boundaries are
// stored in the geometry column of the result.
func (h *Hex) AggregateParents(resolution int, operation interface{}, returnGeometry bool) (*Hex, error) {
	keys := h.f.Index()
	parents := make([]interface{}, len(keys))
	for i, key := range keys {
		address, err := indexAddress("AggregateParents", key)
		if err != nil {
			return nil, err
		}
		p, err := h3grid.Parent(address, resolution)
		if err != nil {
			return nil, err
		}
		parents[i] = p
	}
	f, err := h.f.Drop(GeometryColumn).WithIndex(resColumn(resolution), parents)
	if err != nil {
		return nil, err
	}
	agg, err := f.GroupByIndex().Aggregate(operation)
	if err != nil {
		return nil, err
	}
	out := h.with(agg)
	if returnGeometry {
		return out.CellToBoundary()
	}
	return out, nil
}
