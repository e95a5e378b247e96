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
	"fmt"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/hexframe/h3grid"
)

// AssignCells computes the cell address of every row at the given
// resolution and stores it in a column named after the resolution
// (e.g. "h3_09"). If the frame has a geometry column its point geometries
// supply the coordinates; otherwise latCol and lngCol do. If setIndex is
// true the new column becomes the index.
func (h *Hex) AssignCells(resolution int, latCol, lngCol string, setIndex bool) (*Hex, error) {
	var addresses []interface{}
	var err error
	if h.f.HasColumn(GeometryColumn) {
		addresses, err = h.cellsFromGeometry(resolution)
	} else {
		addresses, err = h.cellsFromColumns(resolution, latCol, lngCol)
	}
	if err != nil {
		return nil, err
	}
	column := resColumn(resolution)
	f, err := h.f.Assign(column, addresses)
	if err != nil {
		return nil, err
	}
	if setIndex {
		f, err = f.SetIndex(column)
		if err != nil {
			return nil, err
		}
	}
	return h.with(f), nil
}

func (h *Hex) cellsFromGeometry(resolution int) ([]interface{}, error) {
	col, err := h.f.Column(GeometryColumn)
	if err != nil {
		return nil, err
	}
	addresses := make([]interface{}, len(col))
	for i, v := range col {
		pt, ok := v.(geom.Point)
		if !ok {
			g, _ := v.(geom.Geom)
			return nil, &h3grid.UnsupportedGeometryError{Geom: g}
		}
		address, err := h3grid.ToCell(pt.Y, pt.X, resolution)
		if err != nil {
			return nil, err
		}
		addresses[i] = address
	}
	return addresses, nil
}

func (h *Hex) cellsFromColumns(resolution int, latCol, lngCol string) ([]interface{}, error) {
	lats, err := h.f.Floats(latCol)
	if err != nil {
		return nil, fmt.Errorf("hexframe: reading latitude column: %v", err)
	}
	lngs, err := h.f.Floats(lngCol)
	if err != nil {
		return nil, fmt.Errorf("hexframe: reading longitude column: %v", err)
	}
	addresses := make([]interface{}, len(lats))
	for i := range lats {
		address, err := h3grid.ToCell(lats[i], lngs[i], resolution)
		if err != nil {
			return nil, err
		}
		addresses[i] = address
	}
	return addresses, nil
}

// CellToPoint sets the geometry column to the centroid of each row's cell.
func (h *Hex) CellToPoint() (*Hex, error) {
	return h.applyCell("CellToPoint", func(address string) (interface{}, error) {
		return h3grid.CellToPoint(address)
	}, GeometryColumn)
}

// CellToBoundary sets the geometry column to the boundary polygon of each
// row's cell.
func (h *Hex) CellToBoundary() (*Hex, error) {
	return h.applyCell("CellToBoundary", func(address string) (interface{}, error) {
		return h3grid.CellToPolygon(address)
	}, GeometryColumn)
}

// CellToParent adds the parent of each row's cell at the given coarser
// resolution in a column named after the resolution. A negative resolution
// selects each cell's direct parent, stored in column "h3_parent".
func (h *Hex) CellToParent(resolution int) (*Hex, error) {
	if resolution < 0 {
		return h.applyCell("CellToParent", func(address string) (interface{}, error) {
			r, err := h3grid.Resolution(address)
			if err != nil {
				return nil, err
			}
			return h3grid.Parent(address, r-1)
		}, "h3_parent")
	}
	return h.applyCell("CellToParent", func(address string) (interface{}, error) {
		return h3grid.Parent(address, resolution)
	}, resColumn(resolution))
}

// CellToCenterChild adds the center child of each row's cell at the given
// finer resolution in column "h3_center_child". A negative resolution
// selects each cell's direct center child.
func (h *Hex) CellToCenterChild(resolution int) (*Hex, error) {
	return h.applyCell("CellToCenterChild", func(address string) (interface{}, error) {
		r := resolution
		if r < 0 {
			cr, err := h3grid.Resolution(address)
			if err != nil {
				return nil, err
			}
			r = cr + 1
		}
		return h3grid.CenterChild(address, r)
	}, "h3_center_child")
}

// CellToChildren adds the children of each row's cell at the given finer
// resolution in column "h3_children", either as a list per row or, with
// explode, as one row per child. A negative resolution selects each cell's
// direct children.
func (h *Hex) CellToChildren(resolution int, explode bool) (*Hex, error) {
	return h.applyCellList("CellToChildren", func(address string) ([]string, error) {
		r := resolution
		if r < 0 {
			cr, err := h3grid.Resolution(address)
			if err != nil {
				return nil, err
			}
			r = cr + 1
		}
		return h3grid.Children(address, r)
	}, "h3_children", explode)
}

// CellResolution adds each row's cell resolution in column
// "h3_resolution".
func (h *Hex) CellResolution() (*Hex, error) {
	return h.applyCell("CellResolution", func(address string) (interface{}, error) {
		return h3grid.Resolution(address)
	}, "h3_resolution")
}

// CellBaseCell adds the number of each row's resolution-0 base cell in
// column "h3_base_cell".
func (h *Hex) CellBaseCell() (*Hex, error) {
	return h.applyCell("CellBaseCell", func(address string) (interface{}, error) {
		return h3grid.BaseCell(address)
	}, "h3_base_cell")
}

// CellIsValid adds whether each row's index key is a valid cell address in
// column "h3_is_valid". Unlike other operations, invalid addresses do not
// cause an error here.
func (h *Hex) CellIsValid() (*Hex, error) {
	keys := h.f.Index()
	vals := make([]interface{}, h.f.Len())
	for i, key := range keys {
		address, ok := key.(string)
		vals[i] = ok && h3grid.IsValid(address)
	}
	f, err := h.f.Assign("h3_is_valid", vals)
	if err != nil {
		return nil, err
	}
	return h.with(f), nil
}

// CellArea adds each row's cell area in column "h3_cell_area". Supported
// units are "km^2", "m^2", and "rads^2".
func (h *Hex) CellArea(unit string) (*Hex, error) {
	return h.applyCell("CellArea", func(address string) (interface{}, error) {
		return h3grid.Area(address, unit)
	}, "h3_cell_area")
}

// geometries returns the geometry column's values, coercing nil entries to
// nil geometries.
func (h *Hex) geometries() ([]geom.Geom, error) {
	col, err := h.f.Column(GeometryColumn)
	if err != nil {
		return nil, fmt.Errorf("hexframe: frame has no geometry column")
	}
	out := make([]geom.Geom, len(col))
	for i, v := range col {
		if v == nil {
			continue
		}
		g, ok := v.(geom.Geom)
		if !ok {
			return nil, fmt.Errorf("hexframe: geometry column row %d holds %v (%T)", i, v, v)
		}
		out[i] = g
	}
	return out, nil
}
