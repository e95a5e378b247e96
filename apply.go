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

	"github.com/spatialmodel/hexframe/h3grid"
)

// indexAddress reads an index key as a cell address. A key of any other
// type is reported as an invalid cell address for operation op.
func indexAddress(op string, key interface{}) (string, error) {
	s, ok := key.(string)
	if !ok {
		return "", &h3grid.CellError{
			Op:   op,
			Args: []interface{}{key},
			Err:  fmt.Errorf("index key %v (%T) is not a cell address", key, key),
		}
	}
	return s, nil
}

// applyCell calls fn on every row's index key read as a cell address and
// collects the results into column, fully replacing any existing column of
// that name. Row order is preserved. If any row's address is invalid the
// whole operation fails with no partial output.
func (h *Hex) applyCell(op string, fn func(address string) (interface{}, error), column string) (*Hex, error) {
	keys := h.f.Index()
	vals := make([]interface{}, h.f.Len())
	for i, key := range keys {
		address, err := indexAddress(op, key)
		if err != nil {
			return nil, err
		}
		v, err := fn(address)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	f, err := h.f.Assign(column, vals)
	if err != nil {
		return nil, err
	}
	return h.with(f), nil
}

// applyCellList is applyCell for functions producing a cell list per row.
// If explode is true the output has one row per list element with all
// other columns copied across the expansion and the row's index key
// duplicated; rows with an empty list disappear. Otherwise the column
// holds the lists themselves.
func (h *Hex) applyCellList(op string, fn func(address string) ([]string, error), column string, explode bool) (*Hex, error) {
	hh, err := h.applyCell(op, func(address string) (interface{}, error) {
		return fn(address)
	}, column)
	if err != nil {
		return nil, err
	}
	if !explode {
		return hh, nil
	}
	f, err := hh.f.Explode(column)
	if err != nil {
		return nil, err
	}
	return h.with(f), nil
}
