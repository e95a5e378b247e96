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

import "github.com/spatialmodel/hexframe/h3grid"

// KRing adds the cells within grid distance k of each row's cell,
// including the cell itself, in column "h3_k_ring", either as a list per
// row or, with explode, as one row per neighboring cell.
func (h *Hex) KRing(k int, explode bool) (*Hex, error) {
	return h.applyCellList("KRing", func(address string) ([]string, error) {
		return h3grid.KRing(address, k)
	}, "h3_k_ring", explode)
}

// HexRing adds the cells at exactly grid distance k from each row's cell
// in column "h3_hex_ring", either as a list per row or, with explode, as
// one row per ring cell.
func (h *Hex) HexRing(k int, explode bool) (*Hex, error) {
	return h.applyCellList("HexRing", func(address string) ([]string, error) {
		return h3grid.HexRing(address, k)
	}, "h3_hex_ring", explode)
}
