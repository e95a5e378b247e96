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

// LineTrace adds the ordered cells that each row's line or multi-line
// geometry passes through at the given resolution in column
// "h3_linetrace", either as a list per row or, with explode, as one row
// per cell. The cell sequence never repeats an address consecutively; an
// empty line yields an empty list.
func (h *Hex) LineTrace(resolution int, explode bool) (*Hex, error) {
	return h.applyGeometryList(func(g geom.Geom) ([]string, error) {
		return h3grid.LineTrace(g, resolution)
	}, "h3_linetrace", explode)
}
