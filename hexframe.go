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

// Package hexframe binds the H3 hexagonal hierarchical grid to rows of a
// tabular dataset. Rows indexed by cell address can be decorated with
// derived grid columns (parents, children, boundaries, rings), geometry
// columns can be converted to covering cell sets or cell paths, and row
// values can be aggregated or smoothed across grid neighborhoods.
package hexframe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/hexframe/frame"
)

// Version gives the version number of this version of Hexframe.
const Version = "0.1.0"

// Default column names for point coordinates.
const (
	DefaultLatColumn = "lat"
	DefaultLngColumn = "lng"
)

// GeometryColumn is the name of the column holding row geometries.
const GeometryColumn = "geometry"

// Hex wraps a frame to provide grid operations over its rows. The zero
// value is not usable; use New.
type Hex struct {
	f *frame.Frame

	// Log is the logger used for non-fatal warnings. It defaults to the
	// logrus standard logger.
	Log logrus.FieldLogger
}

// New creates a Hex operating on f.
func New(f *frame.Frame) *Hex {
	return &Hex{f: f, Log: logrus.StandardLogger()}
}

// Frame returns the wrapped frame.
func (h *Hex) Frame() *frame.Frame { return h.f }

// with wraps f in a new Hex carrying over the logger.
func (h *Hex) with(f *frame.Frame) *Hex {
	return &Hex{f: f, Log: h.Log}
}

// resColumn gives the name of the cell address column for a resolution,
// e.g. resolution 5 -> "h3_05".
func resColumn(resolution int) string {
	return fmt.Sprintf("h3_%02d", resolution)
}
