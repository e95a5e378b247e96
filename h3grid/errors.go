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
	"fmt"
	"strings"

	"github.com/ctessum/geom"
)

// CellError is returned by every operation in this package that receives a
// malformed, wrong-type, or structurally invalid cell address. It carries
// the name of the failing operation, its arguments, and the underlying
// error, so callers never need to know the grid library's own error
// taxonomy.
type CellError struct {
	// Op is the name of the grid operation that failed.
	Op string

	// Args holds the arguments that were passed to Op.
	Args []interface{}

	// Err is the underlying error.
	Err error
}

func (e *CellError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("h3grid: invalid cell address in %s(%s): %v",
		e.Op, strings.Join(args, ", "), e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

func cellError(op string, err error, args ...interface{}) *CellError {
	return &CellError{Op: op, Args: args, Err: err}
}

// UnsupportedGeometryError is returned when an operation receives a
// geometry of a type it cannot handle.
type UnsupportedGeometryError struct {
	Geom geom.Geom
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("h3grid: unsupported geometry type %T", e.Geom)
}
