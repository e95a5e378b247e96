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

// Command hexframe is a command-line interface for binding tabular
// geospatial data to the H3 hexagonal grid.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/hexframe/hexframeutil"
)

func main() {
	if err := hexframeutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
