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
	"errors"
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

// squarePolygon covers roughly one resolution-1 cell in central Europe.
func squarePolygon() geom.Polygon {
	return geom.Polygon{{
		{X: 18, Y: 48}, {X: 18, Y: 49}, {X: 19, Y: 49}, {X: 19, Y: 48},
	}}
}

func TestPolyfill(t *testing.T) {
	cells, err := Polyfill(squarePolygon(), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"811e3ffffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

func TestPolyfillMultiPolygon(t *testing.T) {
	mp := geom.MultiPolygon{
		squarePolygon(),
		{{
			{X: 11, Y: 54}, {X: 11, Y: 56}, {X: 12, Y: 56}, {X: 12, Y: 54},
		}},
	}
	cells, err := Polyfill(mp, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"811e3ffffffffff", "811f3ffffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

// A hole that excludes every cell center yields the empty set, not an
// error.
func TestPolyfillHole(t *testing.T) {
	p := geom.Polygon{
		{{X: 18, Y: 48}, {X: 19, Y: 48}, {X: 19, Y: 49}, {X: 18, Y: 49}},
		{{X: 18.2, Y: 48.4}, {X: 18.6, Y: 48.4}, {X: 18.6, Y: 48.8}, {X: 18.2, Y: 48.8}},
	}
	cells, err := Polyfill(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Errorf("want no cells but have %v", cells)
	}
}

// A polygon much smaller than one cell yields the empty set.
func TestPolyfillTooSmall(t *testing.T) {
	cells, err := Polyfill(squarePolygon(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Errorf("want no cells but have %v", cells)
	}
}

// Filling the boundary polygon of a cell with its own children covers
// exactly the 7 child cells.
func TestPolyfillCellBoundary(t *testing.T) {
	poly, err := CellToPolygon("891f1d48177ffff")
	if err != nil {
		t.Fatal(err)
	}
	cells, err := Polyfill(poly, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"8a1f1d481747fff",
		"8a1f1d48174ffff",
		"8a1f1d481757fff",
		"8a1f1d48175ffff",
		"8a1f1d481767fff",
		"8a1f1d48176ffff",
		"8a1f1d481777fff",
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

func TestPolyfillClosedRing(t *testing.T) {
	p := geom.Polygon{{
		{X: 18, Y: 48}, {X: 18, Y: 49}, {X: 19, Y: 49}, {X: 19, Y: 48}, {X: 18, Y: 48},
	}}
	cells, err := Polyfill(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"811e3ffffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

func TestPolyfillWrongType(t *testing.T) {
	_, err := Polyfill(geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	if err == nil {
		t.Fatal("line geometry should cause an error")
	}
	var gerr *UnsupportedGeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("want *UnsupportedGeometryError but have %T", err)
	}
}
