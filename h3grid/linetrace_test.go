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

func TestLineTrace(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	cells, err := LineTrace(line, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"81757ffffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("resolution 1: want %v but have %v", want, cells)
	}

	cells, err = LineTrace(line, 2)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"82754ffffffffff", "827547fffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("resolution 2: want %v but have %v", want, cells)
	}
}

func TestLineTraceLong(t *testing.T) {
	line := geom.LineString{
		{X: 174.793092, Y: -37.005372},
		{X: 175.621138, Y: -40.323142},
	}
	cells, err := LineTrace(line, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"83bb50fffffffff",
		"83bb54fffffffff",
		"83bb72fffffffff",
		"83bb0dfffffffff",
		"83bb2bfffffffff",
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

// A line that revisits a cell after leaving it keeps the repeated address;
// only sequential duplicates are suppressed.
func TestLineTraceMultiLine(t *testing.T) {
	ml := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
	}
	cells, err := LineTrace(ml, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"82754ffffffffff", "827547fffffffff", "82754ffffffffff"}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("want %v but have %v", want, cells)
	}
}

func TestLineTraceEmpty(t *testing.T) {
	cells, err := LineTrace(geom.LineString{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Errorf("empty line: want no cells but have %v", cells)
	}

	// A single-vertex line has no segments to walk.
	cells, err = LineTrace(geom.LineString{{X: 1, Y: 1}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Errorf("degenerate line: want no cells but have %v", cells)
	}
}

func TestLineTraceWrongType(t *testing.T) {
	_, err := LineTrace(geom.Point{X: 0, Y: 0}, 2)
	if err == nil {
		t.Fatal("point geometry should cause an error")
	}
	var gerr *UnsupportedGeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("want *UnsupportedGeometryError but have %T", err)
	}
}

func TestDedupSequential(t *testing.T) {
	tests := []struct {
		in, want []string
	}{
		{[]string{}, []string{}},
		{[]string{"a"}, []string{"a"}},
		{[]string{"a", "a", "b"}, []string{"a", "b"}},
		{[]string{"a", "b", "b", "a"}, []string{"a", "b", "a"}},
		{[]string{"a", "a", "a", "a"}, []string{"a"}},
	}
	for _, test := range tests {
		have := dedupSequential(test.in)
		if !reflect.DeepEqual(have, test.want) {
			t.Errorf("dedupSequential(%v): want %v but have %v", test.in, test.want, have)
		}
	}
}
