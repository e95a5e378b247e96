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
	"reflect"
	"testing"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/hexframe/frame"
)

func lineFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.Column{Name: "val", Values: []interface{}{10}},
		frame.Column{Name: GeometryColumn, Values: []interface{}{
			geom.LineString{
				{X: 174.793092, Y: -37.005372},
				{X: 175.621138, Y: -40.323142},
			},
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLineTrace(t *testing.T) {
	h, err := New(lineFrame(t)).LineTrace(3, false)
	if err != nil {
		t.Fatal(err)
	}
	col, err := h.Frame().Column("h3_linetrace")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"83bb50fffffffff", "83bb54fffffffff", "83bb72fffffffff",
		"83bb0dfffffffff", "83bb2bfffffffff",
	}
	if have := col[0].([]string); !reflect.DeepEqual(have, want) {
		t.Errorf("want %v but have %v", want, have)
	}
}

func TestLineTraceExplode(t *testing.T) {
	h, err := New(lineFrame(t)).LineTrace(3, true)
	if err != nil {
		t.Fatal(err)
	}
	f := h.Frame()
	if f.Len() != 5 {
		t.Fatalf("want 5 rows but have %d", f.Len())
	}
	vals, err := f.Floats("val")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vals {
		if v != 10 {
			t.Errorf("row %d: want 10 but have %g", i, v)
		}
	}
}

func TestLineTraceEmpty(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: GeometryColumn, Values: []interface{}{
			geom.LineString{},
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	h, err := New(f).LineTrace(3, false)
	if err != nil {
		t.Fatal(err)
	}
	col, err := h.Frame().Column("h3_linetrace")
	if err != nil {
		t.Fatal(err)
	}
	if cells := col[0].([]string); len(cells) != 0 {
		t.Errorf("want no cells but have %v", cells)
	}

	h, err = New(f).LineTrace(3, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.Frame().Len() != 0 {
		t.Errorf("exploded: want 0 rows but have %d", h.Frame().Len())
	}
}
