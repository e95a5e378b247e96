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
	"bytes"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/hexframe/frame"
	"github.com/spatialmodel/hexframe/h3grid"
)

func box(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

// boundaryFrame carries the boundary polygons of valueFrame's cells in its
// geometry column.
func boundaryFrame(t *testing.T) *frame.Frame {
	t.Helper()
	h, err := New(valueFrame(t)).CellToBoundary()
	if err != nil {
		t.Fatal(err)
	}
	return h.Frame()
}

func TestPolyfillEmpty(t *testing.T) {
	// Resolution-9 cell boundaries contain no resolution-1 cell centroids.
	h, err := New(boundaryFrame(t)).Polyfill(1, false)
	if err != nil {
		t.Fatal(err)
	}
	col, err := h.Frame().Column("h3_polyfill")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range col {
		if cells := v.([]string); len(cells) != 0 {
			t.Errorf("row %d: want no cells but have %v", i, cells)
		}
	}

	// Exploding empty lists drops every row.
	h, err = New(boundaryFrame(t)).Polyfill(1, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.Frame().Len() != 0 {
		t.Errorf("want 0 rows but have %d", h.Frame().Len())
	}
}

func TestPolyfill(t *testing.T) {
	h, err := New(boundaryFrame(t)).Polyfill(10, false)
	if err != nil {
		t.Fatal(err)
	}
	col, err := h.Frame().Column("h3_polyfill")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range col {
		cells := v.([]string)
		if len(cells) != 7 {
			t.Errorf("row %d: want 7 cells but have %d", i, len(cells))
		}
		// The filled cells are the children of the boundary's cell.
		parent := h.Frame().Index()[i].(string)
		children, err := h3grid.Children(parent, 10)
		if err != nil {
			t.Fatal(err)
		}
		sort.Strings(children)
		sorted := append([]string{}, cells...)
		sort.Strings(sorted)
		if !reflect.DeepEqual(sorted, children) {
			t.Errorf("row %d: want %v but have %v", i, children, sorted)
		}
	}
}

func TestPolyfillExplode(t *testing.T) {
	h, err := New(boundaryFrame(t)).Polyfill(10, true)
	if err != nil {
		t.Fatal(err)
	}
	f := h.Frame()
	if f.Len() != 21 {
		t.Fatalf("want 21 rows but have %d", f.Len())
	}
	vals, err := f.Floats("val")
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[float64]int)
	for _, v := range vals {
		counts[v]++
	}
	want := map[float64]int{1: 7, 2: 7, 5: 7}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("want value counts %v but have %v", want, counts)
	}
}

func TestPolyfillUnequalLengths(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: GeometryColumn, Values: []interface{}{
			box(0, 0, 1, 1),
			box(0, 0, 2, 2),
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	h, err := New(f).Polyfill(3, false)
	if err != nil {
		t.Fatal(err)
	}
	col, err := h.Frame().Column("h3_polyfill")
	if err != nil {
		t.Fatal(err)
	}
	a := col[0].([]string)
	b := col[1].([]string)
	if len(a) == 0 || len(b) <= len(a) {
		t.Errorf("want the larger box to cover more cells but have %d and %d",
			len(a), len(b))
	}
	// The smaller box's cells are a subset of the larger box's.
	for _, c := range a {
		if !containsString(b, c) {
			t.Errorf("cell %s missing from the larger fill", c)
		}
	}
}

func TestPolyfillResample(t *testing.T) {
	h, err := New(boundaryFrame(t)).PolyfillResample(10, false)
	if err != nil {
		t.Fatal(err)
	}
	f := h.Frame()
	if f.Len() != 21 {
		t.Fatalf("want 21 rows but have %d", f.Len())
	}
	if f.IndexName() != "h3_10" {
		t.Errorf("want index name h3_10 but have %s", f.IndexName())
	}
	if f.HasColumn(GeometryColumn) {
		t.Error("geometry column should be dropped")
	}
	// Each index key is a distinct valid cell.
	seen := make(map[string]struct{})
	for i, key := range f.Index() {
		s, ok := key.(string)
		if !ok || !h3grid.IsValid(s) {
			t.Fatalf("row %d: invalid index key %v", i, key)
		}
		if _, dup := seen[s]; dup {
			t.Errorf("duplicate index key %s", s)
		}
		seen[s] = struct{}{}
	}
}

func TestPolyfillResampleGeometry(t *testing.T) {
	h, err := New(boundaryFrame(t)).PolyfillResample(10, true)
	if err != nil {
		t.Fatal(err)
	}
	f := h.Frame()
	col, err := f.Column(GeometryColumn)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range col {
		if _, ok := v.(geom.Polygon); !ok {
			t.Errorf("row %d: %T is not a polygon", i, v)
		}
	}
}

func TestPolyfillResampleUncovered(t *testing.T) {
	f, err := frame.New(
		frame.Column{Name: GeometryColumn, Values: []interface{}{
			box(0, 0, 1, 1),
			box(0, 0, 3, 3),
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	h := New(f)
	var buf bytes.Buffer
	log := logrus.New()
	log.Out = &buf
	h.Log = log

	h, err = h.PolyfillResample(2, false)
	if err != nil {
		t.Fatal(err)
	}
	if h.Frame().Len() == 0 {
		t.Error("the larger box should still cover cells")
	}
	if !strings.Contains(buf.String(), "dropping") {
		t.Errorf("want a warning about dropped rows but have %q", buf.String())
	}
}
