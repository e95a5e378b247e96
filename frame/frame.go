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

// Package frame holds a small column-oriented tabular container: ordered
// rows, named columns, and a named index key per row. Every operation
// returns a new frame; column value slices are shared between frames and
// are treated as immutable.
package frame

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// A Column is a named, ordered sequence of values.
type Column struct {
	Name   string
	Values []interface{}
}

// Frame is an ordered collection of rows with named columns and an index.
// Before aggregation the index keys need not be unique.
type Frame struct {
	names     []string
	cols      map[string][]interface{}
	index     []interface{}
	indexName string
	length    int
}

// New creates a frame from the given columns, which must all have the same
// length. The index defaults to the row number.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{cols: make(map[string][]interface{})}
	for i, c := range columns {
		if i == 0 {
			f.length = len(c.Values)
		} else if len(c.Values) != f.length {
			return nil, fmt.Errorf("frame: column %s has %d values but column %s has %d",
				c.Name, len(c.Values), columns[0].Name, f.length)
		}
		if _, ok := f.cols[c.Name]; ok {
			return nil, fmt.Errorf("frame: duplicate column %s", c.Name)
		}
		f.names = append(f.names, c.Name)
		f.cols[c.Name] = c.Values
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.length }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string{}, f.names...)
}

// HasColumn reports whether the frame has a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]interface{}, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("frame: no column %s", name)
	}
	return c, nil
}

func (f *Frame) shallowCopy() *Frame {
	c := &Frame{
		names:     append([]string{}, f.names...),
		cols:      make(map[string][]interface{}, len(f.cols)),
		index:     f.index,
		indexName: f.indexName,
		length:    f.length,
	}
	for name, vals := range f.cols {
		c.cols[name] = vals
	}
	return c
}

// Assign returns a copy of the frame with the named column set to values,
// fully replacing any existing column of the same name. A new column is
// appended after the existing columns.
func (f *Frame) Assign(name string, values []interface{}) (*Frame, error) {
	if len(values) != f.length {
		return nil, fmt.Errorf("frame: assigning %d values to column %s in a %d-row frame",
			len(values), name, f.length)
	}
	c := f.shallowCopy()
	if !c.HasColumn(name) {
		c.names = append(c.names, name)
	}
	c.cols[name] = values
	return c, nil
}

// Drop returns a copy of the frame without the named columns. Names that
// are not present are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	c := f.shallowCopy()
	for _, name := range names {
		if !c.HasColumn(name) {
			continue
		}
		delete(c.cols, name)
		for i, n := range c.names {
			if n == name {
				c.names = append(c.names[:i], c.names[i+1:]...)
				break
			}
		}
	}
	return c
}

// Index returns the index keys, one per row. If no index has been set, the
// keys are the row numbers.
func (f *Frame) Index() []interface{} {
	if f.index != nil {
		return f.index
	}
	idx := make([]interface{}, f.length)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// IndexName returns the name of the index, or "" for the default index.
func (f *Frame) IndexName() string { return f.indexName }

// SetIndex returns a copy of the frame with the named column moved into
// the index, replacing the previous index.
func (f *Frame) SetIndex(name string) (*Frame, error) {
	vals, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	c := f.Drop(name)
	c.index = vals
	c.indexName = name
	return c, nil
}

// WithIndex returns a copy of the frame with the given index keys,
// replacing the previous index.
func (f *Frame) WithIndex(name string, keys []interface{}) (*Frame, error) {
	if len(keys) != f.length {
		return nil, fmt.Errorf("frame: setting %d index keys on a %d-row frame", len(keys), f.length)
	}
	c := f.shallowCopy()
	c.index = keys
	c.indexName = name
	return c, nil
}

// RenameIndex returns a copy of the frame with the index renamed.
func (f *Frame) RenameIndex(name string) *Frame {
	c := f.shallowCopy()
	c.indexName = name
	return c
}

// take returns a copy of the frame containing the given rows in order.
func (f *Frame) take(rows []int) *Frame {
	c := &Frame{
		names:     append([]string{}, f.names...),
		cols:      make(map[string][]interface{}, len(f.cols)),
		indexName: f.indexName,
		length:    len(rows),
	}
	for name, vals := range f.cols {
		taken := make([]interface{}, len(rows))
		for i, r := range rows {
			taken[i] = vals[r]
		}
		c.cols[name] = taken
	}
	idx := f.Index()
	c.index = make([]interface{}, len(rows))
	for i, r := range rows {
		c.index[i] = idx[r]
	}
	return c
}

// SortByIndex returns a copy of the frame with rows sorted by index key.
// The sort is stable, so rows sharing a key keep their relative order.
func (f *Frame) SortByIndex() *Frame {
	idx := f.Index()
	rows := make([]int, f.length)
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return keyLess(idx[rows[i]], idx[rows[j]])
	})
	return f.take(rows)
}

// keyLess orders index keys: numerically where both keys are numeric,
// otherwise lexically by string form.
func keyLess(a, b interface{}) bool {
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return af < bf
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

// Explode returns a frame with one row per element of the named
// collection-valued column. All other column values and the row's index
// key are copied to each expanded row, and the column itself holds the
// scalar element. Rows whose collection is empty are dropped.
func (f *Frame) Explode(name string) (*Frame, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	var rows []int
	var elems []interface{}
	for i, v := range col {
		parts, err := elements(v)
		if err != nil {
			return nil, fmt.Errorf("frame: exploding column %s row %d: %v", name, i, err)
		}
		for _, e := range parts {
			rows = append(rows, i)
			elems = append(elems, e)
		}
	}
	c := f.take(rows)
	c.cols[name] = elems
	return c, nil
}

// elements converts a collection value to a slice of scalars. A nil value
// is an empty collection.
func elements(v interface{}) ([]interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return t, nil
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	case []float64:
		out := make([]interface{}, len(t))
		for i, x := range t {
			out[i] = x
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value %v (%T) is not a collection", v, v)
	}
}

// Concat returns the row-wise concatenation of the given frames, which
// must share the same column names and index name.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return New()
	}
	first := frames[0]
	out := &Frame{
		names:     append([]string{}, first.names...),
		cols:      make(map[string][]interface{}, len(first.cols)),
		indexName: first.indexName,
	}
	for _, f := range frames {
		if len(f.names) != len(first.names) {
			return nil, fmt.Errorf("frame: concatenating frames with %d and %d columns",
				len(first.names), len(f.names))
		}
		for _, name := range f.names {
			vals, err := f.Column(name)
			if err != nil {
				return nil, fmt.Errorf("frame: concatenating mismatched columns: %v", err)
			}
			out.cols[name] = append(out.cols[name], vals...)
		}
		out.index = append(out.index, f.Index()...)
		out.length += f.length
	}
	return out, nil
}

// Floats returns the values of the named column coerced to float64.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, v := range col {
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("frame: column %s row %d: %v", name, i, err)
		}
		out[i] = x
	}
	return out, nil
}

// IsNumeric reports whether every value in the named column can be
// coerced to float64. A missing column is not numeric.
func (f *Frame) IsNumeric(name string) bool {
	col, ok := f.cols[name]
	if !ok {
		return false
	}
	for _, v := range col {
		if _, err := cast.ToFloat64E(v); err != nil {
			return false
		}
	}
	return true
}

// CoerceFloats returns a copy of the frame with every numeric column's
// values converted to float64. Non-numeric columns are left unchanged.
func (f *Frame) CoerceFloats() *Frame {
	c := f.shallowCopy()
	for _, name := range c.names {
		if !f.IsNumeric(name) {
			continue
		}
		vals, _ := f.Floats(name)
		col := make([]interface{}, len(vals))
		for i, x := range vals {
			col[i] = x
		}
		c.cols[name] = col
	}
	return c
}

// ScaleNumeric returns a copy of the frame with every numeric column
// multiplied by s and converted to float64. Non-numeric columns are left
// unchanged.
func (f *Frame) ScaleNumeric(s float64) *Frame {
	c := f.shallowCopy()
	for _, name := range c.names {
		if !f.IsNumeric(name) {
			continue
		}
		vals, _ := f.Floats(name)
		col := make([]interface{}, len(vals))
		for i, x := range vals {
			col[i] = x * s
		}
		c.cols[name] = col
	}
	return c
}
