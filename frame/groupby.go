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

package frame

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Reducer combines the values of one column within one group.
type Reducer func([]float64) float64

// GroupBy holds rows grouped by their index key.
type GroupBy struct {
	f *Frame
}

// GroupByIndex groups the rows of the frame by index key.
func (f *Frame) GroupByIndex() *GroupBy {
	return &GroupBy{f: f}
}

// Aggregate reduces each group to one row. The operation may be:
//
//   - a string naming a reduction ("sum", "mean", "count", "min", "max"),
//     applied to every numeric column;
//   - a map[string]string from column name to reduction name;
//   - a Reducer (or func([]float64) float64), applied to every numeric
//     column.
//
// Non-numeric columns are dropped from the result. The result is indexed
// by group key, one row per key; callers must not rely on row order.
func (g *GroupBy) Aggregate(operation interface{}) (*Frame, error) {
	switch op := operation.(type) {
	case string:
		r, err := reducerFor(op)
		if err != nil {
			return nil, err
		}
		return g.aggregate(func(string) Reducer { return r }, nil)
	case map[string]string:
		reducers := make(map[string]Reducer, len(op))
		for col, name := range op {
			r, err := reducerFor(name)
			if err != nil {
				return nil, err
			}
			reducers[col] = r
		}
		return g.aggregate(func(col string) Reducer { return reducers[col] }, op)
	case Reducer:
		return g.aggregate(func(string) Reducer { return op }, nil)
	case func([]float64) float64:
		return g.aggregate(func(string) Reducer { return op }, nil)
	default:
		return nil, fmt.Errorf("frame: unsupported aggregation operation type %T", operation)
	}
}

// aggregate reduces each numeric column with the reducer chosen by pick.
// If only is non-nil, columns not in it are dropped.
func (g *GroupBy) aggregate(pick func(string) Reducer, only map[string]string) (*Frame, error) {
	idx := g.f.Index()
	groupRows := make(map[interface{}][]int)
	var keys []interface{}
	for i, key := range idx {
		if _, ok := groupRows[key]; !ok {
			keys = append(keys, key)
		}
		groupRows[key] = append(groupRows[key], i)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })

	out := &Frame{
		cols:      make(map[string][]interface{}),
		index:     keys,
		indexName: g.f.indexName,
		length:    len(keys),
	}
	for _, name := range g.f.names {
		if only != nil {
			if _, ok := only[name]; !ok {
				continue
			}
		}
		if !g.f.IsNumeric(name) {
			continue
		}
		vals, err := g.f.Floats(name)
		if err != nil {
			return nil, err
		}
		r := pick(name)
		if r == nil {
			return nil, fmt.Errorf("frame: no reduction given for column %s", name)
		}
		col := make([]interface{}, len(keys))
		for i, key := range keys {
			rows := groupRows[key]
			group := make([]float64, len(rows))
			for j, row := range rows {
				group[j] = vals[row]
			}
			col[i] = r(group)
		}
		out.names = append(out.names, name)
		out.cols[name] = col
	}
	return out, nil
}

func reducerFor(name string) (Reducer, error) {
	switch name {
	case "sum":
		return floats.Sum, nil
	case "mean":
		return func(x []float64) float64 { return stat.Mean(x, nil) }, nil
	case "count":
		return func(x []float64) float64 { return float64(len(x)) }, nil
	case "min":
		return floats.Min, nil
	case "max":
		return floats.Max, nil
	}
	return nil, fmt.Errorf("frame: unknown aggregation operation %q", name)
}
