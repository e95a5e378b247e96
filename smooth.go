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
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/hexframe/frame"
)

// KRingSmoothing spreads each row's numeric values over its grid
// neighborhood and re-aggregates them by destination cell, indexed by
// "h3_k_ring". Exactly one of k and weights must be given: a ring radius
// k >= 0 spreads values uniformly over the full disk of radius k, while a
// weight vector of length k+1 weights each hex ring by its entry, after
// normalization so the contributions over a full disk sum to one. Equal
// weights are reduced to the uniform case. Any stale geometry column of
// the input is dropped; if returnGeometry is true the destination cell
// boundaries are stored in the geometry column of the result. Pass a
// negative k to select the weighted mode.
//
// The result holds float values sorted by destination cell.
func (h *Hex) KRingSmoothing(k int, weights []float64, returnGeometry bool) (*Hex, error) {
	if (k >= 0) == (len(weights) > 0) {
		return nil, fmt.Errorf("hexframe: k-ring smoothing requires exactly one of a ring radius and a weight vector")
	}
	if len(weights) > 0 {
		return h.smoothWeighted(weights, returnGeometry)
	}
	return h.smoothUniform(k, returnGeometry)
}

// smoothUniform spreads every row's values uniformly over its k-ring:
// values summed per destination cell, divided by the disk cardinality
// 1+3k(k+1).
func (h *Hex) smoothUniform(k int, returnGeometry bool) (*Hex, error) {
	base := h.with(h.f.Drop(GeometryColumn).CoerceFloats())
	rings, err := base.KRing(k, true)
	if err != nil {
		return nil, err
	}
	f, err := rings.f.SetIndex("h3_k_ring")
	if err != nil {
		return nil, err
	}
	agg, err := f.GroupByIndex().Aggregate("sum")
	if err != nil {
		return nil, err
	}
	diskSize := 1 + 3*k*(k+1)
	out := h.with(agg.ScaleNumeric(1 / float64(diskSize)).SortByIndex())
	if returnGeometry {
		return out.CellToBoundary()
	}
	return out, nil
}

// smoothWeighted spreads every row's values over its hex rings, ring i
// weighted by weights[i] normalized so that a full disk receives weight
// one.
func (h *Hex) smoothWeighted(weights []float64, returnGeometry bool) (*Hex, error) {
	if allEqual(weights) {
		// Uniform weighting is the plain k-ring average; skip the
		// per-ring expansion.
		return h.smoothUniform(len(weights)-1, returnGeometry)
	}

	// Ring i holds 6i cells (1 for i=0); normalize so that
	// sum(weights[i]*ringSize(i)) == 1.
	multipliers := make([]float64, len(weights))
	multipliers[0] = 1
	for i := 1; i < len(weights); i++ {
		multipliers[i] = float64(6 * i)
	}
	norm := floats.Dot(weights, multipliers)
	w := append([]float64{}, weights...)
	floats.Scale(1/norm, w)

	base := h.with(h.f.Drop(GeometryColumn).CoerceFloats())
	parts := make([]*frame.Frame, len(w))
	for i := range w {
		rings, err := base.HexRing(i, true)
		if err != nil {
			return nil, err
		}
		f, err := rings.f.SetIndex("h3_hex_ring")
		if err != nil {
			return nil, err
		}
		parts[i] = f.RenameIndex("h3_k_ring").ScaleNumeric(w[i])
	}
	cat, err := frame.Concat(parts...)
	if err != nil {
		return nil, err
	}
	agg, err := cat.GroupByIndex().Aggregate("sum")
	if err != nil {
		return nil, err
	}
	out := h.with(agg.SortByIndex())
	if returnGeometry {
		return out.CellToBoundary()
	}
	return out, nil
}

func allEqual(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
