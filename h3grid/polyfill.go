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
	"sort"

	"github.com/ctessum/geom"
	h3 "github.com/uber/h3-go/v4"
)

// Polyfill returns the addresses of the cells whose center point falls
// inside g at the given resolution. Ring 0 of a polygon is its outer ring
// and any further rings are holes; a cell is included only if its center
// is inside the outer ring and outside every hole. For a multi-polygon the
// result is the union of the per-polygon results. A polygon that covers no
// cell centers yields an empty result, not an error. Geometries other than
// polygons and multi-polygons cause an UnsupportedGeometryError.
//
// The result contains no duplicates and is sorted.
func Polyfill(g geom.Geom, resolution int) ([]string, error) {
	switch t := g.(type) {
	case geom.Polygon:
		cells, err := polyfill(t, resolution)
		if err != nil {
			return nil, err
		}
		sort.Strings(cells)
		return cells, nil
	case geom.MultiPolygon:
		seen := make(map[string]struct{})
		var all []string
		for _, p := range t {
			cells, err := polyfill(p, resolution)
			if err != nil {
				return nil, err
			}
			for _, c := range cells {
				if _, ok := seen[c]; !ok {
					seen[c] = struct{}{}
					all = append(all, c)
				}
			}
		}
		sort.Strings(all)
		return all, nil
	default:
		return nil, &UnsupportedGeometryError{Geom: g}
	}
}

func polyfill(p geom.Polygon, resolution int) ([]string, error) {
	if len(p) == 0 {
		return nil, nil
	}
	poly := h3.GeoPolygon{GeoLoop: geoLoop(p[0])}
	for _, hole := range p[1:] {
		poly.Holes = append(poly.Holes, geoLoop(hole))
	}
	cells, err := h3.PolygonToCells(poly, resolution)
	if err != nil {
		return nil, cellError("Polyfill", err, resolution)
	}
	return cellStrings(cells), nil
}

// geoLoop converts a (X=lng, Y=lat) ring to an H3 loop, dropping an
// explicit closing vertex if the ring has one.
func geoLoop(ring []geom.Point) h3.GeoLoop {
	if n := len(ring); n >= 2 && ring[0].Equals(ring[n-1]) {
		ring = ring[:n-1]
	}
	loop := make(h3.GeoLoop, len(ring))
	for i, pt := range ring {
		loop[i] = h3.LatLng{Lat: pt.Y, Lng: pt.X}
	}
	return loop
}
