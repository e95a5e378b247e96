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

// Package h3grid wraps the H3 hexagonal hierarchical grid library with
// string cell addresses, geometry types from github.com/ctessum/geom, and
// a uniform invalid-address error contract.
//
// Coordinate axis order: geometry objects use (X=longitude, Y=latitude)
// while the raw H3 API uses (latitude, longitude); every conversion in
// this package swaps the axis order accordingly, in both directions.
package h3grid

import (
	"fmt"

	"github.com/ctessum/geom"
	h3 "github.com/uber/h3-go/v4"
)

// MaxResolution is the finest grid resolution.
const MaxResolution = 15

// cell parses address, returning a CellError carrying op and args if the
// address is not a valid H3 cell.
func cell(op, address string, args ...interface{}) (h3.Cell, error) {
	var c h3.Cell
	if err := c.UnmarshalText([]byte(address)); err != nil {
		return 0, cellError(op, err, args...)
	}
	if !c.IsValid() {
		return 0, cellError(op, fmt.Errorf("%s is not an H3 cell", address), args...)
	}
	return c, nil
}

// ToCell returns the address of the cell containing the given point at the
// given resolution.
func ToCell(lat, lng float64, resolution int) (string, error) {
	c, err := h3.LatLngToCell(h3.NewLatLng(lat, lng), resolution)
	if err != nil {
		return "", cellError("ToCell", err, lat, lng, resolution)
	}
	return c.String(), nil
}

// CellToPoint returns the centroid of the cell at address.
func CellToPoint(address string) (geom.Point, error) {
	c, err := cell("CellToPoint", address, address)
	if err != nil {
		return geom.Point{}, err
	}
	ll, err := c.LatLng()
	if err != nil {
		return geom.Point{}, cellError("CellToPoint", err, address)
	}
	return geom.Point{X: ll.Lng, Y: ll.Lat}, nil
}

// CellToPolygon returns the boundary of the cell at address as a polygon
// with a single ring.
func CellToPolygon(address string) (geom.Polygon, error) {
	c, err := cell("CellToPolygon", address, address)
	if err != nil {
		return nil, err
	}
	b, err := c.Boundary()
	if err != nil {
		return nil, cellError("CellToPolygon", err, address)
	}
	ring := make([]geom.Point, len(b))
	for i, ll := range b {
		ring[i] = geom.Point{X: ll.Lng, Y: ll.Lat}
	}
	return geom.Polygon{ring}, nil
}

// Parent returns the ancestor of the cell at address at the given coarser
// resolution.
func Parent(address string, resolution int) (string, error) {
	c, err := cell("Parent", address, address, resolution)
	if err != nil {
		return "", err
	}
	p, err := c.Parent(resolution)
	if err != nil {
		return "", cellError("Parent", err, address, resolution)
	}
	return p.String(), nil
}

// CenterChild returns the center descendant of the cell at address at the
// given finer resolution.
func CenterChild(address string, resolution int) (string, error) {
	c, err := cell("CenterChild", address, address, resolution)
	if err != nil {
		return "", err
	}
	ch, err := c.CenterChild(resolution)
	if err != nil {
		return "", cellError("CenterChild", err, address, resolution)
	}
	return ch.String(), nil
}

// Children returns all descendants of the cell at address at the given
// finer resolution.
func Children(address string, resolution int) ([]string, error) {
	c, err := cell("Children", address, address, resolution)
	if err != nil {
		return nil, err
	}
	ch, err := c.Children(resolution)
	if err != nil {
		return nil, cellError("Children", err, address, resolution)
	}
	return cellStrings(ch), nil
}

// Resolution returns the resolution (0–15) of the cell at address.
func Resolution(address string) (int, error) {
	c, err := cell("Resolution", address, address)
	if err != nil {
		return 0, err
	}
	return c.Resolution(), nil
}

// BaseCell returns the number of the resolution-0 base cell that the cell
// at address descends from.
func BaseCell(address string) (int, error) {
	c, err := cell("BaseCell", address, address)
	if err != nil {
		return 0, err
	}
	return c.BaseCellNumber(), nil
}

// IsValid reports whether address is a valid H3 cell address. It never
// returns an error.
func IsValid(address string) bool {
	var c h3.Cell
	if err := c.UnmarshalText([]byte(address)); err != nil {
		return false
	}
	return c.IsValid()
}

// Area returns the area of the cell at address in the given unit, one of
// "km^2", "m^2", or "rads^2".
func Area(address, unit string) (float64, error) {
	c, err := cell("Area", address, address, unit)
	if err != nil {
		return 0, err
	}
	var a float64
	switch unit {
	case "km^2":
		a, err = h3.CellAreaKm2(c)
	case "m^2":
		a, err = h3.CellAreaM2(c)
	case "rads^2":
		a, err = h3.CellAreaRads2(c)
	default:
		return 0, fmt.Errorf("h3grid: unsupported area unit %q", unit)
	}
	if err != nil {
		return 0, cellError("Area", err, address, unit)
	}
	return a, nil
}

// KRing returns the addresses of all cells within grid distance k of the
// cell at address, including the cell itself.
func KRing(address string, k int) ([]string, error) {
	c, err := cell("KRing", address, address, k)
	if err != nil {
		return nil, err
	}
	disk, err := c.GridDisk(k)
	if err != nil {
		return nil, cellError("KRing", err, address, k)
	}
	return cellStrings(disk), nil
}

// HexRing returns the addresses of the cells at exactly grid distance k
// from the cell at address. It is computed as the difference of the k and
// k-1 disks, which tolerates pentagon distortion near grid singularities.
func HexRing(address string, k int) ([]string, error) {
	c, err := cell("HexRing", address, address, k)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []string{c.String()}, nil
	}
	outer, err := c.GridDisk(k)
	if err != nil {
		return nil, cellError("HexRing", err, address, k)
	}
	inner, err := c.GridDisk(k - 1)
	if err != nil {
		return nil, cellError("HexRing", err, address, k)
	}
	exclude := make(map[h3.Cell]struct{}, len(inner))
	for _, cc := range inner {
		exclude[cc] = struct{}{}
	}
	ring := make([]string, 0, len(outer)-len(inner))
	for _, cc := range outer {
		if _, ok := exclude[cc]; !ok {
			ring = append(ring, cc.String())
		}
	}
	return ring, nil
}

// Path returns the addresses of the cells on the shortest grid path from
// the cell at from to the cell at to, inclusive of both endpoints.
func Path(from, to string) ([]string, error) {
	a, err := cell("Path", from, from, to)
	if err != nil {
		return nil, err
	}
	b, err := cell("Path", to, from, to)
	if err != nil {
		return nil, err
	}
	return gridPath(a, b)
}

func gridPath(a, b h3.Cell) ([]string, error) {
	path, err := a.GridPath(b)
	if err != nil {
		return nil, cellError("Path", err, a.String(), b.String())
	}
	return cellStrings(path), nil
}

func cellStrings(cells []h3.Cell) []string {
	s := make([]string, len(cells))
	for i, c := range cells {
		s[i] = c.String()
	}
	return s
}
