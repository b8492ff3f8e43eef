// seehuhn.de/go/offset - polyline offsetting for solid extrusion
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var convexCases = []TestCase{
	{
		Name:   "square_grow",
		Path:   polygon(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)),
		Op:     Extend{Amount: -1},
		Simple: true,
	},
	{
		Name:   "square_shrink",
		Path:   polygon(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)),
		Op:     Extend{Amount: 2},
		Simple: true,
	},
	{
		Name:   "square_clockwise",
		Path:   polygon(pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0)),
		Op:     Extend{Amount: 1},
		Simple: true,
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(0, 0), pt(20, 0), pt(5, 15)),
		Op:     Extend{Amount: -2},
		Simple: true,
	},
	{
		Name:   "hexagon",
		Path:   regularPolygon(15, 15, 10, 6),
		Op:     Extend{Amount: -1.5},
		Simple: true,
	},
	{
		Name:   "zero",
		Path:   regularPolygon(15, 15, 10, 9),
		Op:     Extend{Amount: 0},
		Simple: true,
	},
}

// regularPolygon builds a counter-clockwise regular polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(pts...)
}
