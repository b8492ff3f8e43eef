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

// lShape is a counter-clockwise L with arms of width 1.
var lShape = []vec.Vec2{
	pt(0, 0), pt(4, 0), pt(4, 1), pt(1, 1), pt(1, 4), pt(0, 4),
}

var concaveCases = []TestCase{
	{
		Name:   "l_shape_coarse",
		Path:   polygon(lShape...),
		Op:     Extend{Amount: -1},
		Simple: true,
	},
	{
		// the offset of the inner corner loops back over itself
		Name:   "l_shape_grow",
		Path:   subdividedPolygon(4, lShape...),
		Op:     Extend{Amount: -1},
		Simple: true,
	},
	{
		Name:   "l_shape_grow_far",
		Path:   subdividedPolygon(4, lShape...),
		Op:     Extend{Amount: -2},
		Simple: true,
	},
	{
		// the two sides of each arm pass each other
		Name: "l_shape_shrink",
		Path: subdividedPolygon(4, lShape...),
		Op:   Extend{Amount: 0.6},
	},
	{
		Name:   "star",
		Path:   star(20, 20, 15, 6, 5),
		Op:     Extend{Amount: -1},
		Simple: true,
	},
}

// star builds a counter-clockwise star with n spikes.
func star(cx, cy, outer, inner float64, n int) *path.Data {
	pts := make([]vec.Vec2, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi/2 + math.Pi*float64(i)/float64(n)
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(pts...)
}
