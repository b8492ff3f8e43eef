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

import "seehuhn.de/go/geom/path"

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name: "circle_grow",
		Path: circle(30, 30, 20),
		Op:   Extend{Amount: -3},
	},
	{
		Name: "circle_shrink",
		Path: circle(30, 30, 20),
		Op:   Extend{Amount: 5},
	},
	{
		Name: "bean",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			CubeTo(pt(30, -5), pt(50, 25), pt(60, 10)).
			CubeTo(pt(75, 30), pt(50, 55), pt(30, 40)).
			QuadTo(pt(20, 30), pt(5, 35)).
			QuadTo(pt(-5, 20), pt(10, 10)).
			Close(),
		Op: Extend{Amount: -2},
	},
}

// circle builds a counter-clockwise circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}
