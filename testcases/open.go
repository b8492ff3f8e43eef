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

var openCases = []TestCase{
	{
		Name: "line",
		Path: polyline(pt(10, 32), pt(54, 32)),
		Op:   Thicken{Width: 8},
	},
	{
		Name: "corner",
		Path: polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Op:   Thicken{Width: 6},
	},
	{
		Name: "zigzag",
		Path: polyline(pt(5, 10), pt(15, 20), pt(25, 10), pt(35, 20), pt(45, 10), pt(55, 20)),
		Op:   Thicken{Width: 3},
	},
	{
		Name: "s_curve",
		Path: (&path.Data{}).
			MoveTo(pt(5, 30)).
			CubeTo(pt(25, 0), pt(35, 60), pt(55, 30)),
		Op: Thicken{Width: 4},
	},
}
