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

// Command pathsolid turns SVG path data into extruded 3D solids.
//
// Closed subpaths are grown (or shrunk) by a fixed distance before
// extrusion, open subpaths are turned into ribbons of that width.  The
// result is written in Wavefront OBJ format.
//
// Usage:
//
//	pathsolid obj [flags] <path data>
//	pathsolid preview [flags] -o out.pdf <path data>
//	pathsolid batch <jobs.yaml>
package main

func main() {
	Execute()
}
