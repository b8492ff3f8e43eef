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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single offset scenario.
type TestCase struct {
	Name string     // lowercase a-z and _ only
	Path *path.Data // the input geometry
	Op   Operation  // offset or thicken

	// Simple is set if the result is known to be free of
	// self-intersections.
	Simple bool
}

// Operation is the operation applied to the linearized path.
type Operation interface {
	isOperation()
}

// Extend moves a closed path along its vertex normals.
type Extend struct {
	Amount float64 // signed distance; negative grows counter-clockwise shapes
}

func (Extend) isOperation() {}

// Thicken turns an open path into a closed ribbon.
type Thicken struct {
	Width float64 // full width of the ribbon
}

func (Thicken) isOperation() {}

// Flatness is the curve approximation tolerance used for all test cases.
const Flatness = 0.05

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// subdividedPolygon builds a closed path through the given points, with
// every edge split into k pieces of equal length.
func subdividedPolygon(k int, pts ...vec.Vec2) *path.Data {
	var all []vec.Vec2
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		for j := range k {
			t := float64(j) / float64(k)
			all = append(all, a.Mul(1-t).Add(b.Mul(t)))
		}
	}
	return polygon(all...)
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p
}
