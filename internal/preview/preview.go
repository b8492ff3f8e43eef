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

// Package preview draws offset results for visual inspection.
//
// Outlines are filled in white on a black background and the input paths
// are drawn as thin gray lines on top.  Coordinates are in the usual
// mathematical orientation, with the y-axis pointing up.
package preview

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/linearize"
)

// Scene is a collection of paths to draw.
type Scene struct {
	// Inputs are drawn as lines.
	Inputs []linearize.Subpath

	// Outlines are drawn as filled polygons.
	Outlines [][]offset.Point

	// Margin is added around the bounding box of all points.
	Margin float64
}

// Bounds returns the bounding box of all points in the scene, enlarged by
// the margin.
func (s *Scene) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	add := func(pts []offset.Point) {
		for _, p := range pts {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	for _, sp := range s.Inputs {
		add(sp.Points)
	}
	for _, pts := range s.Outlines {
		add(pts)
	}
	if b.LLx > b.URx {
		return rect.Rect{}
	}

	b.LLx -= s.Margin
	b.LLy -= s.Margin
	b.URx += s.Margin
	b.URy += s.Margin
	return b
}

// ErrEmptyScene is returned when a scene without any area is drawn.
var ErrEmptyScene = errors.New("preview: empty scene")
