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

package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/offset"
)

// MaxImageSize is the largest width or height of a rendered image, in
// pixels.
const MaxImageSize = 4096

// WritePNG renders the scene to a grayscale PNG image.  The scale gives the
// number of pixels per scene unit, see [Scene.Render].
func (s *Scene) WritePNG(w io.Writer, scale float64) error {
	img, err := s.Render(scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render rasterizes the scene.  The scale gives the number of pixels per
// scene unit.  If the image would exceed MaxImageSize pixels in either
// direction, the scale is reduced to fit.
func (s *Scene) Render(scale float64) (*image.Gray, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("preview: invalid scale %g", scale)
	}
	b := s.Bounds()
	dx := b.URx - b.LLx
	dy := b.URy - b.LLy
	if !(dx > 0 && dy > 0) {
		return nil, ErrEmptyScene
	}
	scale = min(scale, MaxImageSize/max(dx, dy))
	width := min(int(math.Ceil(dx*scale)), MaxImageSize)
	height := min(int(math.Ceil(dy*scale)), MaxImageSize)
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyScene
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	r := vector.NewRasterizer(width, height)
	toPixel := func(p offset.Point) (float32, float32) {
		return float32((p.X - b.LLx) * scale), float32((b.URy - p.Y) * scale)
	}
	fill := func(pts []offset.Point, c color.Gray) {
		// each polygon gets its own pass, so that overlapping outlines
		// of opposite orientation do not cancel
		r.Reset(width, height)
		r.MoveTo(toPixel(pts[0]))
		for _, p := range pts[1:] {
			r.LineTo(toPixel(p))
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	for _, pts := range s.Outlines {
		if len(pts) >= 3 {
			fill(pts, color.Gray{Y: 255})
		}
	}

	// input paths are drawn one pixel wide, one quadrilateral per edge
	h := 0.5 / scale
	for _, sp := range s.Inputs {
		pts := sp.Points
		if len(pts) < 2 {
			continue
		}
		normals, err := offset.EdgeNormals(pts, sp.Closed)
		if err != nil {
			return nil, err
		}
		for i, n := range normals {
			a := pts[i].Vec2
			b := pts[(i+1)%len(pts)].Vec2
			d := n.Mul(h)
			quad := []offset.Point{
				{Vec2: a.Add(d)}, {Vec2: b.Add(d)},
				{Vec2: b.Sub(d)}, {Vec2: a.Sub(d)},
			}
			fill(quad, color.Gray{Y: 128})
		}
	}

	return img, nil
}
