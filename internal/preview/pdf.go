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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/offset"
)

// WritePDF writes the scene to a single-page PDF file.  One unit in the
// scene corresponds to one PDF point.
func (s *Scene) WritePDF(fname string, lineWidth float64) error {
	b := s.Bounds()
	if b.URx <= b.LLx || b.URy <= b.LLy {
		return ErrEmptyScene
	}

	paper := &pdf.Rectangle{
		URx: b.URx - b.LLx,
		URy: b.URy - b.LLy,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, 1, -b.LLx, -b.LLy})

	page.SetFillColor(color.DeviceGray(1))
	for _, pts := range s.Outlines {
		if len(pts) < 3 {
			continue
		}
		polygonPDF(page, pts)
		page.ClosePath()
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(lineWidth)
	for _, sp := range s.Inputs {
		if len(sp.Points) < 2 {
			continue
		}
		polygonPDF(page, sp.Points)
		if sp.Closed {
			page.ClosePath()
		}
		page.Stroke()
	}

	return page.Close()
}

type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

func polygonPDF(page pathBuilder, pts []offset.Point) {
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		page.LineTo(p.X, p.Y)
	}
}
