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

package solid

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/linearize"
	"seehuhn.de/go/offset/svgpath"
)

// Options controls the conversion of SVG path data into solids.
type Options struct {
	// Height is the extrusion height.
	Height float64

	// Flatness is the tolerance for approximating curves by line
	// segments, in output units.  Zero selects linearize.DefaultFlatness.
	Flatness float64

	// Extension is the distance by which closed shapes are grown, and the
	// width of the solid built from open paths.  Negative values shrink
	// closed shapes.  Open paths need a non-zero extension.
	Extension float64

	// Scale is applied to the path coordinates before all other steps.
	// Zero means no scaling.
	Scale float64

	// ExactIntersections disables the tolerance in the self-intersection
	// test of the offset computation.
	ExactIntersections bool
}

// Outline is the 2D outline of one subpath, ready for extrusion.
type Outline struct {
	// Input is the linearized subpath.
	Input []offset.Point

	// Open is true if the input was an open path which has been thickened.
	Open bool

	// Points is the closed outline.
	Points []offset.Point
}

// Outlines converts SVG path data into closed outlines.  Closed subpaths
// are grown by opt.Extension, independent of their orientation.  Open
// subpaths are turned into ribbons of width opt.Extension.
func Outlines(d string, opt *Options) ([]Outline, error) {
	if opt == nil {
		opt = &Options{}
	}

	data, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}

	l := linearize.New()
	if opt.Flatness > 0 {
		l.Flatness = opt.Flatness
	}
	if s := opt.Scale; s != 0 && s != 1 {
		l.Transform = matrix.Matrix{s, 0, 0, s, 0, 0}
	}
	subpaths := l.Linearize(data)
	if len(subpaths) == 0 {
		return nil, ErrEmptyPath
	}

	o := offset.NewOffsetter()
	if opt.ExactIntersections {
		o.Epsilon = 0
	}

	res := make([]Outline, 0, len(subpaths))
	for i, sp := range subpaths {
		out := Outline{Input: sp.Points, Open: !sp.Closed}
		switch {
		case !sp.Closed && opt.Extension == 0:
			return nil, ErrZeroWidth
		case !sp.Closed:
			out.Points, err = o.ThickPath(sp.Points, opt.Extension)
		case opt.Extension == 0:
			out.Points = sp.Points
		default:
			// The normals point to the left of the path direction, i.e.
			// into counter-clockwise shapes.
			sign := 1.0
			if IsCCW(sp.Points) {
				sign = -1
			}
			out.Points, err = o.Extend(sp.Points, sign*opt.Extension)
		}
		if err != nil {
			return nil, fmt.Errorf("subpath %d: %w", i, err)
		}
		res = append(res, out)
	}
	return res, nil
}

// FromSVG converts SVG path data into extruded solids, one per subpath.
func FromSVG(d string, opt *Options) ([]*Mesh, error) {
	if opt == nil {
		opt = &Options{}
	}
	outlines, err := Outlines(d, opt)
	if err != nil {
		return nil, err
	}

	meshes := make([]*Mesh, 0, len(outlines))
	for i, out := range outlines {
		m, err := Extrude(opt.Height, out.Points)
		if err != nil {
			return nil, fmt.Errorf("subpath %d: %w", i, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

var (
	// ErrZeroWidth is returned when an open path is to be converted with
	// zero extension.
	ErrZeroWidth = errors.New("solid: cannot make a thick solid from an open path with zero width")

	// ErrEmptyPath is returned when the path data contains no subpath
	// which can be converted.
	ErrEmptyPath = errors.New("solid: no usable subpath in path data")
)
