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

// Package solid turns 2D outlines into extruded solids.
//
// The main entry point is [FromSVG], which reads SVG path data, converts it
// into polylines, grows closed shapes or thickens open paths using the
// offset package, and extrudes the resulting outlines along the z-axis.
package solid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/offset"
)

// Mesh is a polyhedral surface.  Faces list vertex indices in
// counter-clockwise order when seen from outside the solid.
type Mesh struct {
	Vertices []offset.Point
	Faces    [][]int
}

// SignedArea returns the area enclosed by the closed polygon pts.  The
// result is positive for counter-clockwise and negative for clockwise
// polygons.
func SignedArea(pts []offset.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// IsCCW reports whether the closed polygon pts is oriented
// counter-clockwise.
func IsCCW(pts []offset.Point) bool {
	return SignedArea(pts) > 0
}

// Extrude builds a prism by moving the polygon pts by height along the
// z-axis.  The bottom cap uses the z-coordinates of pts.  A negative height
// extrudes downwards.
func Extrude(height float64, pts []offset.Point) (*Mesh, error) {
	if height == 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, ErrInvalidHeight
	}
	n := len(pts)
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	// Orient the bottom polygon so that the side faces point outwards.
	base := pts
	if IsCCW(pts) != (height > 0) {
		base = slices.Clone(pts)
		slices.Reverse(base)
	}

	m := &Mesh{
		Vertices: make([]offset.Point, 0, 2*n),
		Faces:    make([][]int, 0, n+2),
	}
	m.Vertices = append(m.Vertices, base...)
	for _, p := range base {
		p.Z += height
		m.Vertices = append(m.Vertices, p)
	}

	bottom := make([]int, n)
	top := make([]int, n)
	for i := range n {
		bottom[i] = n - 1 - i
		top[i] = n + i
	}
	m.Faces = append(m.Faces, bottom, top)
	for i := range n {
		j := (i + 1) % n
		m.Faces = append(m.Faces, []int{i, j, n + j, n + i})
	}
	return m, nil
}

// Bounds returns the extent of the mesh in the xy-plane.
func (m *Mesh) Bounds() rect.Rect {
	if len(m.Vertices) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, v := range m.Vertices {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	return WriteOBJ(w, m)
}

// WriteOBJ writes several meshes into a single Wavefront OBJ file, one
// object per mesh.
func WriteOBJ(w io.Writer, meshes ...*Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# seehuhn.de/go/offset")
	base := 1 // OBJ indices are 1-based and global
	for k, m := range meshes {
		if len(meshes) > 1 {
			fmt.Fprintf(bw, "o solid%d\n", k+1)
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, f := range m.Faces {
			bw.WriteString("f")
			for _, idx := range f {
				fmt.Fprintf(bw, " %d", base+idx)
			}
			bw.WriteByte('\n')
		}
		base += len(m.Vertices)
	}
	return bw.Flush()
}

var (
	// ErrInvalidHeight is returned by [Extrude] for a zero or non-finite
	// height.
	ErrInvalidHeight = errors.New("solid: extrusion height must be finite and non-zero")

	// ErrTooFewPoints is returned by [Extrude] for polygons with less than
	// three points.
	ErrTooFewPoints = errors.New("solid: polygon needs at least three points")
)
