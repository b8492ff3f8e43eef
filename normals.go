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

package offset

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// EdgeNormals returns the unit normals of the edges of pts.  The normal of
// an edge with direction (dx, dy) points in direction (-dy, dx).
//
// Edge i connects pts[i] to pts[i+1].  If closed is true, the last edge
// connects the last point back to pts[0] and the result has len(pts)
// entries; otherwise it has len(pts)-1 entries.
func EdgeNormals(pts []Point, closed bool) ([]vec.Vec2, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	n := len(pts) - 1
	if closed {
		n++
	}
	return appendEdgeNormals(make([]vec.Vec2, 0, n), pts, closed)
}

// VertexNormals returns one unit normal per vertex, given the edge normals
// computed by [EdgeNormals] with the same value of closed.  Each vertex
// normal is the normalized average of the normals of the two adjacent edges.
// For open paths, the first and last vertex use the normal of their only
// edge.
func VertexNormals(edgeNormals []vec.Vec2, closed bool) ([]vec.Vec2, error) {
	if len(edgeNormals) == 0 {
		return nil, ErrTooFewPoints
	}
	n := len(edgeNormals)
	if !closed {
		n++
	}
	return appendVertexNormals(make([]vec.Vec2, 0, n), edgeNormals, closed)
}

func appendEdgeNormals(dst []vec.Vec2, pts []Point, closed bool) ([]vec.Vec2, error) {
	for i := 1; i < len(pts); i++ {
		n, ok := edgeNormal(pts[i-1].Vec2, pts[i].Vec2)
		if !ok {
			return dst, &DegenerateError{Index: i - 1, Reason: "zero-length edge"}
		}
		dst = append(dst, n)
	}
	if closed {
		last := len(pts) - 1
		n, ok := edgeNormal(pts[last].Vec2, pts[0].Vec2)
		if !ok {
			return dst, &DegenerateError{Index: last, Reason: "zero-length closing edge"}
		}
		dst = append(dst, n)
	}
	return dst, nil
}

func appendVertexNormals(dst []vec.Vec2, edgeNormals []vec.Vec2, closed bool) ([]vec.Vec2, error) {
	k := len(edgeNormals)
	if closed {
		for i := range k {
			prev := edgeNormals[(i+k-1)%k]
			n, ok := unit(lerp(prev, edgeNormals[i], 0.5))
			if !ok {
				return dst, &DegenerateError{Index: i, Reason: "path turns back on itself"}
			}
			dst = append(dst, n)
		}
		return dst, nil
	}

	dst = append(dst, edgeNormals[0])
	for i := 1; i < k; i++ {
		n, ok := unit(lerp(edgeNormals[i], edgeNormals[i-1], 0.5))
		if !ok {
			return dst, &DegenerateError{Index: i, Reason: "path turns back on itself"}
		}
		dst = append(dst, n)
	}
	return append(dst, edgeNormals[k-1]), nil
}

// edgeNormal returns the unit normal of the edge from a to b.
func edgeNormal(a, b vec.Vec2) (vec.Vec2, bool) {
	d := b.Sub(a)
	return unit(vec.Vec2{X: -d.Y, Y: d.X})
}

// unit scales v to length 1.  The second return value is false if v has
// zero or non-finite length.
func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
