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

// Package linearize converts paths with curved segments into polylines
// suitable for the offset package.
//
// Curves are approximated by line segments so that the distance between the
// curve and its approximation stays below a configurable flatness tolerance.
// Zero-length segments are dropped, so that consecutive points of every
// returned polyline are distinct.
package linearize

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset"
)

// Subpath is one connected piece of a linearized path.
type Subpath struct {
	Points []offset.Point

	// Closed is true if the path data closed the subpath.  The closing edge
	// from the last point back to the first is implicit; the first point is
	// not repeated at the end.
	Closed bool
}

// Linearizer flattens path data into polylines.
type Linearizer struct {
	// Transform maps path coordinates to output coordinates.
	// Must be non-singular.
	Transform matrix.Matrix

	// Flatness is the maximal distance between a curve and its polyline
	// approximation, in output coordinates.  Must be positive.
	Flatness float64

	// Z is used as the third coordinate of all output points.
	Z float64

	cur    []offset.Point
	result []Subpath
}

// New returns a Linearizer with the identity transformation and
// [DefaultFlatness].
func New() *Linearizer {
	return &Linearizer{
		Transform: matrix.Identity,
		Flatness:  DefaultFlatness,
	}
}

// Linearize flattens p using the identity transformation and the given
// flatness tolerance.
func Linearize(p *path.Data, flatness float64) []Subpath {
	l := New()
	l.Flatness = flatness
	return l.Linearize(p)
}

// Linearize converts all subpaths of p into polylines.  Open subpaths with
// fewer than two distinct points and closed subpaths with fewer than three
// distinct points are dropped.
func (l *Linearizer) Linearize(p *path.Data) []Subpath {
	l.result = nil
	l.cur = l.cur[:0]

	// Control points are transformed before flattening.  Bézier curves are
	// invariant under affine maps, so the flatness tolerance then applies
	// directly in output space.
	var current vec.Vec2 // current point, output space
	var start vec.Vec2   // start of the current subpath, output space
	inSubpath := false
	started := false // segments before the first MoveTo are ignored

	begin := func() bool {
		if !inSubpath && started {
			l.cur = append(l.cur[:0], l.point(current))
			inSubpath = true
		}
		return inSubpath
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				l.finish(false)
			}
			current = l.apply(p.Coords[coordIdx])
			start = current
			coordIdx++
			l.cur = append(l.cur[:0], l.point(current))
			inSubpath = true
			started = true

		case path.CmdLineTo:
			if !begin() {
				coordIdx++
				continue
			}
			to := l.apply(p.Coords[coordIdx])
			l.lineTo(to)
			current = to
			coordIdx++

		case path.CmdQuadTo:
			if !begin() {
				coordIdx += 2
				continue
			}
			p1 := l.apply(p.Coords[coordIdx])
			p2 := l.apply(p.Coords[coordIdx+1])
			flattenQuadratic(current, p1, p2, l.Flatness, l.lineTo)
			current = p2
			coordIdx += 2

		case path.CmdCubeTo:
			if !begin() {
				coordIdx += 3
				continue
			}
			p1 := l.apply(p.Coords[coordIdx])
			p2 := l.apply(p.Coords[coordIdx+1])
			p3 := l.apply(p.Coords[coordIdx+2])
			flattenCubic(current, p1, p2, p3, l.Flatness, l.lineTo)
			current = p3
			coordIdx += 3

		case path.CmdClose:
			if inSubpath {
				l.finish(true)
				inSubpath = false
			}
			// drawing after a close continues from the subpath start
			current = start
		}
	}
	if inSubpath {
		l.finish(false)
	}

	return l.result
}

// finish moves the points collected so far into a new Subpath.
func (l *Linearizer) finish(closed bool) {
	pts := l.cur
	if closed && len(pts) > 1 && isZeroLength(pts[len(pts)-1].Vec2, pts[0].Vec2) {
		pts = pts[:len(pts)-1]
	}
	minPoints := 2
	if closed {
		minPoints = 3
	}
	if len(pts) >= minPoints {
		l.result = append(l.result, Subpath{
			Points: append([]offset.Point(nil), pts...),
			Closed: closed,
		})
	}
	l.cur = l.cur[:0]
}

// lineTo appends a point to the current subpath, skipping zero-length
// segments.
func (l *Linearizer) lineTo(to vec.Vec2) {
	if n := len(l.cur); n > 0 && isZeroLength(l.cur[n-1].Vec2, to) {
		return
	}
	l.cur = append(l.cur, l.point(to))
}

func (l *Linearizer) point(v vec.Vec2) offset.Point {
	return offset.Point{Vec2: v, Z: l.Z}
}

// apply maps v from path coordinates to output coordinates.
func (l *Linearizer) apply(v vec.Vec2) vec.Vec2 {
	m := l.Transform
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func isZeroLength(a, b vec.Vec2) bool {
	return b.Sub(a).Length() < zeroLengthThreshold
}

// flattenQuadratic approximates a quadratic Bézier by line segments and
// calls lineTo for each segment end point.  p0 is the current point, p1 the
// control point and p2 the end point.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, lineTo func(vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > flatness {
		n = int(math.Ceil(math.Sqrt(errLen / flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates a cubic Bézier by line segments and calls
// lineTo for each segment end point.  p0 is the current point, p1 and p2
// are the control points and p3 is the end point.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, lineTo func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		lineTo(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

const (
	// DefaultFlatness is the default curve approximation tolerance.
	DefaultFlatness = 0.01

	// zeroLengthThreshold is the minimum length of an output segment.
	// Shorter segments are merged into their neighbours.
	zeroLengthThreshold = 1e-10
)
