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

// Package offset computes offset and thickened outlines of 2D polylines.
//
// A closed polyline is moved along its vertex normals by [Extend], which
// also trims the loops that appear when the offset curve crosses itself.
// An open polyline is turned into a closed ribbon by [ThickPath].  Both
// functions only use the X and Y coordinates of the input points; the Z
// coordinate is copied to the output unchanged so that the result can be
// extruded in the frame of the input.
package offset

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a vertex of a polyline.  Only the embedded X and Y coordinates
// take part in offset computations.
type Point struct {
	vec.Vec2
	Z float64
}

// Offsetter computes offset outlines of polylines.  Internal buffers for the
// normal fields are reused across calls, so a single Offsetter used for many
// paths allocates only the returned outlines.
//
// An Offsetter is not safe for concurrent use.  The package-level functions
// [Extend] and [ThickPath] use a fresh Offsetter for every call and can be
// called from several goroutines at once.
type Offsetter struct {
	// Epsilon is the relative tolerance used by the intersection test to
	// decide whether two directions are parallel.  Zero means exact
	// floating-point comparison.
	Epsilon float64

	edgeNormals   []vec.Vec2
	vertexNormals []vec.Vec2
}

// NewOffsetter returns an Offsetter which uses [DefaultEpsilon].
func NewOffsetter() *Offsetter {
	return &Offsetter{Epsilon: DefaultEpsilon}
}

// Extend moves every vertex of the closed polyline pts by amount along its
// vertex normal.  Normals are obtained by turning the edge directions by 90°
// counter-clockwise, so for a counter-clockwise polygon a positive amount
// shrinks the shape and a negative amount grows it.
//
// While the result is built, every new edge is tested against all edges
// already emitted.  When the new edge crosses an earlier one, the loop
// between the two is removed and the crossing point is inserted in its place.
func (o *Offsetter) Extend(pts []Point, amount float64) ([]Point, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidDistance
	}
	if err := o.computeNormals(pts, true); err != nil {
		return nil, err
	}

	res := make([]Point, 0, len(pts))
	for i, p := range pts {
		cand := Point{Vec2: p.Add(o.vertexNormals[i].Mul(amount)), Z: p.Z}
		if len(res) > 3 {
			res = o.trimCrossings(res, cand)
		}
		res = appendDistinct(res, cand)
	}
	return res, nil
}

// trimCrossings tests the edge from the last point of res to cand against
// every earlier edge of res.  On a hit, res is truncated after the start of
// the crossed edge and the crossing point, if one is known, is appended.
// The scan continues on the shortened slice.
func (o *Offsetter) trimCrossings(res []Point, cand Point) []Point {
	for j := 0; j < len(res)-2; j++ {
		last := res[len(res)-1]
		x := IntersectTol(res[j].Vec2, res[j+1].Vec2, last.Vec2, cand.Vec2, o.Epsilon)
		if !x.Crossing {
			continue
		}
		res = res[:j+1]
		if x.HasPoint {
			res = appendDistinct(res, Point{Vec2: x.Point, Z: cand.Z})
		}
	}
	return res
}

// ThickPath converts the open polyline pts into a closed ribbon of the given
// width.  The first half of the result runs along the left side of the path
// (in direction of the normals), the second half returns along the right
// side.  The last input vertex does not contribute to the outline, so the
// result has 2(len(pts)-1) points.
//
// No self-intersection repair is done for ribbons.
func (o *Offsetter) ThickPath(pts []Point, width float64) ([]Point, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, ErrInvalidDistance
	}
	if err := o.computeNormals(pts, false); err != nil {
		return nil, err
	}

	d := width / 2
	n := len(pts) - 1
	res := make([]Point, 2*n)
	for i, p := range pts[:n] {
		off := o.vertexNormals[i].Mul(d)
		res[i] = Point{Vec2: p.Add(off), Z: p.Z}
		res[2*n-1-i] = Point{Vec2: p.Sub(off), Z: p.Z}
	}
	return res, nil
}

func (o *Offsetter) computeNormals(pts []Point, closed bool) error {
	var err error
	o.edgeNormals, err = appendEdgeNormals(o.edgeNormals[:0], pts, closed)
	if err != nil {
		return err
	}
	o.vertexNormals, err = appendVertexNormals(o.vertexNormals[:0], o.edgeNormals, closed)
	return err
}

// Extend offsets the closed polyline pts by amount.
// See [Offsetter.Extend] for details.
func Extend(pts []Point, amount float64) ([]Point, error) {
	return NewOffsetter().Extend(pts, amount)
}

// ThickPath converts the open polyline pts into a closed outline of the
// given width.  See [Offsetter.ThickPath] for details.
func ThickPath(pts []Point, width float64) ([]Point, error) {
	return NewOffsetter().ThickPath(pts, width)
}

// appendDistinct appends p unless it coincides with the last point of res.
func appendDistinct(res []Point, p Point) []Point {
	if len(res) > 0 && res[len(res)-1].Vec2 == p.Vec2 {
		return res
	}
	return append(res, p)
}

var (
	// ErrTooFewPoints is returned for polylines with less than two points.
	ErrTooFewPoints = errors.New("offset: path needs at least two points")

	// ErrInvalidDistance is returned when an offset amount or width is NaN
	// or infinite.
	ErrInvalidDistance = errors.New("offset: distance must be finite")
)

// DegenerateError is returned when the normal at an edge or vertex is not
// defined.  This happens for consecutive coincident points, for non-finite
// coordinates, and for a closed path which turns back by exactly 180°.
type DegenerateError struct {
	Index  int    // edge or vertex index
	Reason string // short description
}

func (err *DegenerateError) Error() string {
	return fmt.Sprintf("offset: degenerate geometry at index %d: %s", err.Index, err.Reason)
}

// DefaultEpsilon is the default value of [Offsetter.Epsilon].  A cross
// product a×b is treated as zero if |a×b| <= DefaultEpsilon·|a|·|b|, i.e. if
// the angle between a and b is below roughly 1e-12 radians.
const DefaultEpsilon = 1e-12
