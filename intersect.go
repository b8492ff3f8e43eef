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

// Intersection is the result of a segment intersection test.
type Intersection struct {
	// Crossing is true if the two segments touch or overlap.
	Crossing bool

	// HasPoint is true if Point holds the crossing point.  This is false
	// for overlapping collinear segments, where no single point exists.
	HasPoint bool

	// Point is where the lines through the two segments meet.
	Point vec.Vec2
}

// Intersect tests whether the segments AB and CD intersect, using
// [DefaultEpsilon] to detect parallel directions.
func Intersect(a, b, c, d vec.Vec2) Intersection {
	return IntersectTol(a, b, c, d, DefaultEpsilon)
}

// IntersectTol tests whether the segments AB and CD intersect.
//
// If C lies on the line through A and B, the segments are reported as
// crossing when C lies between A and B in at least one coordinate, and no
// crossing point is returned.  This is a coarse overlap test, not an exact
// computation of the overlap interval.
//
// Cross products are treated as zero if their magnitude is at most
// eps·|u|·|v| for the factors u and v.  For eps == 0 exact comparisons are
// used.
func IntersectTol(a, b, c, d vec.Vec2, eps float64) Intersection {
	cma := c.Sub(a)
	r := b.Sub(a)
	s := d.Sub(c)

	cmaXr := cross(cma, r)
	cmaXs := cross(cma, s)
	rXs := cross(r, s)

	if nearZero(cmaXr, cma, r, eps) {
		overlap := (c.X-a.X < 0) != (c.X-b.X < 0) ||
			(c.Y-a.Y < 0) != (c.Y-b.Y < 0)
		return Intersection{Crossing: overlap}
	}
	if nearZero(rXs, r, s, eps) {
		return Intersection{} // parallel
	}

	t := cmaXs / rXs
	u := cmaXr / rXs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{}
	}

	p, ok := lineIntersection(a, b, c, d)
	return Intersection{Crossing: true, HasPoint: ok, Point: p}
}

// lineIntersection returns the intersection of the infinite lines through
// AB and CD.
func lineIntersection(a, b, c, d vec.Vec2) (vec.Vec2, bool) {
	den := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if den == 0 {
		return vec.Vec2{}, false
	}
	ab := a.X*b.Y - a.Y*b.X
	cd := c.X*d.Y - c.Y*d.X
	p := vec.Vec2{
		X: (ab*(c.X-d.X) - (a.X-b.X)*cd) / den,
		Y: (ab*(c.Y-d.Y) - (a.Y-b.Y)*cd) / den,
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return vec.Vec2{}, false
	}
	return p, true
}

// cross returns the z-component of the 3D cross product of u and v.
func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

func nearZero(x float64, u, v vec.Vec2, eps float64) bool {
	if eps == 0 {
		return x == 0
	}
	return math.Abs(x) <= eps*u.Length()*v.Length()
}
