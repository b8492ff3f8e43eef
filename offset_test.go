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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) Point {
	return Point{Vec2: vec.Vec2{X: x, Y: y}}
}

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// subdivide splits every edge of the closed polygon pts into k pieces.
func subdivide(pts []Point, k int) []Point {
	var res []Point
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		for j := range k {
			t := float64(j) / float64(k)
			res = append(res, Point{Vec2: lerp(a.Vec2, b.Vec2, t), Z: a.Z})
		}
	}
	return res
}

// lShape is a counter-clockwise L with arms of width 1.
var lShape = []Point{
	pt(0, 0), pt(4, 0), pt(4, 1), pt(1, 1), pt(1, 4), pt(0, 4),
}

// crossingEdges returns the pairs of non-adjacent edges of the closed
// polygon pts which intersect.
func crossingEdges(pts []Point) [][2]int {
	var bad [][2]int
	n := len(pts)
	for i := range n {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent via the closing edge
			}
			x := Intersect(pts[i].Vec2, pts[(i+1)%n].Vec2, pts[j].Vec2, pts[(j+1)%n].Vec2)
			if x.Crossing {
				bad = append(bad, [2]int{i, j})
			}
		}
	}
	return bad
}

func TestEdgeNormals(t *testing.T) {
	pts := []Point{pt(0, 0), pt(3, 1), pt(2, 5), pt(-1, 2)}
	for _, closed := range []bool{false, true} {
		normals, err := EdgeNormals(pts, closed)
		if err != nil {
			t.Fatal(err)
		}
		want := len(pts) - 1
		if closed {
			want = len(pts)
		}
		if len(normals) != want {
			t.Fatalf("closed=%t: got %d normals, want %d", closed, len(normals), want)
		}
		for i, n := range normals {
			if d := math.Abs(n.Length() - 1); d > 1e-9 {
				t.Errorf("closed=%t: normal %d has length %g", closed, i, n.Length())
			}
			dir := pts[(i+1)%len(pts)].Sub(pts[i].Vec2)
			if dot := n.Dot(dir); math.Abs(dot) > 1e-9 {
				t.Errorf("closed=%t: normal %d not perpendicular, dot=%g", closed, i, dot)
			}
			if cross(dir, n) <= 0 {
				t.Errorf("closed=%t: normal %d points to the right", closed, i)
			}
		}
	}
}

func TestVertexNormals(t *testing.T) {
	pts := []Point{pt(0, 0), pt(2, 0), pt(2, 2)}

	edge, err := EdgeNormals(pts, false)
	if err != nil {
		t.Fatal(err)
	}
	open, err := VertexNormals(edge, false)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2 / 2
	wantOpen := []vec.Vec2{{X: 0, Y: 1}, {X: -s, Y: s}, {X: -1, Y: 0}}
	if len(open) != len(wantOpen) {
		t.Fatalf("got %d open vertex normals, want %d", len(open), len(wantOpen))
	}
	for i := range open {
		if !near(open[i], wantOpen[i], 1e-12) {
			t.Errorf("open vertex normal %d: got %v, want %v", i, open[i], wantOpen[i])
		}
	}

	edge, err = EdgeNormals(pts, true)
	if err != nil {
		t.Fatal(err)
	}
	closed, err := VertexNormals(edge, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(closed) != len(pts) {
		t.Fatalf("got %d closed vertex normals, want %d", len(closed), len(pts))
	}
	for i, n := range closed {
		if d := math.Abs(n.Length() - 1); d > 1e-9 {
			t.Errorf("closed vertex normal %d has length %g", i, n.Length())
		}
	}
	// the normal at the first vertex bisects the closing edge and edge 0
	want0, _ := unit(edge[2].Add(edge[0]))
	if !near(closed[0], want0, 1e-12) {
		t.Errorf("closed vertex normal 0: got %v, want %v", closed[0], want0)
	}
}

func TestDegenerateInput(t *testing.T) {
	cases := []struct {
		name   string
		pts    []Point
		closed bool
		index  int
	}{
		{"repeated", []Point{pt(0, 0), pt(1, 0), pt(1, 0), pt(0, 1)}, true, 1},
		{"closing", []Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 0)}, true, 3},
		{"open", []Point{pt(0, 0), pt(0, 0)}, false, 0},
		{"nan", []Point{pt(0, 0), pt(math.NaN(), 1)}, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EdgeNormals(c.pts, c.closed)
			var degenerate *DegenerateError
			if !errors.As(err, &degenerate) {
				t.Fatalf("got error %v, want DegenerateError", err)
			}
			if degenerate.Index != c.index {
				t.Errorf("got index %d, want %d", degenerate.Index, c.index)
			}
		})
	}

	// a closed path which doubles back has no normal at the turning points
	_, err := Extend([]Point{pt(0, 0), pt(1, 0)}, 1)
	var degenerate *DegenerateError
	if !errors.As(err, &degenerate) {
		t.Errorf("two-point closed path: got error %v, want DegenerateError", err)
	}

	if _, err := Extend([]Point{pt(0, 0)}, 1); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("single point: got error %v, want ErrTooFewPoints", err)
	}
	if _, err := ThickPath(nil, 1); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("empty path: got error %v, want ErrTooFewPoints", err)
	}
	if _, err := Extend(lShape, math.Inf(1)); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("infinite amount: got error %v, want ErrInvalidDistance", err)
	}
	if _, err := ThickPath(lShape, math.NaN()); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("NaN width: got error %v, want ErrInvalidDistance", err)
	}
}

func TestIntersect(t *testing.T) {
	v := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	cases := []struct {
		name          string
		a, b, c, d    vec.Vec2
		crossing, has bool
		point         vec.Vec2
	}{
		{"cross", v(0, 0), v(2, 2), v(0, 2), v(2, 0), true, true, v(1, 1)},
		{"touching", v(0, 0), v(2, 0), v(1, -1), v(1, 0), true, true, v(1, 0)},
		{"collinear_apart", v(0, 0), v(1, 0), v(2, 0), v(3, 0), false, false, vec.Vec2{}},
		{"collinear_overlap", v(0, 0), v(2, 0), v(1, 0), v(3, 0), true, false, vec.Vec2{}},
		{"parallel", v(0, 0), v(1, 0), v(0, 1), v(1, 1), false, false, vec.Vec2{}},
		{"parallel_slope", v(0, 0), v(1, 1), v(1, 0), v(2, 1), false, false, vec.Vec2{}},
		{"miss", v(0, 0), v(1, 0), v(2, -1), v(2, 1), false, false, vec.Vec2{}},
	}
	for _, c := range cases {
		for _, eps := range []float64{0, DefaultEpsilon} {
			x := IntersectTol(c.a, c.b, c.c, c.d, eps)
			if x.Crossing != c.crossing || x.HasPoint != c.has {
				t.Errorf("%s (eps=%g): got crossing=%t point=%t, want %t %t",
					c.name, eps, x.Crossing, x.HasPoint, c.crossing, c.has)
				continue
			}
			if c.has && !near(x.Point, c.point, 1e-12) {
				t.Errorf("%s (eps=%g): got point %v, want %v", c.name, eps, x.Point, c.point)
			}
		}
	}
}

func TestIntersectTolerance(t *testing.T) {
	// C lies a tiny distance off the line AB
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 2, Y: 0}
	c := vec.Vec2{X: 1, Y: 1e-14}
	d := vec.Vec2{X: 3, Y: 1e-14}

	if x := IntersectTol(a, b, c, d, 0); x.Crossing {
		t.Errorf("exact test: got crossing, want parallel miss")
	}
	if x := IntersectTol(a, b, c, d, 1e-12); !x.Crossing || x.HasPoint {
		t.Errorf("tolerant test: got %+v, want collinear overlap", x)
	}
}

func TestExtendSquare(t *testing.T) {
	square := []Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}

	// The square is counter-clockwise, so the normals point inwards and a
	// negative amount grows the square.  Corners move by |amount| along
	// the diagonal.  Unit-length normals give ±1/√2, not the ±1 of a
	// miter offset.
	h := 1 / math.Sqrt2
	want := []vec.Vec2{{X: -h, Y: -h}, {X: 10 + h, Y: -h}, {X: 10 + h, Y: 10 + h}, {X: -h, Y: 10 + h}}

	got, err := Extend(square, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !near(got[i].Vec2, want[i], 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, got[i].Vec2, want[i])
		}
	}
}

func TestExtendGrowsConvex(t *testing.T) {
	var poly []Point
	for k := range 7 {
		phi := 2 * math.Pi * float64(k) / 7
		poly = append(poly, pt(math.Cos(phi), math.Sin(phi)))
	}
	got, err := Extend(poly, -0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(poly) {
		t.Fatalf("got %d points, want %d", len(got), len(poly))
	}
	for i := range poly {
		r0 := poly[i].Length()
		r1 := got[i].Length()
		if math.Abs(r1-r0-0.1) > 1e-12 {
			t.Errorf("vertex %d: distance from centre %g -> %g", i, r0, r1)
		}
	}
}

func TestExtendZero(t *testing.T) {
	paths := [][]Point{
		lShape,
		subdivide(lShape, 4),
		{pt(0, 0), pt(5, 1), pt(3, 4)},
	}
	for k, pts := range paths {
		got, err := Extend(pts, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(pts) {
			t.Errorf("path %d: got %d points, want %d", k, len(got), len(pts))
			continue
		}
		for i := range pts {
			if !near(got[i].Vec2, pts[i].Vec2, 1e-12) {
				t.Errorf("path %d, point %d: got %v, want %v", k, i, got[i].Vec2, pts[i].Vec2)
			}
		}
	}
}

func TestExtendRepair(t *testing.T) {
	pts := subdivide(lShape, 4)

	naive := make([]Point, len(pts))
	normals, err := EdgeNormals(pts, true)
	if err != nil {
		t.Fatal(err)
	}
	vn, err := VertexNormals(normals, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range pts {
		naive[i] = Point{Vec2: p.Add(vn[i].Mul(-1))}
	}
	if len(crossingEdges(naive)) == 0 {
		t.Fatal("test setup: naive offset does not self-intersect")
	}

	for _, eps := range []float64{0, DefaultEpsilon} {
		o := &Offsetter{Epsilon: eps}
		got, err := o.Extend(pts, -1)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) >= len(naive) {
			t.Errorf("eps=%g: got %d points, want fewer than %d", eps, len(got), len(naive))
		}
		if bad := crossingEdges(got); len(bad) > 0 {
			t.Errorf("eps=%g: edges %v still intersect", eps, bad)
		}

		// the loop at the reflex corner is replaced by the crossing point
		found := false
		for _, p := range got {
			if near(p.Vec2, vec.Vec2{X: 2, Y: 2}, 1e-9) {
				found = true
			}
		}
		if !found {
			t.Errorf("eps=%g: repair point (2,2) missing from %v", eps, got)
		}
	}
}

func TestExtendCollinearTrim(t *testing.T) {
	// The fourth vertex lies on the first edge.  The edge leaving it starts
	// inside the span of that edge, which is reported as an overlap without
	// a crossing point: the result is cut back after the first vertex and
	// no repair point is inserted.
	pts := []Point{
		{Vec2: vec.Vec2{X: 0, Y: 0}, Z: 1},
		{Vec2: vec.Vec2{X: 10, Y: 0}, Z: 2},
		{Vec2: vec.Vec2{X: 10, Y: 5}, Z: 3},
		{Vec2: vec.Vec2{X: 5, Y: 0}, Z: 4},
		{Vec2: vec.Vec2{X: 5, Y: -5}, Z: 5},
	}
	want := []Point{pts[0], pts[4]}

	for _, eps := range []float64{0, DefaultEpsilon} {
		o := &Offsetter{Epsilon: eps}
		got, err := o.Extend(pts, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("eps=%g: got %v, want %v", eps, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("eps=%g: point %d: got %v, want %v", eps, i, got[i], want[i])
			}
		}
	}
}

// TestExtendWrapEdge records that the closing edge of the result is not
// checked for crossings.  Shrinking the L until the two sides of an arm pass
// each other leaves one crossing with the edge back to the start.
func TestExtendWrapEdge(t *testing.T) {
	got, err := Extend(subdivide(lShape, 4), 0.6)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Errorf("got %d points, want 10", len(got))
	}
	bad := crossingEdges(got)
	if len(bad) != 1 || bad[0] != [2]int{2, 9} {
		t.Errorf("got crossings %v, want [[2 9]]", bad)
	}

	// finer subdivision or a larger offset avoid the crossing
	for _, c := range []struct {
		k      int
		amount float64
	}{{8, 0.6}, {4, 0.8}} {
		got, err := Extend(subdivide(lShape, c.k), c.amount)
		if err != nil {
			t.Fatal(err)
		}
		if bad := crossingEdges(got); len(bad) > 0 {
			t.Errorf("k=%d, amount=%g: edges %v intersect", c.k, c.amount, bad)
		}
	}
}

func TestExtendNoDuplicates(t *testing.T) {
	pts := subdivide(lShape, 4)
	for _, amount := range []float64{-2, -1.5, -1, -0.5, 0, 0.3} {
		got, err := Extend(pts, amount)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Vec2 == got[i-1].Vec2 {
				t.Errorf("amount %g: points %d and %d coincide", amount, i-1, i)
			}
		}
	}
}

func TestPreserveZ(t *testing.T) {
	pts := subdivide(lShape, 4)
	for i := range pts {
		pts[i].Z = 7
	}
	got, err := Extend(pts, -1)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range got {
		if p.Z != 7 {
			t.Errorf("extend: point %d has z=%g", i, p.Z)
		}
	}

	open := []Point{{Vec2: vec.Vec2{X: 0, Y: 0}, Z: 1}, {Vec2: vec.Vec2{X: 1, Y: 0}, Z: 2}, {Vec2: vec.Vec2{X: 2, Y: 1}, Z: 3}}
	ribbon, err := ThickPath(open, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	wantZ := []float64{1, 2, 2, 1}
	for i, p := range ribbon {
		if p.Z != wantZ[i] {
			t.Errorf("thick: point %d has z=%g, want %g", i, p.Z, wantZ[i])
		}
	}
}

func TestThickPath(t *testing.T) {
	line := []Point{pt(0, 0), pt(10, 0), pt(20, 0)}
	got, err := ThickPath(line, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 0, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: -1}, {X: 0, Y: -1}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !near(got[i].Vec2, want[i], 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, got[i].Vec2, want[i])
		}
	}
}

func TestThickPathCount(t *testing.T) {
	for n := 2; n < 10; n++ {
		var zigzag []Point
		for i := range n {
			zigzag = append(zigzag, pt(float64(i), float64(i%2)))
		}
		got, err := ThickPath(zigzag, 0.2)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2*(n-1) {
			t.Errorf("n=%d: got %d points, want %d", n, len(got), 2*(n-1))
		}
	}
}

func TestOffsetterReuse(t *testing.T) {
	o := NewOffsetter()
	big := subdivide(lShape, 8)
	if _, err := o.Extend(big, -1); err != nil {
		t.Fatal(err)
	}

	small := []Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	got, err := o.Extend(small, -1)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Extend(small, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
