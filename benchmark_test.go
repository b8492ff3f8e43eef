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

package offset_test

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset"
)

// BenchmarkExtend benchmarks offsetting a circle with an increasing number
// of vertices.
func BenchmarkExtend(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		pts := circlePoints(100, n)

		b.Run(fmt.Sprintf("reuse/%d", n), func(b *testing.B) {
			o := offset.NewOffsetter()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := o.Extend(pts, -5); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("func/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := offset.Extend(pts, -5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExtendRepair benchmarks a star shape where many self-intersections
// need to be removed.
func BenchmarkExtendRepair(b *testing.B) {
	pts := starPoints(100, 60, 64)
	o := offset.NewOffsetter()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := o.Extend(pts, -20); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkThickPath benchmarks thickening a sine wave.
func BenchmarkThickPath(b *testing.B) {
	pts := make([]offset.Point, 1000)
	for i := range pts {
		x := float64(i) / 10
		pts[i] = offset.Point{Vec2: vec.Vec2{X: x, Y: 10 * math.Sin(x)}}
	}
	o := offset.NewOffsetter()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := o.ThickPath(pts, 2); err != nil {
			b.Fatal(err)
		}
	}
}

// circlePoints returns n points on a counter-clockwise circle.
func circlePoints(r float64, n int) []offset.Point {
	pts := make([]offset.Point, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = offset.Point{Vec2: vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}}
	}
	return pts
}

// starPoints returns a counter-clockwise star with n spikes.
func starPoints(outer, inner float64, n int) []offset.Point {
	pts := make([]offset.Point, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi * float64(i) / float64(n)
		pts[i] = offset.Point{Vec2: vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}}
	}
	return pts
}
