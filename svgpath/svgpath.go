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

// Package svgpath reads the path data format used by the "d" attribute of
// SVG path elements.
//
// All commands of SVG 1.1 are supported.  Elliptical arcs are converted into
// cubic Bézier curves, so that the result only uses the segment types of
// [path.Data].
package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SyntaxError describes malformed path data.
type SyntaxError struct {
	Pos int // byte offset into the path data
	Msg string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at position %d", err.Msg, err.Pos+1)
}

// numArgs gives the number of arguments for each command.
var numArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

// Parse converts SVG path data into a path.  An empty string gives an empty
// path.
func Parse(d string) (*path.Data, error) {
	buf := []byte(d)
	p := &path.Data{}

	i := skipSeparators(buf, 0)
	if i == len(buf) {
		return p, nil
	}
	if buf[i] != 'M' && buf[i] != 'm' {
		return nil, &SyntaxError{Pos: i, Msg: "path data must start with a moveto command"}
	}

	var cur, start vec.Vec2 // current point and start of the subpath
	var ctrl vec.Vec2       // last control point, for S and T
	var args [7]float64
	var cmd, prev byte
	reopen := false // a new subpath must be started at start

	for {
		i = skipSeparators(buf, i)
		if i >= len(buf) {
			break
		}

		if c := buf[i]; isLetter(c) {
			cmd = c
			i++
		} else if upper(cmd) == 'Z' {
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q", c)}
		}
		op := upper(cmd)
		n, ok := numArgs[op]
		if !ok {
			return nil, &SyntaxError{Pos: i - 1, Msg: fmt.Sprintf("unknown command %q", cmd)}
		}

		for j := range n {
			i = skipSeparators(buf, i)
			if op == 'A' && (j == 3 || j == 4) {
				if i >= len(buf) || (buf[i] != '0' && buf[i] != '1') {
					return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("arc flag must be 0 or 1 in command %q", cmd)}
				}
				args[j] = float64(buf[i] - '0')
				i++
				continue
			}
			x, k := strconv.ParseFloat(buf[i:])
			if k == 0 {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("command %q needs %d numbers", cmd, n)}
			}
			args[j] = x
			i += k
		}

		var base vec.Vec2
		if cmd != op {
			base = cur // lower case commands use relative coordinates
		}
		if reopen && op != 'M' && op != 'Z' {
			p = p.MoveTo(start)
			reopen = false
		}

		switch op {
		case 'M':
			cur = base.Add(vec.Vec2{X: args[0], Y: args[1]})
			start = cur
			p = p.MoveTo(cur)
			reopen = false
			// further coordinate pairs are implicit lineto commands
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L':
			cur = base.Add(vec.Vec2{X: args[0], Y: args[1]})
			p = p.LineTo(cur)
		case 'H':
			cur = vec.Vec2{X: base.X + args[0], Y: cur.Y}
			p = p.LineTo(cur)
		case 'V':
			cur = vec.Vec2{X: cur.X, Y: base.Y + args[0]}
			p = p.LineTo(cur)
		case 'C':
			c1 := base.Add(vec.Vec2{X: args[0], Y: args[1]})
			ctrl = base.Add(vec.Vec2{X: args[2], Y: args[3]})
			cur = base.Add(vec.Vec2{X: args[4], Y: args[5]})
			p = p.CubeTo(c1, ctrl, cur)
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'S' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			ctrl = base.Add(vec.Vec2{X: args[0], Y: args[1]})
			cur = base.Add(vec.Vec2{X: args[2], Y: args[3]})
			p = p.CubeTo(c1, ctrl, cur)
		case 'Q':
			ctrl = base.Add(vec.Vec2{X: args[0], Y: args[1]})
			cur = base.Add(vec.Vec2{X: args[2], Y: args[3]})
			p = p.QuadTo(ctrl, cur)
		case 'T':
			c := cur
			if prev == 'Q' || prev == 'T' {
				c = cur.Mul(2).Sub(ctrl)
			}
			ctrl = c
			cur = base.Add(vec.Vec2{X: args[0], Y: args[1]})
			p = p.QuadTo(ctrl, cur)
		case 'A':
			end := base.Add(vec.Vec2{X: args[5], Y: args[6]})
			p = arcTo(p, cur, args[0], args[1], args[2], args[3] == 1, args[4] == 1, end)
			cur = end
		case 'Z':
			p = p.Close()
			cur = start
			reopen = true
		}
		prev = op
	}

	return p, nil
}

// arcTo appends an elliptical arc from p0 to p1 to p, using the endpoint
// parametrisation of the SVG specification.  The arc is approximated by
// cubic Bézier curves, each spanning at most 90°.
func arcTo(p *path.Data, p0 vec.Vec2, rx, ry, rotDeg float64, large, sweep bool, p1 vec.Vec2) *path.Data {
	if p0 == p1 {
		return p
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(p1)
	}

	sinPhi, cosPhi := math.Sincos(rotDeg * math.Pi / 180)

	// transform to a frame where the ellipse axes are aligned
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// scale up radii which are too small to reach the end point
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	// point and derivative on the ellipse at angle t
	at := func(t float64) (vec.Vec2, vec.Vec2) {
		sin, cos := math.Sincos(t)
		pt := vec.Vec2{
			X: center.X + rx*cosPhi*cos - ry*sinPhi*sin,
			Y: center.Y + rx*sinPhi*cos + ry*cosPhi*sin,
		}
		d := vec.Vec2{
			X: -rx*cosPhi*sin - ry*sinPhi*cos,
			Y: -rx*sinPhi*sin + ry*cosPhi*cos,
		}
		return pt, d
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	n = max(n, 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	_, da := at(theta)
	a := p0
	for i := 1; i <= n; i++ {
		b, db := at(theta + float64(i)*step)
		if i == n {
			b = p1
		}
		p = p.CubeTo(a.Add(da.Mul(k)), b.Sub(db.Mul(k)), b)
		a, da = b, db
	}
	return p
}

func skipSeparators(buf []byte, i int) int {
	for i < len(buf) {
		switch buf[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
