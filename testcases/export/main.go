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

// Command export writes the test cases, together with the computed
// outlines, to JSON for inspection with external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/linearize"
	"seehuhn.de/go/offset/testcases"
)

func main() {
	var out struct {
		Flatness  float64        `json:"flatness"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Flatness = testcases.Flatness

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Path     []jsonSegment `json:"path"`
	Op       string        `json:"op"`
	Amount   float64       `json:"amount,omitempty"`
	Width    float64       `json:"width,omitempty"`
	Simple   bool          `json:"simple"`
	Subpaths []jsonSubpath `json:"subpaths"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonSubpath struct {
	Closed  bool        `json:"closed"`
	Input   [][]float64 `json:"input"`
	Outline [][]float64 `json:"outline"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Path:   pathToJSON(tc.Path),
		Simple: tc.Simple,
	}

	switch op := tc.Op.(type) {
	case testcases.Extend:
		jtc.Op = "extend"
		jtc.Amount = op.Amount
	case testcases.Thicken:
		jtc.Op = "thicken"
		jtc.Width = op.Width
	}

	for _, sp := range linearize.Linearize(tc.Path, testcases.Flatness) {
		var res []offset.Point
		var err error
		switch op := tc.Op.(type) {
		case testcases.Extend:
			res, err = offset.Extend(sp.Points, op.Amount)
		case testcases.Thicken:
			res, err = offset.ThickPath(sp.Points, op.Width)
		}
		if err != nil {
			return jtc, err
		}
		jtc.Subpaths = append(jtc.Subpaths, jsonSubpath{
			Closed:  sp.Closed,
			Input:   pointsToJSON(sp.Points),
			Outline: pointsToJSON(res),
		})
	}
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

func pointsToJSON(pts []offset.Point) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y, p.Z}
	}
	return res
}
