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

// Command genpdf draws every test case into a PDF file, for visual
// inspection of the offset results.
// The input path is drawn in gray, the computed outline in white.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/internal/preview"
	"seehuhn.de/go/offset/linearize"
	"seehuhn.de/go/offset/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	scene := &preview.Scene{Margin: 5}

	o := offset.NewOffsetter()
	for _, sp := range linearize.Linearize(tc.Path, testcases.Flatness) {
		var res []offset.Point
		var err error
		switch op := tc.Op.(type) {
		case testcases.Extend:
			res, err = o.Extend(sp.Points, op.Amount)
		case testcases.Thicken:
			res, err = o.ThickPath(sp.Points, op.Width)
		}
		if err != nil {
			return err
		}
		scene.Inputs = append(scene.Inputs, sp)
		scene.Outlines = append(scene.Outlines, res)
	}

	return scene.WritePDF(pdfPath, 0.25)
}
