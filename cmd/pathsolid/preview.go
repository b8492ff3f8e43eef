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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/offset/internal/preview"
	"seehuhn.de/go/offset/linearize"
	"seehuhn.de/go/offset/solid"
)

var (
	previewOutput  string
	previewPixels  float64
	previewOptions solid.Options
)

var previewCmd = &cobra.Command{
	Use:   "preview <path data>",
	Short: "Draw the input paths and the offset outlines to a PDF or PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readPathData(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return writePreview(previewOutput, d, &previewOptions, previewPixels)
	},
}

func init() {
	f := previewCmd.Flags()
	f.StringVarP(&previewOutput, "output", "o", "preview.pdf", "output file, ending in .pdf or .png")
	f.Float64Var(&previewPixels, "pixels", 4, "pixels per unit for PNG output")
	addOptionFlags(previewCmd, &previewOptions)
	rootCmd.AddCommand(previewCmd)
}

func writePreview(fname, d string, opt *solid.Options, pixels float64) error {
	outlines, err := solid.Outlines(d, opt)
	if err != nil {
		return err
	}

	scene := &preview.Scene{}
	for _, out := range outlines {
		scene.Inputs = append(scene.Inputs, linearize.Subpath{
			Points: out.Input,
			Closed: !out.Open,
		})
		scene.Outlines = append(scene.Outlines, out.Points)
	}
	b := scene.Bounds()
	scene.Margin = 0.05 * max(b.URx-b.LLx, b.URy-b.LLy)
	lineWidth := 0.002 * max(b.URx-b.LLx, b.URy-b.LLy)

	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".pdf":
		err = scene.WritePDF(fname, lineWidth)
	case ".png":
		err = writePNGFile(fname, scene, pixels)
	default:
		return fmt.Errorf("unsupported preview format %q", ext)
	}
	if err != nil {
		return err
	}
	logger.Info("wrote preview", "file", fname, "outlines", len(outlines))
	return nil
}

func writePNGFile(fname string, scene *preview.Scene, pixels float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = scene.WritePNG(f, pixels)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
