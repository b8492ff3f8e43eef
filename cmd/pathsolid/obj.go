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
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/offset/solid"
)

var objOutput string
var objOptions solid.Options

var objCmd = &cobra.Command{
	Use:   "obj <path data>",
	Short: "Write the extruded solids in Wavefront OBJ format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readPathData(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		if objOutput == "" || objOutput == "-" {
			return writeOBJ(cmd.OutOrStdout(), d, &objOptions)
		}
		return writeOBJFile(objOutput, d, &objOptions)
	},
}

func init() {
	objCmd.Flags().StringVarP(&objOutput, "output", "o", "", "output file (default stdout)")
	addOptionFlags(objCmd, &objOptions)
	rootCmd.AddCommand(objCmd)
}

func writeOBJ(w io.Writer, d string, opt *solid.Options) error {
	meshes, err := solid.FromSVG(d, opt)
	if err != nil {
		return err
	}
	for i, m := range meshes {
		b := m.Bounds()
		logger.Debug("solid",
			"index", i,
			"vertices", len(m.Vertices),
			"faces", len(m.Faces),
			"width", b.URx-b.LLx,
			"height", b.URy-b.LLy)
	}
	return solid.WriteOBJ(w, meshes...)
}

func writeOBJFile(fname, d string, opt *solid.Options) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = writeOBJ(f, d, opt)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
		return err
	}
	logger.Info("wrote solid", "file", fname)
	return nil
}
