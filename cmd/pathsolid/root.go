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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/offset/internal/logging"
	"seehuhn.de/go/offset/solid"
)

var logger = logging.NewNop()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pathsolid",
	Short: "Convert SVG path data into extruded solids",
	Long: `pathsolid reads SVG path data, offsets closed shapes by a given
distance, thickens open paths into ribbons, and extrudes the resulting
outlines into 3D solids.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
	},
}

// Execute runs the command selected by the command line arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// addOptionFlags registers the flags which control the conversion.
func addOptionFlags(cmd *cobra.Command, opt *solid.Options) {
	f := cmd.Flags()
	f.Float64VarP(&opt.Height, "height", "H", 1, "extrusion height")
	f.Float64VarP(&opt.Extension, "extension", "e", 0, "offset distance for closed paths, width for open paths")
	f.Float64VarP(&opt.Flatness, "flatness", "f", 0, "curve approximation tolerance (0 for the default)")
	f.Float64VarP(&opt.Scale, "scale", "s", 1, "scale factor applied to the path coordinates")
	f.BoolVar(&opt.ExactIntersections, "exact", false, "use exact comparisons in the self-intersection test")
}

// readPathData returns the path data given on the command line.  The
// argument "-" reads the data from stdin, "@name" reads it from a file.
func readPathData(arg string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	switch {
	case arg == "-":
		data, err = io.ReadAll(stdin)
	case strings.HasPrefix(arg, "@"):
		data, err = os.ReadFile(arg[1:])
	default:
		return arg, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
