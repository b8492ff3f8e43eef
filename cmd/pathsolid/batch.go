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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/offset/internal/config"
)

var batchKeepGoing bool

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Run all conversion jobs listed in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args[0], batchKeepGoing)
	},
}

func init() {
	batchCmd.Flags().BoolVarP(&batchKeepGoing, "keep-going", "k", false, "continue with the remaining jobs after an error")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(fname string, keepGoing bool) error {
	f, err := config.LoadFile(fname)
	if err != nil {
		return err
	}

	var errs []error
	for _, job := range f.Jobs {
		logger.Debug("starting job", "job", job.Name, "output", job.Output)

		err := os.MkdirAll(filepath.Dir(job.Output), 0o755)
		if err == nil {
			err = writeOBJFile(job.Output, job.Path, job.Options())
		}
		if err != nil {
			logger.Error("job failed", "job", job.Name, "error", err)
			errs = append(errs, fmt.Errorf("job %q: %w", job.Name, err))
			if !keepGoing {
				break
			}
		}
	}
	return errors.Join(errs...)
}
