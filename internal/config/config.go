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

// Package config reads batch job files for the pathsolid command.
//
// A job file is a YAML document of the form
//
//	defaults:
//	  height: 5
//	  flatness: 0.01
//	jobs:
//	  - name: logo
//	    path: "M0,0 L10,0 L10,10 Z"
//	    extension: 0.5
//
// Values given in the defaults section apply to all jobs which leave the
// corresponding field unset.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/offset/linearize"
	"seehuhn.de/go/offset/solid"
)

// File is the content of a job file.
type File struct {
	Defaults Job   `yaml:"defaults"`
	Jobs     []Job `yaml:"jobs"`
}

// Job describes one SVG path to be converted into an OBJ file.
type Job struct {
	Name      string  `yaml:"name"`
	Path      string  `yaml:"path"`
	Height    float64 `yaml:"height"`
	Extension float64 `yaml:"extension"`
	Flatness  float64 `yaml:"flatness"`
	Scale     float64 `yaml:"scale"`
	Exact     bool    `yaml:"exact"`

	// Output is the name of the OBJ file.  Relative names are interpreted
	// relative to the directory of the job file.
	Output string `yaml:"output"`
}

// Options returns the conversion options for the job.
func (j *Job) Options() *solid.Options {
	return &solid.Options{
		Height:             j.Height,
		Flatness:           j.Flatness,
		Extension:          j.Extension,
		Scale:              j.Scale,
		ExactIntersections: j.Exact,
	}
}

// Validate checks that the job can be run.
func (j *Job) Validate() error {
	switch {
	case j.Name == "":
		return errors.New("missing job name")
	case j.Path == "":
		return fmt.Errorf("job %q: missing path data", j.Name)
	case j.Height <= 0:
		return fmt.Errorf("job %q: height must be positive, not %g", j.Name, j.Height)
	case j.Flatness <= 0:
		return fmt.Errorf("job %q: flatness must be positive, not %g", j.Name, j.Flatness)
	case j.Scale <= 0:
		return fmt.Errorf("job %q: scale must be positive, not %g", j.Name, j.Scale)
	}
	return nil
}

// Load reads a job file.  Defaults are merged into the jobs, and all jobs
// are validated.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{}
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	seen := make(map[string]bool, len(f.Jobs))
	for i := range f.Jobs {
		j := &f.Jobs[i]
		applyDefaults(j, &f.Defaults)
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i+1)
		}
		if j.Output == "" {
			j.Output = j.Name + ".obj"
		}
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("config: duplicate job name %q", j.Name)
		}
		seen[j.Name] = true
	}
	return f, nil
}

// LoadFile reads the job file with the given name.  Relative output names
// are resolved against the directory containing the file.
func LoadFile(name string) (*File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Load(fd)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(name)
	for i := range f.Jobs {
		if !filepath.IsAbs(f.Jobs[i].Output) {
			f.Jobs[i].Output = filepath.Join(dir, f.Jobs[i].Output)
		}
	}
	return f, nil
}

// applyDefaults copies unset fields of j from d, and applies the built-in
// defaults for fields which are still unset.
func applyDefaults(j, d *Job) {
	if j.Height == 0 {
		j.Height = d.Height
	}
	if j.Extension == 0 {
		j.Extension = d.Extension
	}
	if j.Flatness == 0 {
		j.Flatness = d.Flatness
	}
	if j.Flatness == 0 {
		j.Flatness = linearize.DefaultFlatness
	}
	if j.Scale == 0 {
		j.Scale = d.Scale
	}
	if j.Scale == 0 {
		j.Scale = 1
	}
	j.Exact = j.Exact || d.Exact
}

// ErrNoJobs is returned by Load if the file does not define any jobs.
var ErrNoJobs = errors.New("config: no jobs defined")
