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

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErrorKey(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWriter(buf, slog.LevelInfo)
	log.Info("extrude", "error", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "err=boom") {
		t.Errorf("missing err key in %q", out)
	}
	if strings.Contains(out, "error=") {
		t.Errorf("unexpected error key in %q", out)
	}
}

func TestLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWriter(buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("missing warning in %q", buf.String())
	}
}
