// seehuhn.de/go/obj - a library for reading and writing Wavefront OBJ files
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

package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNoProfiles(t *testing.T) {
	p, err := Start("", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Stop(); err != nil {
		t.Error(err)
	}
}

func TestMemProfile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mem.prof")
	p, err := Start("", fname)
	if err != nil {
		t.Fatal(err)
	}
	err = p.Stop()
	if err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty memory profile")
	}

	// a second Stop does nothing
	if err := p.Stop(); err != nil {
		t.Error(err)
	}
}

func TestCPUProfileBadPath(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "cpu.prof")
	_, err := Start(fname, "")
	if err == nil {
		t.Error("expected an error")
	}
}
