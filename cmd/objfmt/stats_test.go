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

package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/obj"
)

func TestPrintStats(t *testing.T) {
	in := "# test\no tri\nv 0 0 0\nv 1 0 0\nv 0 1.5 -2\nf 1 2 3\no empty\n"
	doc, err := obj.ParseString(in, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	buf := &strings.Builder{}
	err = printStats(buf, doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := "1 comments, 2 objects\n" +
		"tri: 3 v, 0 vt, 0 vn, 1 f, bounds [0 0 -2]..[1 1.5 0]\n" +
		"empty: 0 v, 0 vt, 0 vn, 0 f\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected summary (-want +got):\n%s", d)
	}
}

func TestClip(t *testing.T) {
	cases := []struct {
		in    string
		width int
		out   string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"größer", 3, "gr…"},
	}
	for _, c := range cases {
		if got := clip(c.in, c.width); got != c.out {
			t.Errorf("clip(%q, %d) = %q, want %q", c.in, c.width, got, c.out)
		}
	}
}
