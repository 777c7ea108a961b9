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

package float

import (
	"math"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float32
		out string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-1, "-1.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{-0.25, "-0.25"},
		{1234567, "1234567.0"},
		{float32(math.Inf(1)), "+Inf"},
		{float32(math.Inf(-1)), "-Inf"},
		{float32(math.NaN()), "NaN"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.out {
			t.Errorf("Format(%g) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	values := []float32{
		0.1, 1.0 / 3, math.MaxFloat32, math.SmallestNonzeroFloat32,
		-123.456, 1e-20, 6.02214e23,
	}
	for _, x := range values {
		s := Format(x)
		y, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if float32(y) != x {
			t.Errorf("%q read back as %g, want %g", s, y, x)
		}
	}
}

func TestFormatPrec(t *testing.T) {
	cases := []struct {
		in   float32
		prec int
		out  string
	}{
		{1, 3, "1"},
		{1.5, 3, "1.5"},
		{0.125, 2, "0.12"},
		{-0.0001, 2, "0"},
		{100, 0, "100"},
	}
	for _, c := range cases {
		if got := FormatPrec(c.in, c.prec); got != c.out {
			t.Errorf("FormatPrec(%g, %d) = %q, want %q", c.in, c.prec, got, c.out)
		}
	}
}
