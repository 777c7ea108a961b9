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
	"regexp"
	"strconv"
	"strings"
)

// Format returns the shortest decimal representation of x which reads back
// as the same float32 value.  The result always contains a decimal point and
// never uses exponent notation.
func Format(x float32) string {
	if s, special := formatSpecial(x); special {
		return s
	}
	out := strconv.FormatFloat(float64(x), 'f', -1, 32)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// FormatPrec formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed.
func FormatPrec(x float32, precision int) string {
	if s, special := formatSpecial(x); special {
		return s
	}
	out := strconv.FormatFloat(float64(x), 'f', precision, 32)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

func formatSpecial(x float32) (string, bool) {
	switch {
	case math.IsNaN(float64(x)):
		return "NaN", true
	case math.IsInf(float64(x), 1):
		return "+Inf", true
	case math.IsInf(float64(x), -1):
		return "-Inf", true
	}
	return "", false
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
