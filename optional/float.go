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

package optional

import (
	"math"
	"strconv"
)

// Float32 represents an optional single precision number.
//
// OBJ texture coordinates use this for the third component, which
// most files leave out.
type Float32 struct {
	isSet bool
	val   float32
}

// NewFloat32 creates a new Float32 with the given value.
func NewFloat32(v float32) Float32 {
	var x Float32
	x.Set(v)
	return x
}

// Get returns the value and whether it is set.
func (x Float32) Get() (float32, bool) {
	return x.val, x.isSet
}

// IsSet reports whether a value is present.
func (x Float32) IsSet() bool {
	return x.isSet
}

// Set sets the value.
func (x *Float32) Set(v float32) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Float32) Clear() {
	x.isSet = false
	x.val = 0
}

// Equal compares two Float32s for equality.
// Two NaN values compare equal, so that values read back from a file
// compare equal to the values which were written.
func (x Float32) Equal(other Float32) bool {
	if x.isSet != other.isSet {
		return false
	}
	if math.IsNaN(float64(x.val)) && math.IsNaN(float64(other.val)) {
		return true
	}
	return x.val == other.val
}

func (x Float32) String() string {
	if !x.isSet {
		return "<unset>"
	}
	return strconv.FormatFloat(float64(x.val), 'g', -1, 32)
}
