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

import "strconv"

// String represents an optional text value.
//
// An unset String is different from a String set to the empty string.
type String struct {
	isSet bool
	val   string
}

// NewString creates a new String with the given value.
func NewString(v string) String {
	var s String
	s.Set(v)
	return s
}

// Get returns the value and whether it is set.
func (s String) Get() (string, bool) {
	return s.val, s.isSet
}

// IsSet reports whether a value is present.
func (s String) IsSet() bool {
	return s.isSet
}

// Set sets the value.
func (s *String) Set(v string) {
	s.isSet = true
	s.val = v
}

// Clear clears the value.
func (s *String) Clear() {
	s.isSet = false
	s.val = ""
}

// Equal compares two Strings for equality.
func (s String) Equal(other String) bool {
	return s.isSet == other.isSet && s.val == other.val
}

func (s String) String() string {
	if !s.isSet {
		return "<unset>"
	}
	return strconv.Quote(s.val)
}
