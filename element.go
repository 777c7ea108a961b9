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

package obj

import (
	"io"
	"strings"
)

// Element is implemented by all parts of a document which have an OBJ text
// representation.
type Element interface {
	// WriteOBJ writes the OBJ representation of the element to w.
	// Single-line elements are written without a trailing newline.
	WriteOBJ(w io.Writer) error
}

// Format returns the OBJ representation of e as a string.
func Format(e Element) (string, error) {
	buf := &strings.Builder{}
	err := e.WriteOBJ(buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	_ Element = Vertex{}
	_ Element = Normal{}
	_ Element = TexCoord{}
	_ Element = (*Index)(nil)
	_ Element = (*Face)(nil)
	_ Element = (*Comment)(nil)
	_ Element = (*Object)(nil)
	_ Element = (*Document)(nil)
)
