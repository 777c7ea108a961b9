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
	"fmt"
	"io"

	"seehuhn.de/go/obj/optional"
)

// Comment is a "#" line of an OBJ file.
type Comment struct {
	Text optional.String
}

// NewComment returns a comment with the given text.
func NewComment(text string) *Comment {
	return &Comment{Text: optional.NewString(text)}
}

// WriteOBJ writes the comment as "# text".
// A comment without text is written as "# ".
// This implements the [Element] interface.
func (c *Comment) WriteOBJ(w io.Writer) error {
	text, _ := c.Text.Get()
	_, err := io.WriteString(w, "# "+text)
	return err
}

func (c *Comment) String() string {
	return fmt.Sprintf("Comment{Text: %s}", c.Text)
}
