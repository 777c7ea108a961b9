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
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/obj"
	"seehuhn.de/go/obj/internal/float"
)

// printStats writes one summary line for the document and one line per
// object.  If width is positive, longer lines are cut to this many
// characters.
func printStats(w io.Writer, doc *obj.Document, width int) error {
	comments := doc.Comments()
	objects := doc.Objects()
	line := fmt.Sprintf("%d comments, %d objects", len(comments), len(objects))
	_, err := fmt.Fprintln(w, clip(line, width))
	if err != nil {
		return err
	}

	for _, o := range objects {
		name, ok := o.Name.Get()
		if !ok {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%s: %d v, %d vt, %d vn, %d f",
			name, len(o.Vertices()), len(o.TexCoords()), len(o.Normals()), len(o.Faces()))
		if lo, hi, ok := o.Bounds(); ok {
			line += ", bounds " + formatVec(lo) + ".." + formatVec(hi)
		}
		_, err = fmt.Fprintln(w, clip(line, width))
		if err != nil {
			return err
		}
	}
	return nil
}

func formatVec(v mgl32.Vec3) string {
	return "[" + float.FormatPrec(v[0], 3) +
		" " + float.FormatPrec(v[1], 3) +
		" " + float.FormatPrec(v[2], 3) + "]"
}

func clip(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
