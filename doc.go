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

// Package obj provides support for reading and writing Wavefront OBJ files.
//
// Only the core of the format is supported: comments ("#"), named objects
// ("o"), vertices ("v"), texture coordinates ("vt"), vertex normals ("vn") and
// faces ("f").  All other records are ignored when reading.
//
// A file is read into a [Document] using [Parse], [ParseString] or
// [ReadFile]:
//
//	doc, err := obj.ReadFile("cube.obj", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube, ok := doc.ObjectByName("cube")
//	if !ok {
//	    log.Fatal("no cube")
//	}
//	fmt.Println(len(cube.Vertices()), "vertices")
//
// Every part of a document implements the [Element] interface, which writes
// the OBJ representation of the element:
//
//	err = doc.WriteOBJ(os.Stdout)
//
// Vertices, texture coordinates and normals belong to the [Object] in which
// they are defined, and the indices stored in a [Face] refer to these
// per-object lists.  Indices are zero-based in memory and one-based in OBJ
// files.  When a document is written, the geometry of each object is grouped
// by kind, so that reading a file and writing it back gives a file with the
// same contents, but not necessarily with the same line order.
package obj
