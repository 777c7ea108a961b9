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
	"strconv"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/obj/optional"
)

// Index is one corner of a face.  It refers to a vertex, and optionally to
// a texture coordinate and a normal, of the enclosing [Object].
//
// All indices are zero-based.  They are converted to and from the
// one-based convention of OBJ files when a document is read or written.
type Index struct {
	Vertex  optional.Int
	Texture optional.Int
	Normal  optional.Int
}

// NewIndex returns a new Index which refers to the given vertex.
func NewIndex(vertex int) *Index {
	return &Index{Vertex: optional.NewInt(vertex)}
}

// Clear unsets the vertex, texture and normal indices.
func (idx *Index) Clear() {
	idx.Vertex.Clear()
	idx.Texture.Clear()
	idx.Normal.Clear()
}

// WriteOBJ writes the index in one of the forms "v", "v/t", "v//n" or
// "v/t/n".  If no vertex index is set, [ErrNoVertex] is returned.
// This implements the [Element] interface.
func (idx *Index) WriteOBJ(w io.Writer) error {
	v, ok := idx.Vertex.Get()
	if !ok {
		return ErrNoVertex
	}
	buf := strconv.AppendInt(nil, int64(v)+1, 10)
	t, hasTexture := idx.Texture.Get()
	n, hasNormal := idx.Normal.Get()
	if hasTexture {
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(t)+1, 10)
	} else if hasNormal {
		buf = append(buf, '/')
	}
	if hasNormal {
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(n)+1, 10)
	}
	_, err := w.Write(buf)
	return err
}

func (idx *Index) String() string {
	return fmt.Sprintf("Index{Vertex: %s, Texture: %s, Normal: %s}",
		idx.Vertex, idx.Texture, idx.Normal)
}

// Face is a polygon, given by an "f" record.
// The order of the indices is the winding order of the polygon.
type Face struct {
	indices []*Index
}

// NewFace returns a face with the given corners.
func NewFace(indices ...*Index) *Face {
	return &Face{indices: slices.Clone(indices)}
}

// Indices returns a copy of the list of corners.
func (f *Face) Indices() []*Index {
	return slices.Clone(f.indices)
}

// NumIndices returns the number of corners of the face.
func (f *Face) NumIndices() int {
	return len(f.indices)
}

// Index returns the corner at position i.
func (f *Face) Index(i int) (*Index, error) {
	return getAt(f.indices, i)
}

// AddIndex appends a corner to the face.
func (f *Face) AddIndex(idx *Index) {
	f.indices = append(f.indices, idx)
}

// RemoveIndexAt removes the corner at position i.
func (f *Face) RemoveIndexAt(i int) error {
	var err error
	f.indices, err = removeAt(f.indices, i)
	return err
}

// RemoveIndex removes idx from the face.
// If idx is not a corner of f, the face is left unchanged.
func (f *Face) RemoveIndex(idx *Index) {
	f.indices = removeItem(f.indices, idx)
}

// ClearIndices removes all corners from the face.
func (f *Face) ClearIndices() {
	f.indices = clearList(f.indices)
}

// WriteOBJ writes the face as an "f" record.
// This implements the [Element] interface.
func (f *Face) WriteOBJ(w io.Writer) error {
	_, err := io.WriteString(w, "f ")
	if err != nil {
		return err
	}
	for i, idx := range f.indices {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		err = idx.WriteOBJ(w)
		if err != nil {
			return err
		}
	}
	return nil
}
