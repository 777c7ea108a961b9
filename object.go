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

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/obj/optional"
)

// Object is a named collection of geometry, started by an "o" record.
//
// The indices stored in the faces of an object refer to the vertex,
// texture coordinate and normal lists of the same object.
type Object struct {
	Name optional.String

	vertices  []*Vertex
	texCoords []*TexCoord
	normals   []*Normal
	faces     []*Face
}

// NewObject returns an empty object with the given name.
func NewObject(name string) *Object {
	return &Object{Name: optional.NewString(name)}
}

// Vertices returns a copy of the vertex list.
func (o *Object) Vertices() []*Vertex {
	return slices.Clone(o.vertices)
}

// Vertex returns the vertex at position i.
func (o *Object) Vertex(i int) (*Vertex, error) {
	return getAt(o.vertices, i)
}

// AddVertex appends a vertex to the object.
func (o *Object) AddVertex(v *Vertex) {
	o.vertices = append(o.vertices, v)
}

// RemoveVertexAt removes the vertex at position i.
// Face indices are not adjusted.
func (o *Object) RemoveVertexAt(i int) error {
	var err error
	o.vertices, err = removeAt(o.vertices, i)
	return err
}

// RemoveVertex removes v from the object, if present.
func (o *Object) RemoveVertex(v *Vertex) {
	o.vertices = removeItem(o.vertices, v)
}

// ClearVertices removes all vertices from the object.
func (o *Object) ClearVertices() {
	o.vertices = clearList(o.vertices)
}

// TexCoords returns a copy of the texture coordinate list.
func (o *Object) TexCoords() []*TexCoord {
	return slices.Clone(o.texCoords)
}

// TexCoord returns the texture coordinate at position i.
func (o *Object) TexCoord(i int) (*TexCoord, error) {
	return getAt(o.texCoords, i)
}

// AddTexCoord appends a texture coordinate to the object.
func (o *Object) AddTexCoord(t *TexCoord) {
	o.texCoords = append(o.texCoords, t)
}

// RemoveTexCoordAt removes the texture coordinate at position i.
func (o *Object) RemoveTexCoordAt(i int) error {
	var err error
	o.texCoords, err = removeAt(o.texCoords, i)
	return err
}

// RemoveTexCoord removes t from the object, if present.
func (o *Object) RemoveTexCoord(t *TexCoord) {
	o.texCoords = removeItem(o.texCoords, t)
}

// ClearTexCoords removes all texture coordinates from the object.
func (o *Object) ClearTexCoords() {
	o.texCoords = clearList(o.texCoords)
}

// Normals returns a copy of the normal list.
func (o *Object) Normals() []*Normal {
	return slices.Clone(o.normals)
}

// Normal returns the normal at position i.
func (o *Object) Normal(i int) (*Normal, error) {
	return getAt(o.normals, i)
}

// AddNormal appends a normal to the object.
func (o *Object) AddNormal(n *Normal) {
	o.normals = append(o.normals, n)
}

// RemoveNormalAt removes the normal at position i.
func (o *Object) RemoveNormalAt(i int) error {
	var err error
	o.normals, err = removeAt(o.normals, i)
	return err
}

// RemoveNormal removes n from the object, if present.
func (o *Object) RemoveNormal(n *Normal) {
	o.normals = removeItem(o.normals, n)
}

// ClearNormals removes all normals from the object.
func (o *Object) ClearNormals() {
	o.normals = clearList(o.normals)
}

// Faces returns a copy of the face list.
func (o *Object) Faces() []*Face {
	return slices.Clone(o.faces)
}

// Face returns the face at position i.
func (o *Object) Face(i int) (*Face, error) {
	return getAt(o.faces, i)
}

// AddFace appends a face to the object.
func (o *Object) AddFace(f *Face) {
	o.faces = append(o.faces, f)
}

// RemoveFaceAt removes the face at position i.
func (o *Object) RemoveFaceAt(i int) error {
	var err error
	o.faces, err = removeAt(o.faces, i)
	return err
}

// RemoveFace removes f from the object, if present.
func (o *Object) RemoveFace(f *Face) {
	o.faces = removeItem(o.faces, f)
}

// ClearFaces removes all faces from the object.
func (o *Object) ClearFaces() {
	o.faces = clearList(o.faces)
}

// Bounds returns the axis-aligned bounding box of the vertices.
// If the object has no vertices, ok is false.
func (o *Object) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	if len(o.vertices) == 0 {
		return lo, hi, false
	}
	lo = o.vertices[0].Vec3()
	hi = lo
	for _, v := range o.vertices[1:] {
		p := v.Vec3()
		for i := range p {
			mgl32.SetMin(&lo[i], &p[i])
			mgl32.SetMax(&hi[i], &p[i])
		}
	}
	return lo, hi, true
}

// WriteOBJ writes the object as an "o" record, followed by all vertices,
// texture coordinates, normals and faces, in this order.  Every line,
// including the last one, is terminated by a newline.
// This implements the [Element] interface.
func (o *Object) WriteOBJ(w io.Writer) error {
	name, _ := o.Name.Get()
	_, err := io.WriteString(w, "o "+name+"\n")
	if err != nil {
		return err
	}
	for _, v := range o.vertices {
		err = writeLine(w, v)
		if err != nil {
			return err
		}
	}
	for _, t := range o.texCoords {
		err = writeLine(w, t)
		if err != nil {
			return err
		}
	}
	for _, n := range o.normals {
		err = writeLine(w, n)
		if err != nil {
			return err
		}
	}
	for _, f := range o.faces {
		err = writeLine(w, f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Object) String() string {
	return fmt.Sprintf("Object{Name: %s, %d vertices, %d texture coordinates, %d normals, %d faces}",
		o.Name, len(o.vertices), len(o.texCoords), len(o.normals), len(o.faces))
}

func writeLine(w io.Writer, e Element) error {
	err := e.WriteOBJ(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
