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

	"seehuhn.de/go/obj/internal/float"
	"seehuhn.de/go/obj/optional"
)

// Vertex is a geometric vertex, given by a "v" record.
type Vertex struct {
	X, Y, Z float32
}

// VertexFromVec3 converts a vector to a Vertex.
func VertexFromVec3(v mgl32.Vec3) Vertex {
	return Vertex{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 returns the position of the vertex as a vector.
func (v Vertex) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// WriteOBJ writes the vertex as "v x y z".
// This implements the [Element] interface.
func (v Vertex) WriteOBJ(w io.Writer) error {
	_, err := fmt.Fprintf(w, "v %s %s %s",
		float.Format(v.X), float.Format(v.Y), float.Format(v.Z))
	return err
}

// Normal is a vertex normal, given by a "vn" record.
// Normals in OBJ files are not required to have unit length.
type Normal struct {
	X, Y, Z float32
}

// NormalFromVec3 converts a vector to a Normal.
func NormalFromVec3(v mgl32.Vec3) Normal {
	return Normal{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 returns the direction of the normal as a vector.
func (n Normal) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{n.X, n.Y, n.Z}
}

// Normalize returns the normal scaled to unit length.
// The zero vector is returned unchanged.
func (n Normal) Normalize() Normal {
	v := n.Vec3()
	if v.LenSqr() == 0 {
		return n
	}
	return NormalFromVec3(v.Normalize())
}

// WriteOBJ writes the normal as "vn x y z".
// This implements the [Element] interface.
func (n Normal) WriteOBJ(w io.Writer) error {
	_, err := fmt.Fprintf(w, "vn %s %s %s",
		float.Format(n.X), float.Format(n.Y), float.Format(n.Z))
	return err
}

// TexCoord is a texture coordinate, given by a "vt" record.
// The third component W is optional.
type TexCoord struct {
	U, V float32
	W    optional.Float32
}

// WriteOBJ writes the texture coordinate as "vt u v" or "vt u v w".
// This implements the [Element] interface.
func (t TexCoord) WriteOBJ(w io.Writer) error {
	var err error
	if tw, ok := t.W.Get(); ok {
		_, err = fmt.Fprintf(w, "vt %s %s %s",
			float.Format(t.U), float.Format(t.V), float.Format(tw))
	} else {
		_, err = fmt.Fprintf(w, "vt %s %s",
			float.Format(t.U), float.Format(t.V))
	}
	return err
}

func (t TexCoord) String() string {
	return fmt.Sprintf("TexCoord{U: %g, V: %g, W: %s}", t.U, t.V, t.W)
}
