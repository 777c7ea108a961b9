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
	"errors"
	"testing"
)

func TestDocumentComments(t *testing.T) {
	doc := NewDocument()
	a := NewComment("a")
	b := NewComment("b")
	doc.AddComment(a)
	doc.AddComment(b)
	doc.AddComment(a)

	if n := len(doc.Comments()); n != 3 {
		t.Fatalf("expected 3 comments, got %d", n)
	}
	c, err := doc.Comment(1)
	if err != nil || c != b {
		t.Errorf("Comment(1) = %v, %v", c, err)
	}

	// removal by identity only removes the first occurrence
	doc.RemoveComment(a)
	got := doc.Comments()
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("unexpected comments after removal: %v", got)
	}

	// an equal but distinct comment is not removed
	doc.RemoveComment(NewComment("b"))
	if n := len(doc.Comments()); n != 2 {
		t.Errorf("removal of an absent comment changed the document")
	}

	err = doc.RemoveCommentAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := doc.Comment(0); c != a {
		t.Errorf("wrong comment removed")
	}

	doc.ClearComments()
	if n := len(doc.Comments()); n != 0 {
		t.Errorf("%d comments left after clear", n)
	}
}

func TestDocumentObjects(t *testing.T) {
	doc := NewDocument()
	first := NewObject("x")
	second := NewObject("x")
	unnamed := &Object{}
	doc.AddObject(unnamed)
	doc.AddObject(first)
	doc.AddObject(second)

	o, ok := doc.ObjectByName("x")
	if !ok || o != first {
		t.Errorf("ObjectByName returned %v, %t", o, ok)
	}
	o, ok = doc.ObjectByName("missing")
	if ok || o != nil {
		t.Errorf("ObjectByName found %v for a missing name", o)
	}
	if _, ok := doc.ObjectByName(""); ok {
		t.Error("an unnamed object matched the empty name")
	}

	doc.RemoveObject(first)
	if o, _ := doc.ObjectByName("x"); o != second {
		t.Error("lookup after removal did not find the second object")
	}

	err := doc.RemoveObjectAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if o, _ := doc.Object(0); o != second {
		t.Error("wrong object removed")
	}

	doc.ClearObjects()
	if n := len(doc.Objects()); n != 0 {
		t.Errorf("%d objects left after clear", n)
	}
}

func TestSnapshot(t *testing.T) {
	doc := NewDocument()
	doc.AddObject(NewObject("a"))
	objs := doc.Objects()
	objs[0] = NewObject("b")
	if _, ok := doc.ObjectByName("a"); !ok {
		t.Error("modifying the snapshot changed the document")
	}

	f := NewFace(NewIndex(0))
	indices := f.Indices()
	indices[0] = NewIndex(9)
	if idx, _ := f.Index(0); idx.Vertex != NewIndex(0).Vertex {
		t.Error("modifying the snapshot changed the face")
	}
}

func TestIndexRange(t *testing.T) {
	doc := NewDocument()
	doc.AddComment(NewComment("c"))
	o := NewObject("o")
	o.AddVertex(&Vertex{})
	doc.AddObject(o)
	f := NewFace(NewIndex(0), NewIndex(1))
	o.AddFace(f)

	calls := map[string]func() error{
		"Comment(-1)":          func() error { _, err := doc.Comment(-1); return err },
		"Comment(1)":           func() error { _, err := doc.Comment(1); return err },
		"Object(5)":            func() error { _, err := doc.Object(5); return err },
		"RemoveCommentAt(1)":   func() error { return doc.RemoveCommentAt(1) },
		"RemoveObjectAt(-1)":   func() error { return doc.RemoveObjectAt(-1) },
		"Vertex(1)":            func() error { _, err := o.Vertex(1); return err },
		"TexCoord(0)":          func() error { _, err := o.TexCoord(0); return err },
		"Normal(0)":            func() error { _, err := o.Normal(0); return err },
		"Face(1)":              func() error { _, err := o.Face(1); return err },
		"RemoveVertexAt(1)":    func() error { return o.RemoveVertexAt(1) },
		"RemoveTexCoordAt(0)":  func() error { return o.RemoveTexCoordAt(0) },
		"RemoveNormalAt(0)":    func() error { return o.RemoveNormalAt(0) },
		"RemoveFaceAt(1)":      func() error { return o.RemoveFaceAt(1) },
		"Index(2)":             func() error { _, err := f.Index(2); return err },
		"RemoveIndexAt(2)":     func() error { return f.RemoveIndexAt(2) },
		"RemoveIndexAt(-1)":    func() error { return f.RemoveIndexAt(-1) },
		"ObjectAfterClear(0)":  func() error { doc.ClearObjects(); _, err := doc.Object(0); return err },
		"CommentAfterClear(0)": func() error { doc.ClearComments(); _, err := doc.Comment(0); return err },
	}
	for name, call := range calls {
		err := call()
		if !errors.Is(err, ErrIndexRange) {
			t.Errorf("%s: expected ErrIndexRange, got %v", name, err)
		}
	}

	if n := f.NumIndices(); n != 2 {
		t.Errorf("failed removals changed the face: %d corners", n)
	}
	if n := len(o.Vertices()); n != 1 {
		t.Errorf("failed removals changed the object: %d vertices", n)
	}
}

func TestObjectLists(t *testing.T) {
	o := NewObject("o")
	v := &Vertex{1, 2, 3}
	tc := &TexCoord{U: 1}
	n := &Normal{0, 1, 0}
	f := NewFace(NewIndex(0))

	o.AddVertex(v)
	o.AddTexCoord(tc)
	o.AddNormal(n)
	o.AddFace(f)
	if len(o.Vertices()) != 1 || len(o.TexCoords()) != 1 || len(o.Normals()) != 1 || len(o.Faces()) != 1 {
		t.Fatalf("unexpected contents: %s", o)
	}

	// removing elements which are not present is a no-op
	o.RemoveVertex(&Vertex{1, 2, 3})
	o.RemoveTexCoord(&TexCoord{U: 1})
	o.RemoveNormal(&Normal{0, 1, 0})
	o.RemoveFace(NewFace(NewIndex(0)))
	if len(o.Vertices()) != 1 || len(o.TexCoords()) != 1 || len(o.Normals()) != 1 || len(o.Faces()) != 1 {
		t.Fatalf("removal of absent elements changed %s", o)
	}

	o.RemoveVertex(v)
	o.RemoveTexCoord(tc)
	o.RemoveNormal(n)
	o.RemoveFace(f)
	if len(o.Vertices()) != 0 || len(o.TexCoords()) != 0 || len(o.Normals()) != 0 || len(o.Faces()) != 0 {
		t.Fatalf("removal failed: %s", o)
	}

	o.AddVertex(v)
	o.AddTexCoord(tc)
	o.AddNormal(n)
	o.AddFace(f)
	o.ClearVertices()
	o.ClearTexCoords()
	o.ClearNormals()
	o.ClearFaces()
	if len(o.Vertices()) != 0 || len(o.TexCoords()) != 0 || len(o.Normals()) != 0 || len(o.Faces()) != 0 {
		t.Fatalf("clear failed: %s", o)
	}
}

func TestFaceIndices(t *testing.T) {
	a, b, c := NewIndex(0), NewIndex(1), NewIndex(2)
	f := NewFace(a, b)
	f.AddIndex(c)
	if f.NumIndices() != 3 {
		t.Fatalf("expected 3 corners, got %d", f.NumIndices())
	}

	f.RemoveIndex(NewIndex(1))
	if f.NumIndices() != 3 {
		t.Error("removal of an absent index changed the face")
	}
	f.RemoveIndex(b)
	if got := f.Indices(); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("unexpected corners: %v", got)
	}
	if err := f.RemoveIndexAt(1); err != nil {
		t.Fatal(err)
	}
	f.ClearIndices()
	if f.NumIndices() != 0 {
		t.Error("clear failed")
	}
}
