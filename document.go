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
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
)

// Document is the contents of an OBJ file: a list of comments and a list
// of objects.
type Document struct {
	comments []*Comment
	objects  []*Object
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Comments returns a copy of the comment list.
func (d *Document) Comments() []*Comment {
	return slices.Clone(d.comments)
}

// Comment returns the comment at position i.
func (d *Document) Comment(i int) (*Comment, error) {
	return getAt(d.comments, i)
}

// AddComment appends a comment to the document.
func (d *Document) AddComment(c *Comment) {
	d.comments = append(d.comments, c)
}

// RemoveCommentAt removes the comment at position i.
func (d *Document) RemoveCommentAt(i int) error {
	var err error
	d.comments, err = removeAt(d.comments, i)
	return err
}

// RemoveComment removes c from the document, if present.
func (d *Document) RemoveComment(c *Comment) {
	d.comments = removeItem(d.comments, c)
}

// ClearComments removes all comments from the document.
func (d *Document) ClearComments() {
	d.comments = clearList(d.comments)
}

// Objects returns a copy of the object list.
func (d *Document) Objects() []*Object {
	return slices.Clone(d.objects)
}

// Object returns the object at position i.
func (d *Document) Object(i int) (*Object, error) {
	return getAt(d.objects, i)
}

// ObjectByName returns the first object with the given name.
// Objects without a name never match.  If no object matches,
// the second return value is false.
func (d *Document) ObjectByName(name string) (*Object, bool) {
	for _, o := range d.objects {
		if n, ok := o.Name.Get(); ok && n == name {
			return o, true
		}
	}
	return nil, false
}

// AddObject appends an object to the document.
func (d *Document) AddObject(o *Object) {
	d.objects = append(d.objects, o)
}

// RemoveObjectAt removes the object at position i.
func (d *Document) RemoveObjectAt(i int) error {
	var err error
	d.objects, err = removeAt(d.objects, i)
	return err
}

// RemoveObject removes o from the document, if present.
func (d *Document) RemoveObject(o *Object) {
	d.objects = removeItem(d.objects, o)
}

// ClearObjects removes all objects from the document.
func (d *Document) ClearObjects() {
	d.objects = clearList(d.objects)
}

// WriteOBJ writes the document in OBJ format.
//
// All comments are written first, followed by an empty line, and then all
// objects, each followed by an empty line.  Comments which were
// interspersed with the geometry in the original file thus move to the
// top.
// This implements the [Element] interface.
func (d *Document) WriteOBJ(w io.Writer) error {
	if len(d.comments) > 0 {
		for _, c := range d.comments {
			err := writeLine(w, c)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n")
		if err != nil {
			return err
		}
	}
	if len(d.objects) > 0 {
		for _, o := range d.objects {
			err := writeLine(w, o)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n")
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the document to the named file.
// If the file exists, it is truncated.
func (d *Document) WriteFile(fname string) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	w := bufio.NewWriter(fd)
	err = d.WriteOBJ(w)
	if err != nil {
		return err
	}
	return w.Flush()
}

func (d *Document) String() string {
	return fmt.Sprintf("Document{%d comments, %d objects}", len(d.comments), len(d.objects))
}
