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
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ReaderOptions controls how OBJ data is read.
// A nil *ReaderOptions is equivalent to the zero value.
type ReaderOptions struct {
	// NormalizeText converts comment text and object names to Unicode
	// normalization form NFC.
	NormalizeText bool
}

// ReadFile reads the named OBJ file into a new Document.
func ReadFile(fname string, opt *ReaderOptions) (*Document, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	return Parse(fd, nil, opt)
}

// ParseString reads OBJ data from a string.  See [Parse] for the meaning
// of target.
func ParseString(s string, target *Document, opt *ReaderOptions) (*Document, error) {
	return Parse(strings.NewReader(s), target, opt)
}

// Parse reads OBJ data from r.
//
// If target is nil, a new Document is allocated.  Otherwise, the comments
// and objects of target are removed and the data is read into target.
// On success, the document is returned.
//
// Lines may end in "\n", "\r\n" or "\r".  Tokens are separated by ASCII
// white space.  Only comments, objects, vertices, texture coordinates,
// normals and faces are read; all other records are ignored.  Geometry which appears before the
// first "o" record is discarded.  Malformed numbers cause a
// [*MalformedFileError].  Errors reading from r are returned unchanged.
//
// If r implements [io.Closer], it is closed before Parse returns.
func Parse(r io.Reader, target *Document, opt *ReaderOptions) (doc *Document, err error) {
	if r == nil {
		return nil, ErrNilSource
	}
	if c, ok := r.(io.Closer); ok {
		defer func() {
			err2 := c.Close()
			if err == nil && err2 != nil {
				doc = nil
				err = err2
			}
		}()
	}

	if opt == nil {
		opt = &ReaderOptions{}
	}
	if target == nil {
		target = NewDocument()
	} else {
		target.ClearComments()
		target.ClearObjects()
	}

	p := &parser{
		doc: target,
		opt: opt,
	}
	br := bufio.NewReader(r)
	for {
		chunk, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if chunk != "" {
			for _, line := range splitLines(chunk) {
				p.lineNo++
				err = p.parseLine(line)
				if err != nil {
					return nil, err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	p.closeObject()

	return target, nil
}

// parser holds the state while the lines of an OBJ file are processed.
type parser struct {
	doc    *Document
	opt    *ReaderOptions
	cur    *Object
	lineNo int
}

// splitLines splits a chunk which ends in at most one "\n" into lines.
// Each of "\n", "\r" and "\r\n" terminates a line.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}

func (p *parser) parseLine(line string) error {
	line = strings.TrimFunc(line, isControlOrSpace)
	if line == "" {
		return nil
	}
	parts := strings.FieldsFunc(line, isSpace)
	if len(parts) < 2 {
		return nil
	}

	tag, args := parts[0], parts[1:]
	switch tag {
	case "#":
		p.doc.AddComment(NewComment(p.text(commentText(line))))
		return nil
	case "o":
		p.closeObject()
		p.cur = NewObject(p.text(args[0]))
		return nil
	}

	if p.cur == nil {
		return nil
	}
	var err error
	switch tag {
	case "v":
		var x []float32
		x, err = parseFloats(tag, args, 3)
		if err == nil {
			p.cur.AddVertex(&Vertex{X: x[0], Y: x[1], Z: x[2]})
		}
	case "vt":
		t := &TexCoord{}
		var x []float32
		switch {
		case len(args) >= 3:
			x, err = parseFloats(tag, args, 3)
			if err == nil {
				t.U, t.V = x[0], x[1]
				t.W.Set(x[2])
			}
		case len(args) == 2:
			x, err = parseFloats(tag, args, 2)
			if err == nil {
				t.U, t.V = x[0], x[1]
			}
		}
		if err == nil {
			p.cur.AddTexCoord(t)
		}
	case "vn":
		var x []float32
		x, err = parseFloats(tag, args, 3)
		if err == nil {
			p.cur.AddNormal(&Normal{X: x[0], Y: x[1], Z: x[2]})
		}
	case "f":
		face := &Face{indices: make([]*Index, 0, len(args))}
		for _, tok := range args {
			var idx *Index
			idx, err = parseIndex(tok)
			if err != nil {
				break
			}
			face.AddIndex(idx)
		}
		if err == nil {
			p.cur.AddFace(face)
		}
	}
	if err != nil {
		return &MalformedFileError{Line: p.lineNo, Err: err}
	}
	return nil
}

// closeObject appends the currently open object, if any, to the document.
func (p *parser) closeObject() {
	if p.cur != nil {
		p.doc.AddObject(p.cur)
		p.cur = nil
	}
}

func (p *parser) text(s string) string {
	if p.opt.NormalizeText {
		return norm.NFC.String(s)
	}
	return s
}

// commentText returns everything after the leading "#" token of a
// trimmed line, with the inner white space preserved.
func commentText(line string) string {
	i := strings.IndexFunc(line, isSpace)
	if i < 0 {
		return ""
	}
	return strings.TrimLeftFunc(line[i:], isSpace)
}

// isSpace reports whether r separates the tokens of a line.  Only ASCII
// white space counts; other Unicode spaces are part of a token.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isControlOrSpace reports whether r is removed from both ends of a line.
func isControlOrSpace(r rune) bool {
	return r <= ' '
}

func parseFloats(tag string, args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, &missingValuesError{Tag: tag, Want: n, Got: len(args)}
	}
	res := make([]float32, n)
	for i := range res {
		x, err := strconv.ParseFloat(args[i], 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		res[i] = float32(x)
	}
	return res, nil
}

// parseIndex converts one corner of an "f" record, of the form "v",
// "v/t", "v//n" or "v/t/n", to zero-based indices.
func parseIndex(tok string) (*Index, error) {
	fields := strings.Split(tok, "/")

	idx := &Index{}
	v, err := parseIndexValue(fields[0])
	if err != nil {
		return nil, err
	}
	idx.Vertex.Set(v)
	if len(fields) > 1 && fields[1] != "" {
		t, err := parseIndexValue(fields[1])
		if err != nil {
			return nil, err
		}
		idx.Texture.Set(t)
	}
	if len(fields) > 2 && fields[2] != "" {
		n, err := parseIndexValue(fields[2])
		if err != nil {
			return nil, err
		}
		idx.Normal.Set(n)
	}
	return idx, nil
}

func parseIndexValue(s string) (int, error) {
	k, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(k) - 1, nil
}
