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
	"strconv"
)

var (
	// ErrNilSource is returned by [Parse] when no reader is given.
	ErrNilSource = errors.New("no OBJ source given")

	// ErrNoVertex is returned when a face index without a vertex index
	// is written.
	ErrNoVertex = errors.New("face index has no vertex index")

	// ErrIndexRange is wrapped by the errors returned for out-of-range
	// positions in the element lists of a document.
	ErrIndexRange = errors.New("index out of range")
)

// MalformedFileError indicates that the OBJ data could not be parsed.
type MalformedFileError struct {
	Line int
	Err  error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "malformed OBJ data" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// missingValuesError is used when a record has fewer values than its
// tag requires.
type missingValuesError struct {
	Tag       string
	Want, Got int
}

func (err *missingValuesError) Error() string {
	return strconv.Quote(err.Tag) + " needs " + strconv.Itoa(err.Want) +
		" values, got " + strconv.Itoa(err.Got)
}
