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

package memfile

import "io"

// MemFile is a temporary in-memory file.
//
// This type implements the [io.ReadWriter] and [io.Closer] interfaces.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Offset is the current file offset.
	Offset int64

	// If ReadErr is non-nil, reads fail with this error once the
	// offset reaches FailAt.
	ReadErr error
	FailAt  int64

	// If WriteErr is non-nil, all writes fail with this error.
	WriteErr error

	// CloseErr is returned by Close.
	CloseErr error

	// Closed counts the calls to Close.
	Closed int
}

// New creates a new MemFile.
func New() *MemFile {
	return &MemFile{}
}

// FromString creates a new MemFile which contains the given data.
func FromString(s string) *MemFile {
	return &MemFile{Data: []byte(s)}
}

// Write writes data to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (n int, err error) {
	if f.WriteErr != nil {
		return 0, f.WriteErr
	}

	if f.Offset > int64(len(f.Data)) {
		// If the offset is beyond the current data length, extend the slice with zeros
		f.Data = append(f.Data, make([]byte, f.Offset-int64(len(f.Data)))...)
	}

	// If writing at the end, just append
	if f.Offset == int64(len(f.Data)) {
		f.Data = append(f.Data, p...)
		n = len(p)
	} else {
		// Otherwise, overwrite existing data
		n = copy(f.Data[f.Offset:], p)
		if n < len(p) {
			f.Data = append(f.Data, p[n:]...)
			n = len(p)
		}
	}

	f.Offset += int64(n)
	return n, nil
}

// Read reads data from the file.
// This implements the [io.Reader] interface.
func (f *MemFile) Read(p []byte) (n int, err error) {
	end := int64(len(f.Data))
	if f.ReadErr != nil {
		if f.Offset >= f.FailAt {
			return 0, f.ReadErr
		}
		end = min(end, f.FailAt)
	}

	if f.Offset >= end {
		return 0, io.EOF
	}
	n = copy(p, f.Data[f.Offset:end])
	f.Offset += int64(n)
	return n, nil
}

// Close records that the file was closed and returns CloseErr.
// This implements the [io.Closer] interface.
func (f *MemFile) Close() error {
	f.Closed++
	return f.CloseErr
}
