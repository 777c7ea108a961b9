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

	"golang.org/x/exp/slices"
)

// The element lists of Document, Object and Face share these helpers.
// Elements are pointers, so that removal by value means removal of
// that exact element.

func getAt[T any](list []*T, i int) (*T, error) {
	if i < 0 || i >= len(list) {
		return nil, rangeError(i, len(list))
	}
	return list[i], nil
}

func removeAt[T any](list []*T, i int) ([]*T, error) {
	if i < 0 || i >= len(list) {
		return list, rangeError(i, len(list))
	}
	return slices.Delete(list, i, i+1), nil
}

func removeItem[T any](list []*T, x *T) []*T {
	i := slices.Index(list, x)
	if i < 0 {
		return list
	}
	list, _ = removeAt(list, i)
	return list
}

func clearList[T any](list []*T) []*T {
	clear(list)
	return list[:0]
}

func rangeError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, n)
}
