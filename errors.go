// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package containers

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked
	// element access outside of [0, size).
	ErrOutOfRange = errors.New("index out of range")
	// ErrLength is returned when a requested
	// size or capacity exceeds the maximum
	// the allocator can represent.
	ErrLength = errors.New("length exceeds max size")
	// ErrAllocation is returned when an allocator
	// could not satisfy a request.
	ErrAllocation = errors.New("allocation failed")
	// ErrInvalidIterator is returned when a position
	// passed to a container does not refer into
	// the live range of that container.
	ErrInvalidIterator = errors.New("iterator does not belong to container")
)

// ElementError is the error returned when
// an element lifecycle hook fails during
// a container operation. The container
// never interprets Err; it restores its
// documented state and hands Err back.
type ElementError struct {
	// Op is the container operation that failed.
	Op string
	// Index is the slot that was being constructed.
	Index int
	// Err is the error returned by the hook.
	Err error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s: element %d: %s", e.Op, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// OutOfRange returns an error wrapping ErrOutOfRange
// that describes the offending index.
func OutOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, size)
}

// TooLong returns an error wrapping ErrLength
// that describes the offending request.
func TooLong(n, max int) error {
	return fmt.Errorf("%w: %d > %d", ErrLength, n, max)
}
