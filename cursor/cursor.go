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

// Package cursor implements random-access
// iterators over contiguous storage.
//
// There are four iterator kinds: Iterator,
// ConstIterator, ReverseIterator and
// ConstReverseIterator. All of them are thin
// views over a single position type; they
// differ only in whether the element can be
// modified through them and in which direction
// arithmetic moves them.
//
// Iterators are values. Methods such as Next
// and Add return a new iterator; Inc, Dec and
// Advance update the receiver in place.
//
// An iterator never owns the storage it refers to.
// When a container reallocates, the iterators it
// handed out keep referring to the old storage
// and must not be used any more; when it shifts
// elements in place, iterators at or after the
// point of change refer to different elements.
//
// The zero value of every iterator kind is the
// null iterator. Null iterators compare equal to
// each other and must not be dereferenced.
package cursor

import (
	"unsafe"

	"github.com/SnellerInc/containers"
)

// pos is the arithmetic core shared by all
// iterator kinds: a buffer and an offset into it.
// The offset may equal len(buf) (one past the end).
type pos[T any] struct {
	buf []T
	off int
}

func (p pos[T]) step(n int) pos[T] {
	return pos[T]{buf: p.buf, off: p.off + n}
}

// ref returns the element at p+delta
func (p pos[T]) ref(delta int) *T {
	return &p.buf[p.off+delta]
}

func (p pos[T]) diff(o pos[T]) int {
	return p.off - o.off
}

// same reports whether p and o refer to the same
// storage. Every allocation of a zero-size type has
// the same address, so for those the lengths must
// match as well.
func (p pos[T]) same(o pos[T]) bool {
	if unsafe.SliceData(p.buf) != unsafe.SliceData(o.buf) {
		return false
	}
	var zero T
	return unsafe.Sizeof(zero) != 0 || len(p.buf) == len(o.buf)
}

func (p pos[T]) equal(o pos[T]) bool {
	return p.same(o) && p.off == o.off
}

// cmp orders positions within one buffer;
// comparing positions of different buffers
// is meaningless.
func (p pos[T]) cmp(o pos[T]) int {
	switch {
	case p.off < o.off:
		return -1
	case p.off > o.off:
		return 1
	default:
		return 0
	}
}

func (p pos[T]) null() bool {
	return p.buf == nil && p.off == 0
}

// Position is implemented by the forward
// iterator kinds. Containers accept a Position
// wherever an operation needs a location.
type Position[T any] interface {
	Const() ConstIterator[T]
}

// Span returns the elements in [first, last).
// The result aliases the underlying storage.
// It returns an error wrapping
// containers.ErrInvalidIterator if the iterators
// refer to different storage or last precedes first.
func Span[T any](first, last ConstIterator[T]) ([]T, error) {
	if !first.p.same(last.p) || first.p.off > last.p.off ||
		first.p.off < 0 || last.p.off > len(last.p.buf) {
		return nil, containers.ErrInvalidIterator
	}
	return first.p.buf[first.p.off:last.p.off:last.p.off], nil
}
