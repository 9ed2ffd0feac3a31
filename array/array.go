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

// Package array implements a sequence whose
// length is fixed when it is created.
//
// An Array never reallocates: the address of
// its storage, and therefore every iterator
// and element pointer obtained from it, stays
// valid for the life of the Array.
package array

import (
	"fmt"

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/cursor"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Array is a sequence of exactly N elements of type T.
type Array[T any] struct {
	elems []T
}

// New returns an Array of n elements. The first
// len(vals) elements are copied from vals and
// the rest hold the zero value. It is an error
// for vals to hold more than n elements.
func New[T any](n int, vals ...T) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("array: %w: negative length %d", containers.ErrLength, n)
	}
	if len(vals) > n {
		return nil, fmt.Errorf("array: %w: %d initializers for %d elements", containers.ErrLength, len(vals), n)
	}
	a := &Array[T]{}
	if n > 0 {
		a.elems = make([]T, n)
		copy(a.elems, vals)
	}
	return a, nil
}

// Of returns an Array holding a copy of vals.
func Of[T any](vals ...T) *Array[T] {
	return &Array[T]{elems: slices.Clone(vals)}
}

// Size returns N.
func (a *Array[T]) Size() int { return len(a.elems) }

// MaxSize returns N; an Array cannot grow.
func (a *Array[T]) MaxSize() int { return len(a.elems) }

// Empty returns whether N is zero.
func (a *Array[T]) Empty() bool { return len(a.elems) == 0 }

// Data returns the storage of a.
// It is nil when N is zero.
func (a *Array[T]) Data() []T { return a.elems }

// At returns element i, or an error wrapping
// containers.ErrOutOfRange if i is not in [0, N).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.elems) {
		var zero T
		return zero, fmt.Errorf("array: %w", containers.OutOfRange(i, len(a.elems)))
	}
	return a.elems[i], nil
}

// Set stores v in element i, or returns an error
// wrapping containers.ErrOutOfRange.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("array: %w", containers.OutOfRange(i, len(a.elems)))
	}
	a.elems[i] = v
	return nil
}

// Index returns element i without a range check
// beyond the one the runtime performs: the caller
// must ensure i is in [0, N).
func (a *Array[T]) Index(i int) T { return a.elems[i] }

// Ref returns a pointer to element i.
// The caller must ensure i is in [0, N).
func (a *Array[T]) Ref(i int) *T { return &a.elems[i] }

// Front returns the first element.
// N must not be zero.
func (a *Array[T]) Front() T { return a.elems[0] }

// Back returns the last element.
// N must not be zero.
func (a *Array[T]) Back() T { return a.elems[len(a.elems)-1] }

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.elems {
		a.elems[i] = v
	}
}

// Swap exchanges the contents of a and other
// element by element. Both must have the same N.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.elems) != len(other.elems) {
		return fmt.Errorf("array: %w: swap of %d and %d elements", containers.ErrLength, len(a.elems), len(other.elems))
	}
	for i := range a.elems {
		a.elems[i], other.elems[i] = other.elems[i], a.elems[i]
	}
	return nil
}

// Clone returns a copy of a with its own storage.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{elems: slices.Clone(a.elems)}
}

func (a *Array[T]) Begin() cursor.Iterator[T] { return cursor.New(a.elems, 0) }
func (a *Array[T]) End() cursor.Iterator[T]   { return cursor.New(a.elems, len(a.elems)) }

func (a *Array[T]) CBegin() cursor.ConstIterator[T] { return cursor.NewConst(a.elems, 0) }
func (a *Array[T]) CEnd() cursor.ConstIterator[T]   { return cursor.NewConst(a.elems, len(a.elems)) }

func (a *Array[T]) RBegin() cursor.ReverseIterator[T] { return cursor.Reverse(a.End()) }
func (a *Array[T]) REnd() cursor.ReverseIterator[T]   { return cursor.Reverse(a.Begin()) }

func (a *Array[T]) CRBegin() cursor.ConstReverseIterator[T] { return cursor.ConstReverse(a.CEnd()) }
func (a *Array[T]) CREnd() cursor.ConstReverseIterator[T]   { return cursor.ConstReverse(a.CBegin()) }

// EqualFunc returns whether a and b hold
// the same number of elements and eq reports
// every corresponding pair as equal.
func (a *Array[T]) EqualFunc(b *Array[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.elems, b.elems, eq)
}

// CompareFunc compares a and b lexicographically with cmp.
func (a *Array[T]) CompareFunc(b *Array[T], cmp func(x, y T) int) int {
	return slices.CompareFunc(a.elems, b.elems, cmp)
}

// Equal returns whether a and b hold equal elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.elems, b.elems)
}

// Compare compares a and b lexicographically.
func Compare[T constraints.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.elems, b.elems)
}

// Sum64 returns the keyed digest of the contents of a.
//
// See also: containers.Sum64
func Sum64[T containers.Pointerless](a *Array[T], k0, k1 uint64) uint64 {
	return containers.Sum64(k0, k1, a.elems)
}
