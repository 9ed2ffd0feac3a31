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

// Package vector implements a growable sequence
// stored in contiguous memory obtained from an
// injected allocator.
//
// # Storage
//
// A Vector owns a single allocation of Capacity()
// slots, of which the first Size() hold constructed
// elements. The remaining slots are raw: they hold
// the zero value and are never observed. Elements
// are constructed, copied, relocated and destroyed
// through the vector's elem.Traits, so element
// types that own resources can be stored safely
// and their hooks may fail.
//
// # Failure guarantees
//
// Every operation that can fail returns an error
// and leaves the vector in the state documented for
// it. Operations that only add storage or rebuild
// the vector from scratch (Reserve, ShrinkToFit,
// PushBack, EmplaceBack, Resize, the Assign family,
// Clone, and any insertion that reallocates) give the
// strong guarantee: on failure the vector is exactly
// as it was. Insertions that fit in the current
// capacity and erasures shift elements in place and
// give the basic guarantee: on failure the vector is
// valid and leaks nothing, but elements after the
// point of change may have been dropped. If the
// element traits declare a non-failing move, a failed
// in-place insertion restores the original contents.
// Swap, Move and MoveAssign cannot fail.
//
// # Growth
//
// When an insertion needs more room than Capacity(),
// the new capacity is max(Capacity()*factor, needed),
// where factor is 2 unless configured otherwise, and
// exactly the needed size when growing from zero.
//
// # Iterators
//
// Any reallocation invalidates every iterator.
// An in-place insertion or erasure invalidates the
// iterators at or after the point of change. Passing
// an iterator that does not refer into the vector's
// current storage to one of its methods returns an
// error wrapping containers.ErrInvalidIterator.
// For element types of size zero, storage is told
// apart by capacity alone, so an iterator left over
// from an allocation of the same capacity is accepted.
//
// A Vector is not safe for concurrent use.
package vector

import (
	"fmt"

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/alloc"
	"github.com/SnellerInc/containers/cursor"
	"github.com/SnellerInc/containers/elem"
	"github.com/SnellerInc/containers/ints"
)

// Vector is a growable sequence of T.
// The zero value is an empty vector that
// allocates from the Go heap.
type Vector[T any] struct {
	data   []T // len(data) is the capacity
	size   int
	alloc  alloc.Allocator[T]
	traits elem.Traits[T]

	growth  int
	initial int
	limit   int
}

// Option configures a Vector at construction.
type Option[T any] func(v *Vector[T])

// WithAllocator sets the allocator used for
// every allocation the vector makes.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// WithTraits sets the element lifecycle hooks.
func WithTraits[T any](t elem.Traits[T]) Option[T] {
	return func(v *Vector[T]) {
		v.traits = t
	}
}

// WithConfig applies c. The configuration is
// expected to have been validated; invalid
// values are ignored in favor of the defaults.
//
// InitialCapacity is the smallest capacity the
// vector allocates when it first grows on demand.
func WithConfig[T any](c containers.Config) Option[T] {
	return func(v *Vector[T]) {
		if c.Validate() != nil {
			return
		}
		v.growth = c.GrowthFactor
		v.initial = c.InitialCapacity
		v.limit = c.MaxSize
	}
}

// New returns an empty Vector.
// It does not allocate.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, o := range opts {
		o(v)
	}
	return v
}

// NewSize returns a Vector of n default-constructed elements.
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFill returns a Vector of n copies of val.
func NewFill[T any](n int, val T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.AssignN(n, val); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a Vector holding
// copies of the elements of vals.
func FromSlice[T any](vals []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.AssignValues(vals...); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a Vector holding copies
// of the elements in [first, last).
func FromRange[T any](first, last cursor.Position[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.AssignRange(first, last); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a heap-allocated Vector holding vals,
// copied with plain value semantics.
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	if err := v.AssignValues(vals...); err != nil {
		// the values already fit in memory
		panic(err)
	}
	return v
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.Default[T]()
	}
	return v.alloc
}

func (v *Vector[T]) factor() int {
	if v.growth < 2 {
		return containers.DefaultGrowthFactor
	}
	return v.growth
}

func (v *Vector[T]) fail(op string, err error) error {
	return fmt.Errorf("vector: %s: %w", op, err)
}

func elemErr(hook string, i int, err error) error {
	return &containers.ElementError{Op: hook, Index: i, Err: err}
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of elements
// the vector can hold without reallocating.
func (v *Vector[T]) Capacity() int { return len(v.data) }

// Empty returns whether Size() is zero.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest size the
// vector could ever reach.
func (v *Vector[T]) MaxSize() int {
	m := v.allocator().MaxSize()
	if v.limit > 0 {
		m = ints.Min(m, v.limit)
	}
	return m
}

// Allocator returns the allocator of v.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.allocator() }

// Traits returns the element traits of v.
func (v *Vector[T]) Traits() elem.Traits[T] { return v.traits }

// Data returns the live elements of v. The slice
// aliases the vector's storage and is invalidated
// along with its iterators. It is nil exactly
// when Capacity() is zero.
func (v *Vector[T]) Data() []T {
	return v.data[:v.size:v.size]
}

// At returns element i, or an error wrapping
// containers.ErrOutOfRange if i is not in [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, v.fail("at", containers.OutOfRange(i, v.size))
	}
	return v.data[i], nil
}

// Set stores val in element i, or returns an error
// wrapping containers.ErrOutOfRange. The previous
// value is overwritten, not destroyed.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.size {
		return v.fail("set", containers.OutOfRange(i, v.size))
	}
	v.data[i] = val
	return nil
}

// Index returns element i.
// The caller must ensure i is in [0, Size()).
func (v *Vector[T]) Index(i int) T { return v.data[:v.size][i] }

// Ref returns a pointer to element i.
// The caller must ensure i is in [0, Size()).
func (v *Vector[T]) Ref(i int) *T { return &v.data[:v.size][i] }

// Front returns the first element.
// The vector must not be empty.
func (v *Vector[T]) Front() T { return v.Index(0) }

// Back returns the last element.
// The vector must not be empty.
func (v *Vector[T]) Back() T { return v.Index(v.size - 1) }

func (v *Vector[T]) Begin() cursor.Iterator[T] { return cursor.New(v.data, 0) }
func (v *Vector[T]) End() cursor.Iterator[T]   { return cursor.New(v.data, v.size) }

func (v *Vector[T]) CBegin() cursor.ConstIterator[T] { return cursor.NewConst(v.data, 0) }
func (v *Vector[T]) CEnd() cursor.ConstIterator[T]   { return cursor.NewConst(v.data, v.size) }

func (v *Vector[T]) RBegin() cursor.ReverseIterator[T] { return cursor.Reverse(v.End()) }
func (v *Vector[T]) REnd() cursor.ReverseIterator[T]   { return cursor.Reverse(v.Begin()) }

func (v *Vector[T]) CRBegin() cursor.ConstReverseIterator[T] { return cursor.ConstReverse(v.CEnd()) }
func (v *Vector[T]) CREnd() cursor.ConstReverseIterator[T]   { return cursor.ConstReverse(v.CBegin()) }

// offset returns the index of pos, which must
// be in [0, limit] of the current storage
func (v *Vector[T]) offset(pos cursor.Position[T], limit int) (int, error) {
	c := pos.Const()
	if !c.In(v.data) || c.Index() < 0 || c.Index() > limit {
		return 0, containers.ErrInvalidIterator
	}
	return c.Index(), nil
}
