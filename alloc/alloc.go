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

// Package alloc defines the storage capability
// consumed by the growable containers, along
// with a handful of implementations.
//
// An Allocator hands out typed but unconstructed
// storage: every slot of a returned slice holds
// the zero value and is owned by the caller until
// it is handed back with Deallocate. Constructing
// and destroying elements within that storage is
// the container's business, not the allocator's.
package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/SnellerInc/containers"
)

// Allocator provides raw storage for elements of type T.
type Allocator[T any] interface {
	// Allocate returns storage for exactly n
	// elements (len(buf) == n), every slot holding
	// the zero value. It returns an error wrapping
	// containers.ErrAllocation if it cannot.
	// Allocate(0) returns (nil, nil).
	Allocate(n int) ([]T, error)
	// Deallocate returns storage previously
	// obtained from Allocate on an equal allocator.
	// The caller must not use buf afterwards.
	Deallocate(buf []T)
	// MaxSize returns the largest n for which
	// Allocate could possibly succeed.
	MaxSize() int
	// Equal returns whether storage allocated by
	// one of the allocators can be deallocated
	// by the other.
	Equal(other Allocator[T]) bool
}

// MaxElems returns the largest number of
// elements of type T that fit in the address space.
func MaxElems[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

func errTooLarge(n, max int) error {
	return fmt.Errorf("%w: %d elements exceeds max %d", containers.ErrAllocation, n, max)
}

// Heap allocates from the Go heap.
// All Heap values are interchangeable, and
// Deallocate leaves reclamation to the
// garbage collector.
type Heap[T any] struct{}

// Default returns the allocator used by
// containers that are not given one.
func Default[T any]() Allocator[T] { return Heap[T]{} }

// Allocate implements Allocator.Allocate.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > MaxElems[T]() {
		return nil, errTooLarge(n, MaxElems[T]())
	}
	return make([]T, n), nil
}

// Deallocate implements Allocator.Deallocate.
func (Heap[T]) Deallocate(buf []T) {}

// MaxSize implements Allocator.MaxSize.
func (Heap[T]) MaxSize() int { return MaxElems[T]() }

// String returns "heap".
func (Heap[T]) String() string { return "heap" }

// Equal implements Allocator.Equal.
func (Heap[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(Heap[T])
	return ok
}
