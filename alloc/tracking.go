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

package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/SnellerInc/containers"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tracking wraps another allocator and keeps
// a record of every live allocation. It can
// also be told to start failing, which makes
// it useful for exercising the failure paths
// of code that allocates.
//
// Tracking is safe for concurrent use.
type Tracking[T any] struct {
	// Logf, if non-nil, is used to log
	// allocations, deallocations and injected failures.
	Logf func(f string, args ...interface{})

	id    uuid.UUID
	inner Allocator[T]

	lock sync.Mutex
	live map[*T]int
	// zero-size element types share one base
	// address, so their allocations are kept
	// as a multiset of lengths instead
	shared []int
	sized  bool
	allocs int
	frees  int
	budget int
}

// NewTracking returns a Tracking allocator that
// obtains storage from inner, or from Heap
// if inner is nil.
func NewTracking[T any](inner Allocator[T]) *Tracking[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	var zero T
	return &Tracking[T]{
		id:     uuid.New(),
		inner:  inner,
		live:   make(map[*T]int),
		sized:  unsafe.Sizeof(zero) != 0,
		budget: -1,
	}
}

// String returns the identity of t and of
// the allocator it wraps, as used in log lines.
func (t *Tracking[T]) String() string {
	return fmt.Sprintf("tracking %s over %v", t.id, t.inner)
}

func (t *Tracking[T]) logf(f string, args ...interface{}) {
	if t.Logf != nil {
		t.Logf(f, args...)
	}
}

// FailAfter makes every allocation after
// the next n successful ones fail with
// containers.ErrAllocation. A negative n
// turns failure injection off.
func (t *Tracking[T]) FailAfter(n int) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.budget = n
}

// Allocate implements Allocator.Allocate.
func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.budget == 0 {
		t.logf("alloc %s: injected failure for %d elements", t, n)
		return nil, fmt.Errorf("%w: injected failure", containers.ErrAllocation)
	}
	buf, err := t.inner.Allocate(n)
	if err != nil {
		t.logf("alloc %s: %d elements: %s", t, n, err)
		return nil, err
	}
	if t.budget > 0 {
		t.budget--
	}
	t.allocs++
	if t.sized {
		t.live[unsafe.SliceData(buf)] = n
	} else {
		t.shared = append(t.shared, n)
	}
	t.logf("alloc %s: %d elements at %p", t, n, unsafe.SliceData(buf))
	return buf, nil
}

// Deallocate implements Allocator.Deallocate.
// It panics on storage that is not live.
func (t *Tracking[T]) Deallocate(buf []T) {
	if cap(buf) == 0 {
		return
	}
	base := unsafe.SliceData(buf)
	t.lock.Lock()
	n, ok := t.forget(buf)
	if !ok {
		t.lock.Unlock()
		panic(fmt.Sprintf("alloc: Deallocate of unknown storage %p (%d elements)", base, len(buf)))
	}
	t.frees++
	t.lock.Unlock()
	t.logf("free %s: %d elements at %p", t, n, base)
	t.inner.Deallocate(buf)
}

// forget removes buf from the live set and
// returns its recorded length.
func (t *Tracking[T]) forget(buf []T) (int, bool) {
	if t.sized {
		base := unsafe.SliceData(buf)
		n, ok := t.live[base]
		if ok {
			delete(t.live, base)
		}
		return n, ok
	}
	i := slices.Index(t.shared, len(buf))
	if i < 0 {
		return 0, false
	}
	t.shared = slices.Delete(t.shared, i, i+1)
	return len(buf), true
}

// MaxSize implements Allocator.MaxSize.
func (t *Tracking[T]) MaxSize() int { return t.inner.MaxSize() }

// Equal implements Allocator.Equal.
func (t *Tracking[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Tracking[T])
	return ok && o == t
}

// Live returns the number of allocations
// that have not been deallocated.
func (t *Tracking[T]) Live() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.live) + len(t.shared)
}

// Leaks returns the sizes, in elements,
// of the live allocations in ascending order.
func (t *Tracking[T]) Leaks() []int {
	t.lock.Lock()
	sizes := append(maps.Values(t.live), t.shared...)
	t.lock.Unlock()
	slices.Sort(sizes)
	return sizes
}

// Counts returns the total number of
// successful allocations and deallocations.
func (t *Tracking[T]) Counts() (allocs, frees int) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.allocs, t.frees
}
