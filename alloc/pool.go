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
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/SnellerInc/containers/ints"
	"github.com/google/uuid"
)

// Pool recycles storage through per-size-class
// free lists. Requests are rounded up to a power
// of two; the slice returned by Allocate has the
// requested length and the class capacity.
//
// A Pool may be shared by any number of containers
// and is safe for concurrent use.
type Pool[T any] struct {
	id      uuid.UUID
	classes [bits.UintSize]sync.Pool
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewPool returns an empty Pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{id: uuid.New()}
}

// Allocate implements Allocator.Allocate.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > p.MaxSize() {
		return nil, errTooLarge(n, p.MaxSize())
	}
	class := ints.Log2Ceil(uint(n))
	if v := p.classes[class].Get(); v != nil {
		p.hits.Add(1)
		buf := *(v.(*[]T))
		return buf[:n], nil
	}
	p.misses.Add(1)
	return make([]T, n, 1<<class), nil
}

// Deallocate implements Allocator.Deallocate.
// The storage is zeroed before it is recycled.
func (p *Pool[T]) Deallocate(buf []T) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		// not one of ours; let the GC have it
		return
	}
	buf = buf[:c]
	clear(buf)
	p.classes[ints.Log2Ceil(uint(c))].Put(&buf)
}

// MaxSize implements Allocator.MaxSize.
// It is the largest power of two not above MaxElems.
func (p *Pool[T]) MaxSize() int {
	return 1 << (bits.Len(uint(MaxElems[T]())) - 1)
}

// Equal implements Allocator.Equal.
func (p *Pool[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Pool[T])
	return ok && o == p
}

// String returns the identity of p.
func (p *Pool[T]) String() string { return "pool " + p.id.String() }

// Stats returns the number of allocations
// served from a free list and the number
// that had to allocate fresh storage.
func (p *Pool[T]) Stats() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}
