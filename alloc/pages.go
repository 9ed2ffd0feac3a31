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
	"github.com/SnellerInc/containers/ints"
	"github.com/google/uuid"
)

// Pages allocates each request as its own
// anonymous memory mapping outside of the Go heap,
// and unmaps it on Deallocate. Because the garbage
// collector does not scan that memory, Pages only
// serves element types without pointers.
//
// Pages is safe for concurrent use.
type Pages[T containers.Pointerless] struct {
	id uuid.UUID

	lock   sync.Mutex
	maps   map[*T][]byte
	mapped int
}

// NewPages returns a Pages allocator.
func NewPages[T containers.Pointerless]() *Pages[T] {
	return &Pages[T]{
		id:   uuid.New(),
		maps: make(map[*T][]byte),
	}
}

// Allocate implements Allocator.Allocate.
func (p *Pages[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > p.MaxSize() {
		return nil, errTooLarge(n, p.MaxSize())
	}
	var zero T
	length := ints.AlignUp(uint(n)*uint(unsafe.Sizeof(zero)), uint(pageSize()))
	mem, err := mapPages(int(length))
	if err != nil {
		return nil, fmt.Errorf("%w: mapping %d bytes: %s", containers.ErrAllocation, length, err)
	}
	buf := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n)
	p.lock.Lock()
	p.maps[unsafe.SliceData(buf)] = mem
	p.mapped += len(mem)
	p.lock.Unlock()
	return buf, nil
}

// Deallocate implements Allocator.Deallocate.
// It panics if buf was not returned by Allocate
// or has already been deallocated.
func (p *Pages[T]) Deallocate(buf []T) {
	if cap(buf) == 0 {
		return
	}
	base := unsafe.SliceData(buf)
	p.lock.Lock()
	mem, ok := p.maps[base]
	if !ok {
		p.lock.Unlock()
		panic("alloc: bad pointer passed to Pages.Deallocate")
	}
	delete(p.maps, base)
	p.mapped -= len(mem)
	p.lock.Unlock()
	if err := unmapPages(mem); err != nil {
		panic("alloc: unmapping pages: " + err.Error())
	}
}

// MaxSize implements Allocator.MaxSize.
func (p *Pages[T]) MaxSize() int {
	// leave room for rounding up to a page
	var zero T
	return (MaxElems[byte]() - pageSize()) / int(unsafe.Sizeof(zero))
}

// Equal implements Allocator.Equal.
func (p *Pages[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Pages[T])
	return ok && o == p
}

// String returns the identity of p.
func (p *Pages[T]) String() string { return "pages " + p.id.String() }

// Mapped returns the number of bytes
// currently mapped by p.
func (p *Pages[T]) Mapped() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mapped
}
