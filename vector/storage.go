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

package vector

import (
	"fmt"
	"unsafe"

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/ints"
	"golang.org/x/exp/slices"
)

// filler constructs the j-th new element in *dst.
// On error *dst must be left raw.
type filler[T any] func(j int, dst *T) error

// grow returns the capacity to allocate
// when the vector must hold need elements
func (v *Vector[T]) grow(need int) int {
	limit := v.MaxSize()
	c := ints.Grow(len(v.data), need, v.factor(), limit)
	if len(v.data) == 0 && c < v.initial {
		c = ints.Min(v.initial, limit)
	}
	return c
}

// room checks that k more elements fit under MaxSize
func (v *Vector[T]) room(k int) error {
	if k > v.MaxSize()-v.size {
		return containers.TooLong(v.size+k, v.MaxSize())
	}
	return nil
}

func (v *Vector[T]) destroy(s []T) {
	for i := range s {
		v.traits.Release(&s[i])
	}
}

func (v *Vector[T]) release(buf []T) {
	if buf != nil {
		v.allocator().Deallocate(buf)
	}
}

// relocate moves src into dst; only used
// when the traits declare that moves cannot fail
func (v *Vector[T]) relocate(dst, src []T) {
	for i := range src {
		if err := v.traits.MoveTo(&dst[i], &src[i]); err != nil {
			panic(fmt.Sprintf("vector: move declared non-failing returned %v", err))
		}
	}
}

// copyInto copy-constructs src into dst; on failure
// the elements already built in dst are destroyed.
// base is the index of src[0], for error reporting.
func (v *Vector[T]) copyInto(dst, src []T, base int) error {
	for i := range src {
		if err := v.traits.CopyTo(&dst[i], &src[i]); err != nil {
			var zero T
			dst[i] = zero
			v.destroy(dst[:i])
			return elemErr("copy", base+i, err)
		}
	}
	return nil
}

// rebuild moves the vector into new storage of
// newcap slots while constructing k new elements
// at position p. The new elements are built first,
// then the old ones are migrated around them: by
// move if moves cannot fail, by copy otherwise.
// On failure the vector is unchanged.
func (v *Vector[T]) rebuild(newcap, p, k int, fill filler[T]) error {
	buf, err := v.allocator().Allocate(newcap)
	if err != nil {
		return err
	}
	abort := func(built ...[]T) {
		for _, s := range built {
			v.destroy(s)
		}
		v.release(buf)
	}
	s := v.size
	for j := 0; j < k; j++ {
		if err := fill(j, &buf[p+j]); err != nil {
			var zero T
			buf[p+j] = zero
			abort(buf[p : p+j])
			return err
		}
	}
	if v.traits.MoveCannotFail() {
		v.relocate(buf[:p], v.data[:p])
		v.relocate(buf[p+k:s+k], v.data[p:s])
	} else {
		if err := v.copyInto(buf[:p], v.data[:p], 0); err != nil {
			abort(buf[p : p+k])
			return err
		}
		if err := v.copyInto(buf[p+k:s+k], v.data[p:s], p); err != nil {
			abort(buf[:p+k])
			return err
		}
		v.destroy(v.data[:s])
	}
	old := v.data
	v.data = buf
	v.size = s + k
	v.release(old)
	return nil
}

// Reserve ensures Capacity() is at least n.
// It never reduces the capacity. If it reallocates,
// all iterators are invalidated. On failure the
// vector is unchanged; a request above MaxSize()
// returns an error wrapping containers.ErrLength.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	if n > v.MaxSize() {
		return v.fail("reserve", containers.TooLong(n, v.MaxSize()))
	}
	if err := v.rebuild(n, v.size, 0, nil); err != nil {
		return v.fail("reserve", err)
	}
	return nil
}

// ShrinkToFit reduces Capacity() to Size(),
// releasing the storage entirely when the vector
// is empty. If it reallocates, all iterators are
// invalidated. On failure the vector is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.data) == v.size {
		return nil
	}
	if v.size == 0 {
		v.release(v.data)
		v.data = nil
		return nil
	}
	if err := v.rebuild(v.size, v.size, 0, nil); err != nil {
		return v.fail("shrink_to_fit", err)
	}
	return nil
}

// overlaps returns whether s shares memory
// with the storage of v
func (v *Vector[T]) overlaps(s []T) bool {
	if len(s) == 0 || len(v.data) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))
	hi := lo + uintptr(len(v.data))*size
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return p >= lo && p < hi
}

// detach returns src, or a shallow copy of it
// if it refers into the storage of v and would
// otherwise change under the operation reading it
func (v *Vector[T]) detach(src []T) []T {
	if v.overlaps(src) {
		return slices.Clone(src)
	}
	return src
}
