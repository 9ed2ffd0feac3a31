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

package cursor

// Iterator is a mutable random-access iterator.
type Iterator[T any] struct {
	p pos[T]
}

// New returns an Iterator at offset off of buf.
// off may be len(buf).
func New[T any](buf []T, off int) Iterator[T] {
	return Iterator[T]{p: pos[T]{buf: buf, off: off}}
}

// Get returns the element it refers to.
func (it Iterator[T]) Get() T { return *it.p.ref(0) }

// Ptr returns a pointer to the element it refers to.
func (it Iterator[T]) Ptr() *T { return it.p.ref(0) }

// Set stores v in the element it refers to.
func (it Iterator[T]) Set(v T) { *it.p.ref(0) = v }

// At returns the element n positions after it
// (it[n]).
func (it Iterator[T]) At(n int) T { return *it.p.ref(n) }

// Next returns it+1.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.p.step(1)} }

// Prev returns it-1.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.p.step(-1)} }

// Add returns it+n.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.p.step(n)} }

// Sub returns it-n.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.p.step(-n)} }

// Inc moves it forward by one.
func (it *Iterator[T]) Inc() { it.p = it.p.step(1) }

// Dec moves it backward by one.
func (it *Iterator[T]) Dec() { it.p = it.p.step(-1) }

// Advance moves it by n (it += n).
func (it *Iterator[T]) Advance(n int) { it.p = it.p.step(n) }

// Diff returns it - o.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.p.diff(o.p) }

// Equal returns whether it and o refer to the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.p.equal(o.p) }

// Compare returns -1, 0 or 1 as it is before,
// at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) int { return it.p.cmp(o.p) }

func (it Iterator[T]) Less(o Iterator[T]) bool         { return it.p.cmp(o.p) < 0 }
func (it Iterator[T]) LessEqual(o Iterator[T]) bool    { return it.p.cmp(o.p) <= 0 }
func (it Iterator[T]) Greater(o Iterator[T]) bool      { return it.p.cmp(o.p) > 0 }
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return it.p.cmp(o.p) >= 0 }

// IsNil returns whether it is the null iterator.
func (it Iterator[T]) IsNil() bool { return it.p.null() }

// Const returns the ConstIterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.p} }

// ConstIterator is a random-access iterator
// that does not permit modification of the
// elements it refers to.
type ConstIterator[T any] struct {
	p pos[T]
}

// NewConst returns a ConstIterator at offset off of buf.
func NewConst[T any](buf []T, off int) ConstIterator[T] {
	return ConstIterator[T]{p: pos[T]{buf: buf, off: off}}
}

// Get returns the element it refers to.
func (it ConstIterator[T]) Get() T { return *it.p.ref(0) }

// At returns the element n positions after it.
func (it ConstIterator[T]) At(n int) T { return *it.p.ref(n) }

func (it ConstIterator[T]) Next() ConstIterator[T]      { return ConstIterator[T]{it.p.step(1)} }
func (it ConstIterator[T]) Prev() ConstIterator[T]      { return ConstIterator[T]{it.p.step(-1)} }
func (it ConstIterator[T]) Add(n int) ConstIterator[T]  { return ConstIterator[T]{it.p.step(n)} }
func (it ConstIterator[T]) Sub(n int) ConstIterator[T]  { return ConstIterator[T]{it.p.step(-n)} }
func (it *ConstIterator[T]) Inc()                       { it.p = it.p.step(1) }
func (it *ConstIterator[T]) Dec()                       { it.p = it.p.step(-1) }
func (it *ConstIterator[T]) Advance(n int)              { it.p = it.p.step(n) }
func (it ConstIterator[T]) Diff(o ConstIterator[T]) int { return it.p.diff(o.p) }

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool        { return it.p.equal(o.p) }
func (it ConstIterator[T]) Compare(o ConstIterator[T]) int       { return it.p.cmp(o.p) }
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool         { return it.p.cmp(o.p) < 0 }
func (it ConstIterator[T]) LessEqual(o ConstIterator[T]) bool    { return it.p.cmp(o.p) <= 0 }
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool      { return it.p.cmp(o.p) > 0 }
func (it ConstIterator[T]) GreaterEqual(o ConstIterator[T]) bool { return it.p.cmp(o.p) >= 0 }

// IsNil returns whether it is the null iterator.
func (it ConstIterator[T]) IsNil() bool { return it.p.null() }

// Const returns it.
func (it ConstIterator[T]) Const() ConstIterator[T] { return it }

// Index returns the offset of it
// from the start of its storage.
func (it ConstIterator[T]) Index() int { return it.p.off }

// In returns whether it refers into buf.
// Only the identity of the storage is compared,
// not the offset.
func (it ConstIterator[T]) In(buf []T) bool {
	return it.p.same(pos[T]{buf: buf})
}
