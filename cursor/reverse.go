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

// ReverseIterator is a mutable iterator that
// walks its storage backwards. It wraps a
// forward position, its base, and refers to
// the element just before it, so that
// rbegin().Base() == end().
type ReverseIterator[T any] struct {
	p pos[T]
}

// Reverse returns the ReverseIterator whose base is it.
func Reverse[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{it.p}
}

// Base returns the underlying forward iterator,
// which is one position past the element it refers to.
func (it ReverseIterator[T]) Base() Iterator[T] { return Iterator[T]{it.p} }

// Get returns the element it refers to.
func (it ReverseIterator[T]) Get() T { return *it.p.ref(-1) }

// Ptr returns a pointer to the element it refers to.
func (it ReverseIterator[T]) Ptr() *T { return it.p.ref(-1) }

// Set stores v in the element it refers to.
func (it ReverseIterator[T]) Set(v T) { *it.p.ref(-1) = v }

// At returns the element n positions after it,
// which is n positions earlier in storage.
func (it ReverseIterator[T]) At(n int) T { return *it.p.ref(-1 - n) }

func (it ReverseIterator[T]) Next() ReverseIterator[T]     { return ReverseIterator[T]{it.p.step(-1)} }
func (it ReverseIterator[T]) Prev() ReverseIterator[T]     { return ReverseIterator[T]{it.p.step(1)} }
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] { return ReverseIterator[T]{it.p.step(-n)} }
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return ReverseIterator[T]{it.p.step(n)} }
func (it *ReverseIterator[T]) Inc()                        { it.p = it.p.step(-1) }
func (it *ReverseIterator[T]) Dec()                        { it.p = it.p.step(1) }
func (it *ReverseIterator[T]) Advance(n int)               { it.p = it.p.step(-n) }

// Diff returns it - o, measured in the
// direction of travel.
func (it ReverseIterator[T]) Diff(o ReverseIterator[T]) int { return o.p.diff(it.p) }

func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool        { return it.p.equal(o.p) }
func (it ReverseIterator[T]) Compare(o ReverseIterator[T]) int       { return o.p.cmp(it.p) }
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool         { return o.p.cmp(it.p) < 0 }
func (it ReverseIterator[T]) LessEqual(o ReverseIterator[T]) bool    { return o.p.cmp(it.p) <= 0 }
func (it ReverseIterator[T]) Greater(o ReverseIterator[T]) bool      { return o.p.cmp(it.p) > 0 }
func (it ReverseIterator[T]) GreaterEqual(o ReverseIterator[T]) bool { return o.p.cmp(it.p) >= 0 }

// IsNil returns whether it is the null iterator.
func (it ReverseIterator[T]) IsNil() bool { return it.p.null() }

// Const returns the ConstReverseIterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] { return ConstReverseIterator[T]{it.p} }

// ConstReverseIterator is a ReverseIterator that
// does not permit modification of the elements.
type ConstReverseIterator[T any] struct {
	p pos[T]
}

// ConstReverse returns the ConstReverseIterator whose base is it.
func ConstReverse[T any](it ConstIterator[T]) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.p}
}

// Base returns the underlying forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return ConstIterator[T]{it.p} }

// Get returns the element it refers to.
func (it ConstReverseIterator[T]) Get() T { return *it.p.ref(-1) }

// At returns the element n positions after it.
func (it ConstReverseIterator[T]) At(n int) T { return *it.p.ref(-1 - n) }

func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.p.step(-1)}
}

func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.p.step(1)}
}

func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.p.step(-n)}
}

func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.p.step(n)}
}

func (it *ConstReverseIterator[T]) Inc()          { it.p = it.p.step(-1) }
func (it *ConstReverseIterator[T]) Dec()          { it.p = it.p.step(1) }
func (it *ConstReverseIterator[T]) Advance(n int) { it.p = it.p.step(-n) }

func (it ConstReverseIterator[T]) Diff(o ConstReverseIterator[T]) int   { return o.p.diff(it.p) }
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return it.p.equal(o.p) }
func (it ConstReverseIterator[T]) Compare(o ConstReverseIterator[T]) int {
	return o.p.cmp(it.p)
}

func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool {
	return o.p.cmp(it.p) < 0
}

func (it ConstReverseIterator[T]) LessEqual(o ConstReverseIterator[T]) bool {
	return o.p.cmp(it.p) <= 0
}

func (it ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool {
	return o.p.cmp(it.p) > 0
}

func (it ConstReverseIterator[T]) GreaterEqual(o ConstReverseIterator[T]) bool {
	return o.p.cmp(it.p) >= 0
}

// IsNil returns whether it is the null iterator.
func (it ConstReverseIterator[T]) IsNil() bool { return it.p.null() }
