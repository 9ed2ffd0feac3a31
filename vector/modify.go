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

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/cursor"
	"github.com/SnellerInc/containers/ints"
)

func (v *Vector[T]) copyOf(val *T, base int) filler[T] {
	return func(j int, dst *T) error {
		if err := v.traits.CopyTo(dst, val); err != nil {
			return elemErr("copy", base+j, err)
		}
		return nil
	}
}

func (v *Vector[T]) copyEach(src []T, base int) filler[T] {
	return func(j int, dst *T) error {
		if err := v.traits.CopyTo(dst, &src[j]); err != nil {
			return elemErr("copy", base+j, err)
		}
		return nil
	}
}

func (v *Vector[T]) construct(base int) filler[T] {
	return func(j int, dst *T) error {
		if err := v.traits.Construct(dst); err != nil {
			return elemErr("construct", base+j, err)
		}
		return nil
	}
}

func (v *Vector[T]) emplacer(init func(dst *T) error, base int) filler[T] {
	if init == nil {
		return v.construct(base)
	}
	return func(j int, dst *T) error {
		if err := init(dst); err != nil {
			return elemErr("emplace", base+j, err)
		}
		return nil
	}
}

func negative(n int) error {
	return fmt.Errorf("%w: negative count %d", containers.ErrLength, n)
}

// appendN constructs k elements at the end
func (v *Vector[T]) appendN(k int, fill filler[T]) error {
	if err := v.room(k); err != nil {
		return err
	}
	need := v.size + k
	if need > len(v.data) {
		return v.rebuild(v.grow(need), v.size, k, fill)
	}
	s := v.size
	for j := 0; j < k; j++ {
		if err := fill(j, &v.data[s+j]); err != nil {
			var zero T
			v.data[s+j] = zero
			v.destroy(v.data[s : s+j])
			return err
		}
	}
	v.size = need
	return nil
}

// insertAt constructs k elements before index p
func (v *Vector[T]) insertAt(p, k int, fill filler[T]) error {
	if p == v.size {
		return v.appendN(k, fill)
	}
	if err := v.room(k); err != nil {
		return err
	}
	need := v.size + k
	if need > len(v.data) {
		return v.rebuild(v.grow(need), p, k, fill)
	}
	return v.insertInPlace(p, k, fill)
}

// insertInPlace opens a gap of k raw slots at p
// by relocating the tail, then fills the gap.
// If anything fails, the gap is closed again.
func (v *Vector[T]) insertInPlace(p, k int, fill filler[T]) error {
	d, s := v.data, v.size
	// the gap is [g, g+k); the tail after it
	// has already been relocated
	for g := s; g > p; g-- {
		if err := v.traits.MoveTo(&d[g-1+k], &d[g-1]); err != nil {
			v.closeGap(g, k, s+k)
			return elemErr("move", g-1, err)
		}
	}
	for j := 0; j < k; j++ {
		if err := fill(j, &d[p+j]); err != nil {
			var zero T
			d[p+j] = zero
			v.destroy(d[p : p+j])
			v.closeGap(p, k, s+k)
			return err
		}
	}
	v.size = s + k
	return nil
}

// closeGap relocates [g+k, end) down to g. An element
// that cannot be relocated is dropped along with
// everything after it.
func (v *Vector[T]) closeGap(g, k, end int) {
	d := v.data
	for i := g + k; i < end; i++ {
		if err := v.traits.MoveTo(&d[i-k], &d[i]); err != nil {
			v.destroy(d[i:end])
			v.size = i - k
			return
		}
	}
	v.size = end - k
}

// PushBack appends a copy of val.
// If it fails, the vector is unchanged.
func (v *Vector[T]) PushBack(val T) error {
	if err := v.appendN(1, v.copyOf(&val, v.size)); err != nil {
		return v.fail("push_back", err)
	}
	return nil
}

// EmplaceBack appends an element constructed in place
// by init, which receives a raw slot and must leave it
// raw if it fails. A nil init default-constructs the
// element. init must not refer to elements of v.
// If it fails, the vector is unchanged.
func (v *Vector[T]) EmplaceBack(init func(dst *T) error) error {
	if err := v.appendN(1, v.emplacer(init, v.size)); err != nil {
		return v.fail("emplace_back", err)
	}
	return nil
}

// PopBack destroys the last element.
// The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack of empty vector")
	}
	v.size--
	v.traits.Release(&v.data[v.size])
}

// Insert inserts a copy of val before pos and
// returns an iterator to the new element.
func (v *Vector[T]) Insert(pos cursor.Position[T], val T) (cursor.Iterator[T], error) {
	return v.InsertN(pos, 1, val)
}

// InsertN inserts n copies of val before pos and
// returns an iterator to the first of them, or
// pos if n is zero.
func (v *Vector[T]) InsertN(pos cursor.Position[T], n int, val T) (cursor.Iterator[T], error) {
	return v.insert("insert", pos, n, func(p int) filler[T] { return v.copyOf(&val, p) })
}

// InsertValues inserts copies of vals before pos and
// returns an iterator to the first of them, or
// pos if vals is empty. vals may alias v.
func (v *Vector[T]) InsertValues(pos cursor.Position[T], vals ...T) (cursor.Iterator[T], error) {
	src := v.detach(vals)
	return v.insert("insert", pos, len(src), func(p int) filler[T] { return v.copyEach(src, p) })
}

// InsertRange inserts copies of the elements in
// [first, last) before pos and returns an iterator
// to the first of them. The range may refer into v.
func (v *Vector[T]) InsertRange(pos, first, last cursor.Position[T]) (cursor.Iterator[T], error) {
	src, err := cursor.Span(first.Const(), last.Const())
	if err != nil {
		return cursor.Iterator[T]{}, v.fail("insert", err)
	}
	return v.InsertValues(pos, src...)
}

// Emplace inserts an element constructed in place by
// init before pos and returns an iterator to it.
// See EmplaceBack for the contract of init.
func (v *Vector[T]) Emplace(pos cursor.Position[T], init func(dst *T) error) (cursor.Iterator[T], error) {
	return v.insert("emplace", pos, 1, func(p int) filler[T] { return v.emplacer(init, p) })
}

func (v *Vector[T]) insert(op string, pos cursor.Position[T], n int, mk func(p int) filler[T]) (cursor.Iterator[T], error) {
	p, err := v.offset(pos, v.size)
	if err != nil {
		return cursor.Iterator[T]{}, v.fail(op, err)
	}
	if n < 0 {
		return cursor.Iterator[T]{}, v.fail(op, negative(n))
	}
	if n > 0 {
		if err := v.insertAt(p, n, mk(p)); err != nil {
			return cursor.Iterator[T]{}, v.fail(op, err)
		}
	}
	return cursor.New(v.data, p), nil
}

// Erase removes the element at pos and returns an
// iterator to the element that followed it.
func (v *Vector[T]) Erase(pos cursor.Position[T]) (cursor.Iterator[T], error) {
	p, err := v.offset(pos, v.size-1)
	if err != nil {
		return cursor.Iterator[T]{}, v.fail("erase", err)
	}
	return v.erase(p, p+1)
}

// EraseRange removes the elements in [first, last)
// and returns an iterator to the element that
// followed them.
func (v *Vector[T]) EraseRange(first, last cursor.Position[T]) (cursor.Iterator[T], error) {
	f, err := v.offset(first, v.size)
	if err != nil {
		return cursor.Iterator[T]{}, v.fail("erase", err)
	}
	l, err := v.offset(last, v.size)
	if err != nil || l < f {
		return cursor.Iterator[T]{}, v.fail("erase", containers.ErrInvalidIterator)
	}
	return v.erase(f, l)
}

func (v *Vector[T]) erase(f, l int) (cursor.Iterator[T], error) {
	d, s, k := v.data, v.size, l-f
	if k > 0 {
		v.destroy(d[f:l])
		for i := l; i < s; i++ {
			if err := v.traits.MoveTo(&d[i-k], &d[i]); err != nil {
				v.destroy(d[i:s])
				v.size = i - k
				return cursor.Iterator[T]{}, v.fail("erase", elemErr("move", i, err))
			}
		}
		v.size = s - k
	}
	return cursor.New(v.data, f), nil
}

// assign replaces the contents with n elements built by fill
func (v *Vector[T]) assign(n int, fill filler[T]) error {
	if n < 0 {
		return negative(n)
	}
	if n > v.MaxSize() {
		return containers.TooLong(n, v.MaxSize())
	}
	if v.traits.Trivial() && n <= len(v.data) {
		for j := 0; j < n; j++ {
			// cannot fail for plain values
			_ = fill(j, &v.data[j])
		}
		old := v.size
		v.size = n
		if n < old {
			v.destroy(v.data[n:old])
		}
		return nil
	}
	buf, err := v.allocator().Allocate(ints.Max(n, len(v.data)))
	if err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		if err := fill(j, &buf[j]); err != nil {
			var zero T
			buf[j] = zero
			v.destroy(buf[:j])
			v.release(buf)
			return err
		}
	}
	v.destroy(v.data[:v.size])
	v.release(v.data)
	v.data, v.size = buf, n
	return nil
}

// AssignN replaces the contents with n copies of val.
// If it fails, the vector is unchanged.
func (v *Vector[T]) AssignN(n int, val T) error {
	if err := v.assign(n, v.copyOf(&val, 0)); err != nil {
		return v.fail("assign", err)
	}
	return nil
}

// AssignValues replaces the contents with copies of vals,
// which may alias v. If it fails, the vector is unchanged.
func (v *Vector[T]) AssignValues(vals ...T) error {
	src := v.detach(vals)
	if err := v.assign(len(src), v.copyEach(src, 0)); err != nil {
		return v.fail("assign", err)
	}
	return nil
}

// AssignRange replaces the contents with copies of the
// elements in [first, last). If it fails, the vector
// is unchanged.
func (v *Vector[T]) AssignRange(first, last cursor.Position[T]) error {
	src, err := cursor.Span(first.Const(), last.Const())
	if err != nil {
		return v.fail("assign", err)
	}
	return v.AssignValues(src...)
}

// Assign replaces the contents with copies of the
// elements of other. v keeps its own allocator.
// If it fails, v is unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if other == v {
		return nil
	}
	return v.AssignValues(other.Data()...)
}

// Resize changes Size() to n, destroying trailing
// elements or appending default-constructed ones.
// If it fails, the vector is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if err := v.resize(n, v.construct(v.size)); err != nil {
		return v.fail("resize", err)
	}
	return nil
}

// ResizeValue is like Resize, but appends
// copies of val.
func (v *Vector[T]) ResizeValue(n int, val T) error {
	if err := v.resize(n, v.copyOf(&val, v.size)); err != nil {
		return v.fail("resize", err)
	}
	return nil
}

func (v *Vector[T]) resize(n int, fill filler[T]) error {
	if n < 0 {
		return negative(n)
	}
	if n <= v.size {
		old := v.size
		v.size = n
		v.destroy(v.data[n:old])
		return nil
	}
	return v.appendN(n-v.size, fill)
}

// Clear destroys every element.
// Capacity() is unchanged.
func (v *Vector[T]) Clear() {
	old := v.size
	v.size = 0
	v.destroy(v.data[:old])
}

// Swap exchanges the contents, allocators and traits
// of v and other without touching any element.
// Iterators keep referring to the same storage,
// which now belongs to the other vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Clone returns a deep copy of v with
// Capacity() equal to v.Size() and the
// same allocator and traits.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{
		alloc:   v.allocator(),
		traits:  v.traits,
		growth:  v.growth,
		initial: v.initial,
		limit:   v.limit,
	}
	if v.size == 0 {
		return c, nil
	}
	buf, err := c.alloc.Allocate(v.size)
	if err != nil {
		return nil, v.fail("clone", err)
	}
	if err := c.copyInto(buf, v.data[:v.size], 0); err != nil {
		c.release(buf)
		return nil, v.fail("clone", err)
	}
	c.data, c.size = buf, v.size
	return c, nil
}

// Move transfers the storage of v to a new Vector
// and leaves v empty with no storage. It cannot fail.
func (v *Vector[T]) Move() *Vector[T] {
	m := *v
	v.data, v.size = nil, 0
	return &m
}

// MoveAssign destroys the contents of v and takes over
// the storage, allocator and traits of src, leaving src
// empty with no storage. It cannot fail.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if src == v {
		return
	}
	v.Clear()
	v.release(v.data)
	*v = *src
	src.data, src.size = nil, 0
}
