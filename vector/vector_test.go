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
	"errors"
	"fmt"
	"testing"

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/alloc"
	"github.com/SnellerInc/containers/cursor"
)

// check verifies the storage invariants
func (v *Vector[T]) check() error {
	if v.size < 0 || v.size > len(v.data) {
		return fmt.Errorf("size %d, capacity %d", v.size, len(v.data))
	}
	if (v.data == nil) != (len(v.data) == 0) {
		return fmt.Errorf("data %p with capacity %d", v.data, len(v.data))
	}
	return nil
}

func checkContents[T comparable](t *testing.T, v *Vector[T], want ...T) {
	t.Helper()
	if err := v.check(); err != nil {
		t.Fatal(err)
	}
	if v.Size() != len(want) {
		t.Fatalf("size %d, want %d (%v)", v.Size(), len(want), v.Data())
	}
	for i := range want {
		if got := v.Index(i); got != want[i] {
			t.Fatalf("element %d: got %v want %v (%v)", i, got, want[i], v.Data())
		}
	}
}

func TestInsertEraseScenario(t *testing.T) {
	v := Of(1, 2, 3, 4, 5, 6, 7)
	it, err := v.Insert(v.Begin().Add(2), 100)
	if err != nil {
		t.Fatal(err)
	}
	if it.Get() != 100 || it.Diff(v.Begin()) != 2 {
		t.Fatalf("returned iterator at %d -> %d", it.Diff(v.Begin()), it.Get())
	}
	checkContents(t, v, 1, 2, 100, 3, 4, 5, 6, 7)
	it, err = v.Erase(v.Begin().Add(2))
	if err != nil {
		t.Fatal(err)
	}
	if it.Get() != 3 {
		t.Fatalf("erase returned iterator to %d", it.Get())
	}
	checkContents(t, v, 1, 2, 3, 4, 5, 6, 7)
}

func TestConstructors(t *testing.T) {
	var zero Vector[string]
	if zero.Size() != 0 || zero.Capacity() != 0 || zero.Data() != nil || !zero.Empty() {
		t.Fatal("zero vector should be empty")
	}
	if err := zero.PushBack("x"); err != nil {
		t.Fatal(err)
	}
	checkContents(t, &zero, "x")

	e := New[float64]()
	if e.Capacity() != 0 || e.Data() != nil {
		t.Fatal("New should not allocate")
	}

	s, err := NewSize[float64](50)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 50 || s.Capacity() != 50 {
		t.Fatalf("size %d cap %d", s.Size(), s.Capacity())
	}

	f, err := NewFill(50, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < f.Size(); i++ {
		if f.Index(i) != 5.0 {
			t.Fatalf("element %d = %v", i, f.Index(i))
		}
	}

	nested, err := NewFill(10, f.Data())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		for j := 0; j < 50; j++ {
			if nested.Index(i)[j] != 5.0 {
				t.Fatalf("nested[%d][%d] = %v", i, j, nested.Index(i)[j])
			}
		}
	}

	r, err := FromRange[float64](f.Begin(), f.End())
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(r, f) || r.Capacity() != 50 {
		t.Fatal("range construction")
	}
	if _, err := FromRange[float64](f.End(), f.Begin()); !errors.Is(err, containers.ErrInvalidIterator) {
		t.Fatalf("reversed range: %v", err)
	}

	c, err := f.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(c, f) || c.Capacity() != f.Size() {
		t.Fatal("clone")
	}
	*c.Ref(0) = 1
	if f.Index(0) != 5.0 {
		t.Fatal("clone shares storage")
	}

	m := f.Move()
	if f.Size() != 0 || f.Capacity() != 0 || f.Data() != nil {
		t.Fatal("moved-from vector should be empty")
	}
	if m.Size() != 50 || m.Index(49) != 5.0 {
		t.Fatal("moved-to vector lost its contents")
	}

	l, err := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatal(err)
	}
	checkContents(t, l, 1, 2, 3, 4, 5, 6, 7)
	if _, err := NewSize[int](-1); !errors.Is(err, containers.ErrLength) {
		t.Fatalf("negative size: %v", err)
	}
}

func TestValueList(t *testing.T) {
	lists := [][]int{
		{},
		{42},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
	}
	for _, l := range lists {
		v := Of(l...)
		if v.Size() != len(l) {
			t.Fatalf("size %d want %d", v.Size(), len(l))
		}
		for i := range l {
			got, err := v.At(i)
			if err != nil {
				t.Fatal(err)
			}
			if got != l[i] {
				t.Fatalf("At(%d) = %d want %d", i, got, l[i])
			}
		}
	}
}

func TestAccess(t *testing.T) {
	v := Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 0)
	if !v.Allocator().Equal(alloc.Default[int]()) {
		t.Fatal("default allocator")
	}
	if v.Front() != 1 || v.Back() != 0 || v.Data()[2] != 3 {
		t.Fatal("front/back/data")
	}
	if _, err := v.At(10); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("At(10): %v", err)
	}
	if _, err := v.At(-1); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("At(-1): %v", err)
	}
	if err := v.Set(101, 10); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("Set(101): %v", err)
	}
	if err := v.Set(0, 10); err != nil || v.Front() != 10 {
		t.Fatal("Set(0)")
	}
	// raw slots past the size are not reachable
	if err := v.Reserve(20); err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Index past Size() should panic")
			}
		}()
		v.Index(10)
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Back of an empty vector should panic")
			}
		}()
		New[int]().Back()
	}()
}

func TestIterators(t *testing.T) {
	v, err := NewSize[int](10)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for it := v.Begin(); !it.Const().Equal(v.CEnd()); it.Inc() {
		it.Set(n)
		n++
	}
	checkContents(t, v, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	it := v.Begin().Add(1).Const()
	if it.Get() != 1 {
		t.Fatal("begin+1")
	}
	it.Inc()
	it.Inc()
	post := it
	it.Dec()
	if post.Get() != 3 || it.Get() != 2 {
		t.Fatal("increment/decrement")
	}
	it.Dec()
	if it.Add(2).Get() != 3 || it.Sub(1).Get() != 0 || it.At(2) != 3 {
		t.Fatal("offsets")
	}
	it.Advance(3)
	it.Advance(-2)
	if it.Get() != 2 || it.Diff(v.CBegin()) != 2 {
		t.Fatal("advance")
	}
	if v.End().Diff(v.Begin()) != v.Size() {
		t.Fatal("end - begin != size")
	}
	for k := 0; k < v.Size(); k++ {
		at := v.Begin().Add(k)
		if at.Diff(v.Begin()) != k || at.Add(v.Size()-1-k).Get() != v.Back() {
			t.Fatalf("k=%d", k)
		}
	}

	first := v.Begin().Const()
	if !first.Equal(v.CBegin()) || first.Equal(v.CEnd()) || !first.Less(v.CEnd()) ||
		first.Less(v.CBegin()) || !first.LessEqual(v.CBegin()) || first.Greater(v.CBegin()) ||
		!first.GreaterEqual(v.CBegin()) || first.GreaterEqual(v.CEnd()) {
		t.Fatal("ordering")
	}

	want := 9
	for r := v.RBegin().Const(); !r.Equal(v.CREnd()); r.Inc() {
		if r.Get() != want {
			t.Fatalf("reverse: %d want %d", r.Get(), want)
		}
		want--
	}
	if v.CRBegin().Get() != 9 || v.CREnd().Sub(1).Get() != 0 {
		t.Fatal("reverse ends")
	}
	if !v.RBegin().Base().Equal(v.End()) {
		t.Fatal("rbegin().Base() != end()")
	}

	var null cursor.Iterator[int]
	if !null.IsNil() || null.Equal(v.Begin()) {
		t.Fatal("null iterator")
	}
}

func TestCompare(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	if err := b.Reserve(100); err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) || Compare(a, b) != 0 {
		t.Fatal("capacity should not affect equality")
	}
	if Sum64(a, 1, 2) != Sum64(b, 1, 2) {
		t.Fatal("capacity should not affect the digest")
	}
	b.PopBack()
	if Equal(a, b) || Compare(a, b) != 1 || Compare(b, a) != -1 {
		t.Fatal("prefix ordering")
	}
	if !a.EqualFunc(Of(-1, -2, -3), func(x, y int) bool { return x == -y }) {
		t.Fatal("EqualFunc")
	}
	if a.CompareFunc(Of(1, 2, 4), func(x, y int) int { return x - y }) >= 0 {
		t.Fatal("CompareFunc")
	}
}
