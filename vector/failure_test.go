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
	"testing"

	"github.com/SnellerInc/containers"
	"github.com/SnellerInc/containers/elem"
)

var (
	errBadCopy = errors.New("copy refused")
	errBadMove = errors.New("move refused")
)

// registry hands out resource ids and
// records which of them are still held.
type registry struct {
	t     *testing.T
	next  int
	live  map[int]bool
	moves int // moves allowed by fragile traits; negative is unlimited
}

func newRegistry(t *testing.T) *registry {
	return &registry{t: t, live: make(map[int]bool), moves: -1}
}

func (r *registry) acquire() int {
	r.next++
	r.live[r.next] = true
	return r.next
}

func (r *registry) release(id int) {
	if !r.live[id] {
		r.t.Errorf("resource %d released twice", id)
	}
	delete(r.live, id)
}

// make returns an element that owns a resource.
// The caller is responsible for destroying it.
func (r *registry) make(val int) tracked {
	return tracked{reg: r, id: r.acquire(), val: val}
}

// expect checks that exactly n resources are held.
func (r *registry) expect(n int) {
	r.t.Helper()
	if len(r.live) != n {
		r.t.Fatalf("%d resources held, want %d", len(r.live), n)
	}
}

// tracked is an element owning a resource
// from a registry; copying one acquires
// a new resource.
type tracked struct {
	reg *registry
	id  int
	val int
	bad bool // copying from this element fails
}

func (e *tracked) CopyFrom(src *tracked) error {
	if src.bad {
		return errBadCopy
	}
	*e = tracked{reg: src.reg, id: src.reg.acquire(), val: src.val}
	return nil
}

func (e *tracked) Destroy() {
	if e.id != 0 {
		e.reg.release(e.id)
	}
}

// fragile returns traits whose moves fail once
// r.moves is used up, so containers migrate
// elements by copying.
func fragile(r *registry) elem.Traits[tracked] {
	t := elem.Methods[tracked]()
	t.Move = func(dst, src *tracked) error {
		if r.moves == 0 {
			return errBadMove
		}
		if r.moves > 0 {
			r.moves--
		}
		*dst = *src
		return nil
	}
	return t
}

func vals(v *Vector[tracked]) []int {
	out := make([]int, v.Size())
	for i := range out {
		out[i] = v.Index(i).val
	}
	return out
}

func checkVals(t *testing.T, v *Vector[tracked], want ...int) {
	t.Helper()
	if err := v.check(); err != nil {
		t.Fatal(err)
	}
	got := vals(v)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func seq(r *registry, traits elem.Traits[tracked], c int, vs ...int) *Vector[tracked] {
	v := New(WithTraits(traits))
	if err := v.Reserve(c); err != nil {
		r.t.Fatal(err)
	}
	for _, x := range vs {
		e := r.make(x)
		err := v.PushBack(e)
		e.Destroy()
		if err != nil {
			r.t.Fatal(err)
		}
	}
	return v
}

func TestCopyFailureStrong(t *testing.T) {
	r := newRegistry(t)
	good := r.make(0)
	bad := r.make(1)
	bad.bad = true

	v, err := NewFill(15, good, WithTraits(elem.Methods[tracked]()))
	if err != nil {
		t.Fatal(err)
	}
	r.expect(17)
	data := v.Data()
	unchanged := func(name string) {
		t.Helper()
		if v.Size() != 15 || v.Capacity() != 15 || &v.Data()[0] != &data[0] {
			t.Fatalf("%s: vector modified", name)
		}
		r.expect(17)
	}

	err = v.PushBack(bad)
	var ee *containers.ElementError
	if !errors.Is(err, errBadCopy) || !errors.As(err, &ee) || ee.Op != "copy" || ee.Index != 15 {
		t.Fatalf("push_back: %v", err)
	}
	unchanged("push_back")

	_, err = v.InsertN(v.Begin().Add(3), 2, bad)
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("insert: %v", err)
	}
	unchanged("insert")

	src, err := NewFill(3, good, WithTraits(elem.Methods[tracked]()))
	if err != nil {
		t.Fatal(err)
	}
	src.Ref(1).bad = true
	r.expect(20)
	_, err = v.InsertRange(v.Begin(), src.Begin(), src.End())
	if !errors.As(err, &ee) || ee.Index != 1 {
		t.Fatalf("insert range: %v", err)
	}
	r.expect(20)
	src.Clear()
	unchanged("insert range")

	err = v.AssignN(20, bad)
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("assign: %v", err)
	}
	unchanged("assign")
	err = v.ResizeValue(16, bad)
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("resize: %v", err)
	}
	unchanged("resize")

	v.Clear()
	good.Destroy()
	bad.Destroy()
	r.expect(0)
}

func TestRelocationStrong(t *testing.T) {
	r := newRegistry(t)
	v := seq(r, fragile(r), 4, 1, 2, 3, 4)
	v.Ref(1).bad = true
	r.expect(4)

	// moves may fail, so relocation copies
	err := v.Reserve(30)
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("reserve: %v", err)
	}
	if v.Capacity() != 4 {
		t.Fatal("failed reserve changed the capacity")
	}
	r.expect(4)

	e := r.make(5)
	err = v.PushBack(e)
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("push_back: %v", err)
	}
	checkVals(t, v, 1, 2, 3, 4)
	r.expect(5)
	e.Destroy()

	_, err = v.Clone()
	if !errors.Is(err, errBadCopy) {
		t.Fatalf("clone: %v", err)
	}
	r.expect(4)

	// with non-failing moves elements are relocated
	// and never copied
	v.traits = elem.Methods[tracked]()
	ids := make([]int, v.Size())
	for i := range ids {
		ids[i] = v.Index(i).id
	}
	if err := v.Reserve(30); err != nil {
		t.Fatal(err)
	}
	for i := range ids {
		if v.Index(i).id != ids[i] {
			t.Fatalf("element %d was copied", i)
		}
	}
	checkVals(t, v, 1, 2, 3, 4)
	r.expect(4)
	v.Clear()
	r.expect(0)
}

func TestInPlaceInsertRestores(t *testing.T) {
	r := newRegistry(t)
	bad := r.make(9)
	bad.bad = true
	for _, traits := range []elem.Traits[tracked]{elem.Methods[tracked](), fragile(r)} {
		v := seq(r, traits, 10, 1, 2, 3, 4)
		_, err := v.InsertN(v.Begin().Add(1), 2, bad)
		if !errors.Is(err, errBadCopy) {
			t.Fatalf("insert: %v", err)
		}
		checkVals(t, v, 1, 2, 3, 4)
		if v.Capacity() != 10 {
			t.Fatal("capacity changed")
		}
		r.expect(5)
		v.Clear()
	}
	bad.Destroy()
	r.expect(0)
}

func TestRelaxedInsert(t *testing.T) {
	r := newRegistry(t)
	v := seq(r, fragile(r), 10, 1, 2, 3, 4)
	e := r.make(9)
	r.moves = 1
	_, err := v.Insert(v.Begin().Add(1), e)
	var ee *containers.ElementError
	if !errors.Is(err, errBadMove) || !errors.As(err, &ee) || ee.Op != "move" {
		t.Fatalf("insert: %v", err)
	}
	// the element that could not be moved
	// back is destroyed
	checkVals(t, v, 1, 2, 3)
	r.expect(4)
	r.moves = -1
	e.Destroy()
	v.Clear()
	r.expect(0)
}

func TestRelaxedErase(t *testing.T) {
	r := newRegistry(t)
	v := seq(r, fragile(r), 4, 1, 2, 3, 4)
	r.moves = 1
	_, err := v.Erase(v.Begin().Add(1))
	if !errors.Is(err, errBadMove) {
		t.Fatalf("erase: %v", err)
	}
	checkVals(t, v, 1, 3)
	r.expect(2)
	r.moves = -1
	if _, err := v.Erase(v.Begin()); err != nil {
		t.Fatal(err)
	}
	checkVals(t, v, 3)
	r.expect(1)
	v.PopBack()
	r.expect(0)
}

func TestLifecycle(t *testing.T) {
	r := newRegistry(t)
	v := seq(r, elem.Methods[tracked](), 0, 1, 2, 3, 4, 5)
	r.expect(5)
	if err := v.Resize(2); err != nil {
		t.Fatal(err)
	}
	r.expect(2)
	e := r.make(7)
	if err := v.AssignN(6, e); err != nil {
		t.Fatal(err)
	}
	r.expect(7)
	c, err := v.Clone()
	if err != nil {
		t.Fatal(err)
	}
	r.expect(13)
	if err := c.AssignValues(e); err != nil {
		t.Fatal(err)
	}
	r.expect(8)
	c.MoveAssign(v)
	r.expect(7)
	if _, err := c.EraseRange(c.Begin(), c.Begin().Add(3)); err != nil {
		t.Fatal(err)
	}
	r.expect(4)
	if err := c.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	r.expect(4)
	c.Clear()
	e.Destroy()
	r.expect(0)
}

func TestAccessErrors(t *testing.T) {
	v, err := NewSize[int](100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.At(101); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("At(101): %v", err)
	}
	if err := v.Set(100, 10); !errors.Is(err, containers.ErrOutOfRange) {
		t.Fatalf("Set(100): %v", err)
	}
	if err := v.Reserve(v.MaxSize() + 1); !errors.Is(err, containers.ErrLength) {
		t.Fatalf("reserve: %v", err)
	}
	mustPanic(t, "Index", func() { v.Index(100) })
	e := New[int]()
	mustPanic(t, "PopBack", e.PopBack)
	mustPanic(t, "Front", func() { e.Front() })
	mustPanic(t, "Back", func() { e.Back() })
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}
