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

// Package elem describes how a container
// constructs, relocates and destroys the
// elements it stores.
//
// Go values are normally copied bit for bit,
// which is what the zero Traits does. Element
// types that own resources (handles, buffers
// that must not be shared, reference counts)
// supply hooks so a container can deep-copy
// them, relocate them and release them, and so
// those operations may fail with an error that
// the container hands back to its caller.
package elem

// Traits is the set of lifecycle hooks for
// elements of type T. Any hook left nil uses
// plain Go value semantics. The zero Traits
// is ready to use.
//
// Every constructing hook receives a raw slot:
// a *T pointing at the zero value. If a hook
// returns an error, the slot it was constructing
// must be left raw and its source must be left
// untouched.
type Traits[T any] struct {
	// Default constructs a value-initialized
	// element in *dst. Nil leaves the zero value.
	Default func(dst *T) error
	// Copy constructs *dst as a copy of *src.
	// Nil performs *dst = *src, which cannot fail.
	Copy func(dst, src *T) error
	// Move constructs *dst from the resources
	// of *src and ends the lifetime of *src:
	// the container does not Destroy a slot that
	// has been moved from. Nil performs *dst = *src,
	// which cannot fail.
	Move func(dst, src *T) error
	// NoFailMove declares that Move never returns
	// an error. Containers only migrate elements
	// with Move when it cannot fail, and copy
	// them otherwise.
	NoFailMove bool
	// Destroy releases the resources of *p.
	// The container zeroes the slot afterwards.
	Destroy func(p *T)
}

// Construct default-constructs an element in *dst.
func (t *Traits[T]) Construct(dst *T) error {
	if t.Default == nil {
		return nil
	}
	return t.Default(dst)
}

// CopyTo constructs *dst as a copy of *src.
func (t *Traits[T]) CopyTo(dst, src *T) error {
	if t.Copy == nil {
		*dst = *src
		return nil
	}
	return t.Copy(dst, src)
}

// MoveTo moves *src into *dst. On success *src
// is raw (zero) and must not be destroyed.
func (t *Traits[T]) MoveTo(dst, src *T) error {
	if t.Move == nil {
		*dst = *src
	} else if err := t.Move(dst, src); err != nil {
		return err
	}
	var zero T
	*src = zero
	return nil
}

// Release destroys *p and zeroes it.
func (t *Traits[T]) Release(p *T) {
	if t.Destroy != nil {
		t.Destroy(p)
	}
	var zero T
	*p = zero
}

// MoveCannotFail reports whether MoveTo
// can never return an error.
func (t *Traits[T]) MoveCannotFail() bool {
	return t.Move == nil || t.NoFailMove
}

// Trivial reports whether elements are copied
// and destroyed with plain Go value semantics,
// so that a live element may simply be overwritten.
func (t *Traits[T]) Trivial() bool {
	return t.CopyCannotFail() && t.Destroy == nil
}

// CopyCannotFail reports whether CopyTo
// can never return an error.
func (t *Traits[T]) CopyCannotFail() bool {
	return t.Copy == nil
}
