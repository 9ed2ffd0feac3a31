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

package elem

// Element is implemented by pointers to element
// types that know how to deep-copy themselves.
type Element[T any] interface {
	*T
	// CopyFrom initializes the receiver,
	// a zero value, as a copy of src.
	CopyFrom(src *T) error
}

// Initer is implemented by element types
// whose default value is not the zero value.
type Initer interface {
	Init() error
}

// Destroyer is implemented by element types
// that hold resources which must be released.
type Destroyer interface {
	Destroy()
}

// Mover is implemented by element types whose
// relocation may fail. MoveFrom initializes the
// receiver from src and ends the lifetime of src.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Relocator is implemented by element types whose
// relocation cannot fail.
type Relocator[T any] interface {
	Relocate(src *T)
}

// Methods returns Traits built from the methods
// of *T: CopyFrom always, and Init, Destroy,
// MoveFrom or Relocate when *T implements them.
// Relocate takes precedence over MoveFrom and
// makes the move non-failing.
func Methods[T any, P Element[T]]() Traits[T] {
	t := Traits[T]{
		Copy: func(dst, src *T) error {
			return P(dst).CopyFrom(src)
		},
	}
	var probe any = P(nil)
	if _, ok := probe.(Initer); ok {
		t.Default = func(dst *T) error {
			return any(P(dst)).(Initer).Init()
		}
	}
	if _, ok := probe.(Destroyer); ok {
		t.Destroy = func(p *T) {
			any(P(p)).(Destroyer).Destroy()
		}
	}
	if _, ok := probe.(Relocator[T]); ok {
		t.Move = func(dst, src *T) error {
			any(P(dst)).(Relocator[T]).Relocate(src)
			return nil
		}
		t.NoFailMove = true
	} else if _, ok := probe.(Mover[T]); ok {
		t.Move = func(dst, src *T) error {
			return any(P(dst)).(Mover[T]).MoveFrom(src)
		}
	}
	return t
}
