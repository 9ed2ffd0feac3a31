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
	"github.com/SnellerInc/containers"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// EqualFunc returns whether v and other have the
// same size and eq reports every corresponding
// pair of elements as equal.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(v.Data(), other.Data(), eq)
}

// CompareFunc compares v and other
// lexicographically using cmp.
func (v *Vector[T]) CompareFunc(other *Vector[T], cmp func(x, y T) int) int {
	return slices.CompareFunc(v.Data(), other.Data(), cmp)
}

// Equal returns whether a and b hold
// equal elements in the same order.
// Capacity and allocator are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// Compare compares a and b lexicographically.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// Sum64 returns the keyed digest of the elements of v.
//
// See also: containers.Sum64
func Sum64[T containers.Pointerless](v *Vector[T], k0, k1 uint64) uint64 {
	return containers.Sum64(k0, k1, v.Data())
}
