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

package containers

import (
	"unsafe"

	"github.com/dchest/siphash"
	"golang.org/x/exp/constraints"
)

// Pointerless is the set of element types
// whose in-memory representation contains
// no Go pointers, so that their storage may
// be reinterpreted as bytes or placed in
// memory the garbage collector does not scan.
type Pointerless interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~bool
}

// Bytes returns the memory backing s as a byte slice.
// The result aliases s.
func Bytes[T Pointerless](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Sum64 returns the SipHash-2-4 digest of the
// contents of s keyed with (k0, k1). Two
// sequences with equal elements in equal order
// produce equal digests regardless of their
// capacity or the allocator that produced them.
func Sum64[T Pointerless](k0, k1 uint64, s []T) uint64 {
	return siphash.Hash(k0, k1, Bytes(s))
}
