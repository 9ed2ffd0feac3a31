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

// Package ints provides the integer arithmetic
// shared by the containers and allocators.
package ints

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller value of x and y
func Min[T constraints.Integer](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Max returns the greater value of x and y
func Max[T constraints.Integer](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// AlignUp returns v aligned up to a given alignment.
func AlignUp[T constraints.Unsigned](v, alignment T) T {
	return ((v + alignment - 1) / alignment) * alignment
}

// MulLimit returns x*y, or limit if the product
// would exceed limit or overflow. x and y must be
// non-negative.
func MulLimit(x, y, limit int) int {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 || lo > uint64(limit) {
		return limit
	}
	return int(lo)
}

// Grow returns the capacity to use when a
// sequence of capacity cur must hold at least need
// elements: max(cur*factor, need), or exactly
// need when cur is zero, never more than limit.
// The caller must already have checked need <= limit.
func Grow(cur, need, factor, limit int) int {
	if cur == 0 {
		return need
	}
	return Max(MulLimit(cur, factor, limit), need)
}

// Log2Ceil returns ceil(log2(n)) for n > 0.
func Log2Ceil(n uint) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(n - 1)
}
