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

package ints

import (
	"math"
	"testing"
)

func TestGrow(t *testing.T) {
	testcases := []struct {
		cur, need, factor, limit int
		want                     int
	}{
		{0, 1, 2, 100, 1},
		{0, 7, 2, 100, 7},
		{1, 2, 2, 100, 2},
		{2, 3, 2, 100, 4},
		{4, 5, 2, 100, 8},
		{4, 100, 2, 100, 100},
		{60, 61, 2, 100, 100},
		{10, 11, 3, 100, 30},
		{math.MaxInt / 2, math.MaxInt/2 + 1, 4, math.MaxInt, math.MaxInt},
	}
	for _, tc := range testcases {
		got := Grow(tc.cur, tc.need, tc.factor, tc.limit)
		if got != tc.want {
			t.Errorf("Grow(%d, %d, %d, %d) = %d, want %d", tc.cur, tc.need, tc.factor, tc.limit, got, tc.want)
		}
	}
}

func TestAlignUp(t *testing.T) {
	if got := AlignUp[uint](1, 4096); got != 4096 {
		t.Errorf("got %d", got)
	}
	if got := AlignUp[uint](4096, 4096); got != 4096 {
		t.Errorf("got %d", got)
	}
	if got := AlignUp[uint64](4097, 4096); got != 8192 {
		t.Errorf("got %d", got)
	}
}

func TestLog2Ceil(t *testing.T) {
	for n, want := range map[uint]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 1024: 10, 1025: 11} {
		if got := Log2Ceil(n); got != want {
			t.Errorf("Log2Ceil(%d) = %d, want %d", n, got, want)
		}
	}
}
