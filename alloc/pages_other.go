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

//go:build !unix

package alloc

// without mmap, pages come from the Go heap;
// pointer-free element types keep this safe

func pageSize() int { return 4096 }

func mapPages(length int) ([]byte, error) {
	return make([]byte, length), nil
}

func unmapPages(mem []byte) error { return nil }
