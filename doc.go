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

// Package containers is the root of a small
// generic-container library.
//
// The library provides two sequence types:
// [github.com/SnellerInc/containers/array.Array],
// a sequence whose length is fixed when it is created, and
// [github.com/SnellerInc/containers/vector.Vector],
// a growable sequence whose storage is obtained from an
// injected [github.com/SnellerInc/containers/alloc.Allocator].
// Both expose the random-access iterators from
// [github.com/SnellerInc/containers/cursor].
//
// This package holds the pieces shared by all of them:
// the error taxonomy, the configuration format, and a
// keyed digest of pointer-free contents.
package containers
