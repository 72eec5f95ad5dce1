// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl provides a height-balanced binary search tree keyed by
// any totally ordered type and carrying an arbitrary payload.
//
// Every mutating call leaves the tree with |balance| <= 1 at every node,
// so Insert, Delete and Search run in O(log n).
//
// Note: a Tree is not safe for concurrent use. Rotations relink several
// nodes non-atomically, so callers sharing a tree must serialize all
// mutations (one lock per tree). Read-only calls may run concurrently
// with each other but never with a mutation.
//
// Duplicate keys are handled according to the tree's Policy:
// UpdateDuplicates overwrites the stored payload in place, while
// RejectDuplicates refuses the insert and leaves the tree untouched.
package avl
