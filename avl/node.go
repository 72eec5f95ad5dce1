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

package avl

// Node is one stored entry. Nodes are owned by their parent; a reference
// to a node must not be kept across a mutating call since rotations
// change which node roots a subtree.
type Node[K, V any] struct {
	key    K
	value  V
	height int // leaf = 1, absent child = 0
	left   *Node[K, V]
	right  *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node's payload.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Height returns the height of the subtree rooted at n, 0 for a nil node.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns height(left) - height(right).
func (n *Node[K, V]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Left returns the left child or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node[K, V]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

func (n *Node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// Entry is a copy of one key/payload pair as returned by traversals and
// lookups.
type Entry[K, V any] struct {
	Key   K
	Value V
}
