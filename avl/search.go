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

// Search returns the payload stored under key.
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	if node := tree.search(key); node != nil {
		return node.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K, V]) Contains(key K) bool {
	return tree.search(key) != nil
}

func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	node := tree.root
	for node != nil {
		c := tree.compare(key, node.key)
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// lowest node in a sub-tree
func (n *Node[K, V]) first() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K, V]) last() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the entry with the lowest key.
func (tree *Tree[K, V]) Min() (Entry[K, V], bool) {
	return entryOf(tree.root.first())
}

// Max returns the entry with the highest key.
func (tree *Tree[K, V]) Max() (Entry[K, V], bool) {
	return entryOf(tree.root.last())
}

// Floor returns the entry with the greatest key <= key.
func (tree *Tree[K, V]) Floor(key K) (Entry[K, V], bool) {
	var best *Node[K, V]
	node := tree.root
	for node != nil {
		c := tree.compare(key, node.key)
		if c == 0 {
			return node.entry(), true
		}
		if c > 0 {
			best = node
			node = node.right
		} else {
			node = node.left
		}
	}
	return entryOf(best)
}

// Ceiling returns the entry with the smallest key >= key.
func (tree *Tree[K, V]) Ceiling(key K) (Entry[K, V], bool) {
	var best *Node[K, V]
	node := tree.root
	for node != nil {
		c := tree.compare(key, node.key)
		if c == 0 {
			return node.entry(), true
		}
		if c < 0 {
			best = node
			node = node.left
		} else {
			node = node.right
		}
	}
	return entryOf(best)
}

// Range calls fn for every key in [low, high] in ascending order until fn
// returns false.
func (tree *Tree[K, V]) Range(low, high K, fn func(key K, value V) bool) {
	tree.rangeSearch(tree.root, low, high, fn)
}

// rangeSearch reports false once fn has asked to stop.
func (tree *Tree[K, V]) rangeSearch(node *Node[K, V], low, high K, fn func(K, V) bool) bool {
	if node == nil {
		return true
	}

	aboveLow := tree.compare(node.key, low) >= 0
	belowHigh := tree.compare(node.key, high) <= 0

	// keys smaller than node can still reach low
	if aboveLow && !tree.rangeSearch(node.left, low, high, fn) {
		return false
	}
	if aboveLow && belowHigh && !fn(node.key, node.value) {
		return false
	}
	if belowHigh {
		return tree.rangeSearch(node.right, low, high, fn)
	}
	return true
}

func entryOf[K, V any](n *Node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entry(), true
}
