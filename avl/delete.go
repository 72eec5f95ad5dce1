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

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key is a no-op.
func (tree *Tree[K, V]) Delete(key K) bool {
	var removed bool
	tree.root = tree.deleteRecursive(tree.root, key, &removed)
	if removed {
		tree.size--
	}
	return removed
}

func (tree *Tree[K, V]) deleteRecursive(node *Node[K, V], key K, removed *bool) *Node[K, V] {
	if node == nil {
		return nil // key not found
	}

	c := tree.compare(key, node.key)
	switch {
	case c < 0:
		node.left = tree.deleteRecursive(node.left, key, removed)
	case c > 0:
		node.right = tree.deleteRecursive(node.right, key, removed)
	default:
		*removed = true

		if node.left == nil {
			return node.right // leaf or right child only
		}
		if node.right == nil {
			return node.left
		}

		// Two children: take over the in-order successor, then remove it
		// from the right subtree, where it has at most one child.
		successor := node.right.first()
		node.key = successor.key
		node.value = successor.value
		var ignored bool
		node.right = tree.deleteRecursive(node.right, successor.key, &ignored)
	}

	if !*removed {
		return node
	}

	node.updateHeight()
	return tree.rebalance(node)
}

// rebalance restores the AVL property at node after a deletion. With no
// inserted key to compare against, the child's own balance factor picks
// between the straight and the zig-zag case.
func (tree *Tree[K, V]) rebalance(node *Node[K, V]) *Node[K, V] {
	balanceFactor := node.Balance()

	// Left-heavy
	if balanceFactor > 1 {
		if node.left.Balance() >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if node.right.Balance() <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
