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

import (
	"errors"
	"fmt"
	"strings"
)

// Order selects one of the four traversal orders.
type Order int

const (
	InOrder      Order = iota // left, self, right: ascending keys
	PreOrder                  // self, left, right
	PostOrder                 // left, right, self
	BreadthFirst              // level by level, left to right
)

// Orders lists every traversal order.
var Orders = []Order{InOrder, PreOrder, PostOrder, BreadthFirst}

// ErrUnknownOrder is returned by ParseOrder for a name it does not recognize.
var ErrUnknownOrder = errors.New("unknown traversal order")

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case BreadthFirst:
		return "breadthfirst"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder maps a name such as "inorder" or "bfs" to an Order.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "inorder", "in-order", "in":
		return InOrder, nil
	case "preorder", "pre-order", "pre":
		return PreOrder, nil
	case "postorder", "post-order", "post":
		return PostOrder, nil
	case "breadthfirst", "breadth-first", "level", "levelorder", "bfs":
		return BreadthFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Traverse returns every entry in the given order. The result is a fresh
// slice; an empty tree yields an empty slice.
func (tree *Tree[K, V]) Traverse(order Order) []Entry[K, V] {
	switch order {
	case PreOrder:
		return tree.PreOrder()
	case PostOrder:
		return tree.PostOrder()
	case BreadthFirst:
		return tree.BreadthFirst()
	default:
		return tree.InOrder()
	}
}

// InOrder returns the entries in ascending key order.
func (tree *Tree[K, V]) InOrder() []Entry[K, V] {
	result := make([]Entry[K, V], 0, tree.size)
	inOrderTraversal(tree.root, &result)
	return result
}

func inOrderTraversal[K, V any](node *Node[K, V], result *[]Entry[K, V]) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, result)
	*result = append(*result, node.entry())
	inOrderTraversal(node.right, result)
}

// PreOrder returns each node before its subtrees, starting at the root.
func (tree *Tree[K, V]) PreOrder() []Entry[K, V] {
	result := make([]Entry[K, V], 0, tree.size)
	preOrderTraversal(tree.root, &result)
	return result
}

func preOrderTraversal[K, V any](node *Node[K, V], result *[]Entry[K, V]) {
	if node == nil {
		return
	}
	*result = append(*result, node.entry())
	preOrderTraversal(node.left, result)
	preOrderTraversal(node.right, result)
}

// PostOrder returns children before their parents.
func (tree *Tree[K, V]) PostOrder() []Entry[K, V] {
	result := make([]Entry[K, V], 0, tree.size)
	postOrderTraversal(tree.root, &result)
	return result
}

func postOrderTraversal[K, V any](node *Node[K, V], result *[]Entry[K, V]) {
	if node == nil {
		return
	}
	postOrderTraversal(node.left, result)
	postOrderTraversal(node.right, result)
	*result = append(*result, node.entry())
}

// BreadthFirst returns the entries level by level, left to right.
func (tree *Tree[K, V]) BreadthFirst() []Entry[K, V] {
	result := make([]Entry[K, V], 0, tree.size)
	if tree.root == nil {
		return result
	}

	queue := []*Node[K, V]{tree.root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node.entry())

		if node.left != nil {
			queue = append(queue, node.left)
		}
		if node.right != nil {
			queue = append(queue, node.right)
		}
	}
	return result
}
