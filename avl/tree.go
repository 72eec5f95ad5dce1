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
	"cmp"
)

// Policy decides what Insert does with a key that is already stored.
type Policy int

const (
	// UpdateDuplicates overwrites the payload of the existing node.
	UpdateDuplicates Policy = iota
	// RejectDuplicates refuses the insert and reports false.
	RejectDuplicates
)

func (p Policy) String() string {
	switch p {
	case UpdateDuplicates:
		return "update"
	case RejectDuplicates:
		return "reject"
	default:
		return "unknown"
	}
}

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy sets the duplicate-key policy. The default is UpdateDuplicates.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Tree holds the root of an AVL tree and the number of keys stored in it.
type Tree[K, V any] struct {
	root    *Node[K, V]
	size    int
	compare func(a, b K) int
	policy  Policy
}

// New creates an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number
// when a > b.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	o := options{policy: UpdateDuplicates}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{
		compare: compare,
		policy:  o.policy,
	}
}

// Policy reports the duplicate-key policy of the tree.
func (tree *Tree[K, V]) Policy() Policy {
	return tree.policy
}

// Len returns the number of distinct keys in the tree.
func (tree *Tree[K, V]) Len() int {
	return tree.size
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K, V]) Height() int {
	return tree.root.Height()
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the current root node, nil for an empty tree.
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear drops every node.
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}

func (tree *Tree[K, V]) rotateLeft(z *Node[K, V]) *Node[K, V] {
	y := z.right

	z.right = y.left
	y.left = z

	// z is now y's child, so it goes first
	z.updateHeight()
	y.updateHeight()

	return y
}

func (tree *Tree[K, V]) rotateRight(z *Node[K, V]) *Node[K, V] {
	y := z.left

	z.left = y.right
	y.right = z

	z.updateHeight()
	y.updateHeight()

	return y
}

// Insert stores value under key.
//
// A new key always returns true. For a key that is already present the
// result depends on the policy: UpdateDuplicates overwrites the payload
// and returns true without changing Len, RejectDuplicates leaves the tree
// untouched and returns false.
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	var created, refused bool
	tree.root = tree.insertRecursive(tree.root, key, value, &created, &refused)
	if created {
		tree.size++
	}
	return !refused
}

func (tree *Tree[K, V]) insertRecursive(node *Node[K, V], key K, value V, created, refused *bool) *Node[K, V] {
	if node == nil {
		*created = true
		return &Node[K, V]{key: key, value: value, height: 1}
	}

	c := tree.compare(key, node.key)
	switch {
	case c < 0:
		node.left = tree.insertRecursive(node.left, key, value, created, refused)
	case c > 0:
		node.right = tree.insertRecursive(node.right, key, value, created, refused)
	default:
		// shape is unchanged, nothing below needs rebalancing
		if tree.policy == RejectDuplicates {
			*refused = true
		} else {
			node.value = value
		}
		return node
	}

	if !*created {
		return node
	}

	node.updateHeight()

	balanceFactor := node.Balance()
	if balanceFactor > 1 {
		if tree.compare(key, node.left.key) < 0 {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	} else if balanceFactor < -1 {
		if tree.compare(key, node.right.key) > 0 {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
