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
	"fmt"
)

// Check walks the whole tree and verifies ordering, heights, balance and
// the stored size. It returns an error describing the first violation.
func (tree *Tree[K, V]) Check() error {
	count, err := tree.check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("size mismatch: counted %d nodes, recorded %d", count, tree.size)
	}
	return nil
}

// internal: every key in the subtree must lie strictly between low and high
func (tree *Tree[K, V]) check(node *Node[K, V], low, high *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low != nil && tree.compare(node.key, *low) <= 0 {
		return 0, fmt.Errorf("ordering violated at key %v: not greater than %v", node.key, *low)
	}
	if high != nil && tree.compare(node.key, *high) >= 0 {
		return 0, fmt.Errorf("ordering violated at key %v: not less than %v", node.key, *high)
	}

	nl, err := tree.check(node.left, low, &node.key)
	if err != nil {
		return 0, err
	}
	nr, err := tree.check(node.right, &node.key, high)
	if err != nil {
		return 0, err
	}

	if want := max(node.left.Height(), node.right.Height()) + 1; node.height != want {
		return 0, fmt.Errorf("height of key %v is %d, expected %d", node.key, node.height, want)
	}
	if b := node.Balance(); b < -1 || b > 1 {
		return 0, fmt.Errorf("balance of key %v is %+d", node.key, b)
	}
	return nl + nr + 1, nil
}
