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
	"io"
)

// Fprint writes an ASCII picture of the tree to w, right subtree first,
// annotating each node with its height and balance factor. A nil format
// prints keys with %v.
func (tree *Tree[K, V]) Fprint(w io.Writer, format func(key K, value V) string) error {
	if format == nil {
		format = func(key K, _ V) string {
			return fmt.Sprint(key)
		}
	}
	if tree.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return printNode(w, tree.root, "", true, format)
}

func printNode[K, V any](w io.Writer, node *Node[K, V], prefix string, last bool, format func(K, V) string) error {
	branch := "├── "
	if last {
		branch = "└── "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s (h:%d, b:%+d)\n", prefix, branch, format(node.key, node.value), node.height, node.Balance()); err != nil {
		return err
	}

	childPrefix := prefix + "│   "
	if last {
		childPrefix = prefix + "    "
	}
	if node.right != nil {
		if err := printNode(w, node.right, childPrefix, node.left == nil, format); err != nil {
			return err
		}
	}
	if node.left != nil {
		return printNode(w, node.left, childPrefix, true, format)
	}
	return nil
}
