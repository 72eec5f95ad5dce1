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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Lanedodge %s**

A balanced obstacle index for a lane-dodging road game. Obstacles are keyed by their
spawn coordinate (x first, then y) in an AVL tree that stays height-balanced after every
insert and delete.

Built with Go %s

# 1. Commands
* **load FILE** loads obstacle records (.json, .yaml, .yml) and prints traversals
* **print FILE** draws the index structure, **--copy** puts it on the clipboard
* **script FILE** runs index commands line by line (use - for stdin)
* **simulate** spawns, scrolls and removes obstacles while checking the tree invariants
* **inspect [FILE]** opens the interactive index inspector
* **settings** shows or creates ~/.lanedodge.yaml

# 2. Record files
A list of records, or an object with an "obstacles" list:

    [{"x": 83, "y": 0, "kind": "normal"}, {"x": 283, "y": 40, "kind": "special"}]

Kinds are normal, special and bonus. Records that share a coordinate are refused.

# 3. Traversal orders
* inorder: ascending coordinates
* preorder: root first
* postorder: children before parents
* breadthfirst: level by level

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
