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

// Package road indexes the obstacles of a lane-dodging road game by their
// spawn coordinates and holds the small collaborators that feed the
// index: lane geometry, obstacle record files and a headless workload
// simulation.
package road

import (
	"cmp"
	"fmt"
	"strings"
)

// Point is an obstacle coordinate. Points order by X, then by Y.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ComparePoints orders points by X and breaks ties on Y. Identical points
// compare equal and are treated as duplicates by the index.
func ComparePoints(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Kind is the obstacle category.
type Kind string

const (
	Normal  Kind = "normal"
	Special Kind = "special"
	Bonus   Kind = "bonus"
)

// ParseKind accepts the known categories case-insensitively; an empty
// string means Normal.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return Normal, nil
	case Normal, Special, Bonus:
		return k, nil
	default:
		return "", fmt.Errorf("unknown obstacle kind %q", s)
	}
}

// Obstacle is the record stored in the index. ID is opaque to the index;
// a renderer resolves it against its own object store.
type Obstacle struct {
	ID       string
	Position Point
	Kind     Kind
}

func (o Obstacle) String() string {
	return fmt.Sprintf("%s-%s", o.Position, o.Kind)
}
