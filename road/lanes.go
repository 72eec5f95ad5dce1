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

package road

// Road describes the drivable area split into equal lanes.
type Road struct {
	Width  int
	Height int
	Lanes  int
}

// LaneWidth returns the width of one lane.
func (r Road) LaneWidth() int {
	if r.Lanes <= 0 {
		return r.Width
	}
	return r.Width / r.Lanes
}

// LaneCenter returns the X coordinate of the center of lane. Lanes are
// numbered from 0; an out-of-range lane maps to the road center.
func (r Road) LaneCenter(lane int) int {
	if lane < 0 || lane >= r.Lanes {
		return r.Width / 2
	}
	w := r.LaneWidth()
	return lane*w + w/2
}

// SpawnX returns the left edge that centers an object of the given width
// in lane.
func (r Road) SpawnX(lane, objectWidth int) int {
	return r.LaneCenter(lane) - objectWidth/2
}

// OffScreen reports whether an object whose top edge is at y has left the
// bottom of the road.
func (r Road) OffScreen(y int) bool {
	return y > r.Height
}
