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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/lanedodge/avl"
	"github.com/cybrota/lanedodge/road"
)

const (
	colIndex    = 5
	colPosition = 14
	colKind     = 9
)

// renderObstacles lays the obstacles out as a table under a title.
func renderObstacles(s *Styles, title string, obstacles []road.Obstacle) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	if len(obstacles) == 0 {
		b.WriteString(s.Muted.Render("  (empty)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.Header.Width(colIndex).Render("#"),
		s.Header.Width(colPosition).Render("position"),
		s.Header.Width(colKind).Render("kind"),
		s.Header.Render("id"),
	))
	b.WriteString("\n")

	for i, o := range obstacles {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Muted.Width(colIndex).Render(fmt.Sprint(i+1)),
			s.Cell.Width(colPosition).Render(o.Position.String()),
			lipgloss.NewStyle().Width(colKind).Render(s.Kind(o.Kind)),
			s.Cell.Render(o.ID),
		))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTraversal renders one traversal order of idx.
func renderTraversal(s *Styles, idx *road.Index, order avl.Order) string {
	return renderObstacles(s, fmt.Sprintf("%s traversal", order), idx.Traversal(order))
}

// renderStats renders the index counters on one line.
func renderStats(s *Styles, st road.Stats) string {
	return fmt.Sprintf("%s size=%d height=%d inserted=%d refused=%d removed=%d fast-misses=%d",
		s.Title.Render("index"), st.Len, st.Height, st.Inserted, st.Refused, st.Removed, st.FastMisses)
}

// ordersFromFlag resolves "all" or a single order name.
func ordersFromFlag(value string) ([]avl.Order, error) {
	if strings.EqualFold(strings.TrimSpace(value), "all") {
		return avl.Orders, nil
	}
	order, err := avl.ParseOrder(value)
	if err != nil {
		return nil, err
	}
	return []avl.Order{order}, nil
}
