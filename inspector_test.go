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
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/lanedodge/avl"
	"github.com/cybrota/lanedodge/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Inspector, msg tea.Msg) (Inspector, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	inspector, ok := next.(Inspector)
	require.True(t, ok)
	return inspector, cmd
}

func TestInspectorWaitsForWindowSize(t *testing.T) {
	m := NewInspector(quietIndex())
	assert.Equal(t, "Initializing...", m.View())
	assert.NotNil(t, m.Init())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.ready)
	assert.Contains(t, m.View(), "Tree structure")
}

func TestInspectorRunsCommands(t *testing.T) {
	idx := quietIndex()
	m := NewInspector(idx)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m.input.SetValue("insert 83 0 special")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, idx.Len())
	assert.NoError(t, m.lastErr)
	assert.Contains(t, m.lastOutput, "inserted (83, 0)")
	assert.Empty(t, m.input.Value())

	m.input.SetValue("launch")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.lastErr, ErrUnknownCommand)
	assert.Contains(t, m.View(), "unknown command")
}

func TestInspectorCyclesOrders(t *testing.T) {
	idx := quietIndex()
	for _, p := range []road.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0}} {
		require.True(t, idx.Insert(road.Obstacle{Position: p}))
	}

	m := NewInspector(idx)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, ViewTree, m.view)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewTraversal, m.view)
	assert.Equal(t, avl.PreOrder, m.order)

	for range avl.Orders {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, avl.PreOrder, m.order)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, avl.BreadthFirst, m.order)
	assert.Contains(t, m.View(), "breadthfirst traversal")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, ViewTree, m.view)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, ViewHelp, m.view)
}

func TestInspectorQuits(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewInspector(quietIndex())
		_, cmd := update(t, m, tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}
