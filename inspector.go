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
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/lanedodge/avl"
	"github.com/cybrota/lanedodge/road"
)

// InspectorView is what the main panel of the inspector shows.
type InspectorView int

const (
	ViewTree InspectorView = iota
	ViewTraversal
	ViewHelp
)

const inspectorHelp = `# Index inspector

Type a command at the prompt and press **enter**.

| command | effect |
|---|---|
| insert X Y [KIND] [ID] | add an obstacle |
| delete X Y | remove the obstacle at (X, Y) |
| search X Y | look an obstacle up |
| column X0 X1 | obstacles with X0 <= x <= X1 |
| clear | remove every obstacle |
| check | verify the tree invariants |

## Keys
* **tab** / **shift+tab**: next / previous traversal order
* **ctrl+t**: tree structure
* **f1**: this help
* **pgup** / **pgdown**: scroll
* **esc**: quit
`

// Inspector is the bubbletea model of the interactive index inspector.
type Inspector struct {
	idx     *road.Index
	session *Session
	output  *bytes.Buffer

	input textinput.Model
	panel viewport.Model

	view       InspectorView
	order      avl.Order
	lastOutput string
	lastErr    error

	styles   *Styles
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

// NewInspector creates an inspector over idx.
func NewInspector(idx *road.Index) Inspector {
	styles := NewStyles()
	output := &bytes.Buffer{}

	ti := textinput.New()
	ti.Placeholder = "insert 83 0 special"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	panel := viewport.New(0, 0)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Inspector{
		idx:      idx,
		session:  NewSession(idx, output, styles),
		output:   output,
		input:    ti,
		panel:    panel,
		view:     ViewTree,
		order:    avl.InOrder,
		styles:   styles,
		renderer: renderer,
	}
}

// Init is called when the program starts
func (m Inspector) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.order = avl.Orders[(int(m.order)+1)%len(avl.Orders)]
			m.view = ViewTraversal
			m.refresh()
			return m, nil
		case "shift+tab":
			m.order = avl.Orders[(int(m.order)+len(avl.Orders)-1)%len(avl.Orders)]
			m.view = ViewTraversal
			m.refresh()
			return m, nil
		case "ctrl+t":
			m.view = ViewTree
			m.refresh()
			return m, nil
		case "f1":
			m.view = ViewHelp
			m.refresh()
			return m, nil
		case "pgup", "pgdown":
			m.panel, cmd = m.panel.Update(msg)
			return m, cmd
		case "enter":
			m.execute(m.input.Value())
			m.input.Reset()
			m.refresh()
			return m, nil
		}

		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	return m, nil
}

func (m *Inspector) execute(line string) {
	m.output.Reset()
	m.lastErr = m.session.Exec(line)
	m.lastOutput = strings.TrimRight(m.output.String(), "\n")
}

// refresh renders the current view into the panel.
func (m *Inspector) refresh() {
	switch m.view {
	case ViewTraversal:
		m.panel.SetContent(renderTraversal(m.styles, m.idx, m.order))
	case ViewHelp:
		if m.renderer != nil {
			if rendered, err := m.renderer.Render(inspectorHelp); err == nil {
				m.panel.SetContent(rendered)
				return
			}
		}
		m.panel.SetContent(inspectorHelp)
	default:
		var b strings.Builder
		_ = m.idx.Fprint(&b)
		m.panel.SetContent(b.String())
	}
}

func (m *Inspector) updateLayout() {
	m.input.Width = m.width - 6
	m.panel.Width = m.width - 4
	m.panel.Height = max(m.height-12, 3)
}

func (m Inspector) title() string {
	switch m.view {
	case ViewTraversal:
		return fmt.Sprintf(" 🌳 %s traversal", m.order)
	case ViewHelp:
		return " ❓ Help"
	default:
		return " 🌳 Tree structure"
	}
}

func (m Inspector) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	header := m.styles.Title.Render(m.title()) + "  " + m.styles.Muted.Render(renderStats(m.styles, m.idx.Stats()))

	panel := m.styles.BorderBlurred.
		Width(m.width - 2).
		Render(m.panel.View())

	status := m.styles.Muted.Render(m.lastOutput)
	if m.lastErr != nil {
		status = m.styles.ErrorMessage.Render(m.lastErr.Error())
	}

	prompt := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.styles.InputPrompt.Render("› ") + m.input.View())

	footer := m.styles.Muted.Render("tab orders • ctrl+t tree • f1 help • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, status, prompt, footer)
}

// runInspector starts the inspector in the alternate screen.
func runInspector(idx *road.Index) error {
	InitializeColors()

	program := tea.NewProgram(
		NewInspector(idx),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
