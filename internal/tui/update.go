package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/knobworks/knobs/internal/schema"
)

// Update handles Bubbletea messages and updates form state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		fieldWidth := msg.Width - labelColumnWidth - 8
		if fieldWidth < 10 {
			fieldWidth = 10
		}
		for id, in := range m.inputs {
			in.Width = fieldWidth
			m.inputs[id] = in
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		ok, errs := m.sess.Validate()
		if ok {
			m.accepted = true
			return m, tea.Quit
		}
		m.status = missingStatus(len(errs))
		return m, nil

	case key.Matches(msg, m.keys.Validate):
		ok, errs := m.sess.Validate()
		if ok {
			m.status = "all parameters valid"
		} else {
			m.status = missingStatus(len(errs))
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
		m.refreshInputs()
		m.status = "reverted to initial values"
		return m, nil

	case key.Matches(msg, m.keys.ThemeToggle):
		m.theme = m.theme.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	}

	if len(m.params) == 0 {
		return m, nil
	}

	p := m.focusedParam()
	if p.Type == schema.TypeSelect {
		switch {
		case key.Matches(msg, m.keys.CycleLeft):
			m.cycleSelect(p, -1)
			return m, nil
		case key.Matches(msg, m.keys.CycleRight):
			m.cycleSelect(p, 1)
			return m, nil
		}
		return m, nil
	}

	// Route everything else to the focused text input and push the raw new
	// value into the session on every interaction.
	in, ok := m.inputs[p.ID]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.inputs[p.ID] = in
	m.sess.Change(p.ID, in.Value())
	return m, cmd
}

// cycleSelect steps the focused select parameter through its options,
// including the leading unselected sentinel.
func (m *Model) cycleSelect(p schema.Parameter, delta int) {
	choices := append([]string{""}, p.Options()...)
	current, _ := m.sess.Value(p.ID)

	pos := 0
	for i, choice := range choices {
		if choice == current {
			pos = i
			break
		}
	}
	pos += delta
	if pos < 0 {
		pos = len(choices) - 1
	}
	if pos >= len(choices) {
		pos = 0
	}
	m.sess.Change(p.ID, choices[pos])
}

func missingStatus(count int) string {
	if count == 1 {
		return "1 required field missing"
	}
	return fmt.Sprintf("%d required fields missing", count)
}
