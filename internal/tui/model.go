// Package tui hosts the parameter form inside a Bubbletea program: one
// editable control per schema parameter, bound to the editing session.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/knobworks/knobs/internal/render"
	"github.com/knobworks/knobs/internal/schema"
	"github.com/knobworks/knobs/internal/session"
	"github.com/knobworks/knobs/internal/theme"
)

// Model contains the Bubbletea state for the parameter form.
type Model struct {
	title    string
	sess     *session.Session
	registry *render.Registry
	theme    theme.Theme
	keys     keyMap

	params []schema.Parameter
	inputs map[int]textinput.Model
	focus  int

	width  int
	height int

	status    string
	accepted  bool
	cancelled bool
}

// NewModel constructs the form model. Renderer coverage is validated here so
// a parameter with an unknown type tag is rejected before the first render.
func NewModel(title string, sess *session.Session, registry *render.Registry, th theme.Theme) (Model, error) {
	params := sess.Parameters()
	if err := registry.Validate(params); err != nil {
		return Model{}, err
	}

	inputs := make(map[int]textinput.Model, len(params))
	for _, p := range params {
		if !isTextParam(p) {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		if value, ok := sess.Value(p.ID); ok {
			in.SetValue(value)
		}
		inputs[p.ID] = in
	}

	m := Model{
		title:    title,
		sess:     sess,
		registry: registry,
		theme:    th,
		keys:     defaultKeyMap(),
		params:   params,
		inputs:   inputs,
	}
	m.applyFocus()
	return m, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Accepted reports whether the user validated and accepted the form.
func (m Model) Accepted() bool {
	return m.accepted
}

// Cancelled reports whether the user abandoned the form.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Session exposes the editing session backing the form.
func (m Model) Session() *session.Session {
	return m.sess
}

func (m Model) focusedParam() schema.Parameter {
	return m.params[m.focus]
}

func isTextParam(p schema.Parameter) bool {
	return p.Type != schema.TypeSelect
}

// applyFocus synchronises textinput focus state with the focused index.
func (m *Model) applyFocus() {
	if len(m.params) == 0 {
		return
	}
	for id, in := range m.inputs {
		in.Blur()
		m.inputs[id] = in
	}
	p := m.focusedParam()
	if in, ok := m.inputs[p.ID]; ok {
		in.Focus()
		m.inputs[p.ID] = in
	}
}

func (m *Model) moveFocus(delta int) {
	if len(m.params) == 0 {
		return
	}
	m.focus += delta
	if m.focus < 0 {
		m.focus = len(m.params) - 1
	}
	if m.focus >= len(m.params) {
		m.focus = 0
	}
	m.applyFocus()
}

// refreshInputs reloads every text input from the session's working values,
// used after a reset.
func (m *Model) refreshInputs() {
	for _, p := range m.params {
		in, ok := m.inputs[p.ID]
		if !ok {
			continue
		}
		value, _ := m.sess.Value(p.ID)
		in.SetValue(value)
		m.inputs[p.ID] = in
	}
	m.applyFocus()
}
