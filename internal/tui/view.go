package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/knobworks/knobs/internal/render"
)

// View renders the current state of the form.
func (m Model) View() string {
	var sections []string

	if m.title != "" {
		sections = append(sections, m.theme.Title.Render(m.title))
	}

	errs := m.sess.Errors()
	for i, p := range m.params {
		focused := i == m.focus
		ctx := render.Context{
			Theme:   m.theme,
			Focused: focused,
			Width:   m.width,
		}
		if in, ok := m.inputs[p.ID]; ok && focused {
			ctx.InputView = in.View()
		}

		value, _ := m.sess.Value(p.ID)
		line, err := m.registry.Render(ctx, p, value, errs[p.ID])
		if err != nil {
			// Coverage is validated at construction; this is unreachable in a
			// correctly constructed form.
			line = m.theme.Error.Render(err.Error())
		}
		sections = append(sections, line)
	}

	if m.status != "" {
		sections = append(sections, "", m.theme.Hint.Render(m.status))
	}
	sections = append(sections, "", m.theme.Help.Render(helpText))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.theme.Container.Render(body) + "\n"
}
