package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knobworks/knobs/internal/theme"
)

func sendKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func typeRunes(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTypingRoutesChangeIntoSession(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = typeRunes(t, m, "x")

	value, ok := m.Session().Value(1)
	require.True(t, ok)
	assert.Equal(t, "db-01x", value)
}

func TestTabMovesFocusAndWraps(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	assert.True(t, m.inputs[2].Focused())
	assert.False(t, m.inputs[1].Focused())

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.focus)
}

func TestSelectCyclingIncludesSentinel(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 2, m.focus)

	// eu -> us -> "" -> eu
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	value, _ := m.Session().Value(3)
	assert.Equal(t, "us", value)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	value, _ = m.Session().Value(3)
	assert.Equal(t, "", value)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	value, _ = m.Session().Value(3)
	assert.Equal(t, "eu", value)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	value, _ = m.Session().Value(3)
	assert.Equal(t, "", value)
}

func TestValidateSetsStatusAndErrors(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})

	assert.Equal(t, "1 required field missing", m.status)
	assert.Contains(t, m.Session().Errors(), 2)
}

func TestEditClearsErrorWithoutRevalidation(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	require.Contains(t, m.Session().Errors(), 2)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "4")

	assert.NotContains(t, m.Session().Errors(), 2)
}

func TestResetRestoresInitialValuesAndInputs(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = typeRunes(t, m, "zzz")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	value, _ := m.Session().Value(1)
	assert.Equal(t, "db-01", value)
	assert.Equal(t, "db-01", m.inputs[1].Value())
	assert.Equal(t, "reverted to initial values", m.status)
}

func TestAcceptQuitsOnlyWhenValid(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.Accepted())
	assert.Equal(t, "1 required field missing", m.status)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeRunes(t, m, "42")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)
	assert.True(t, m.Accepted())
	require.NotNil(t, cmd)
}

func TestEscCancels(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.True(t, m.Cancelled())
	require.NotNil(t, cmd)
}

func TestThemeToggleFlipsVariant(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	require.Equal(t, theme.VariantLight, m.theme.Variant)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.VariantDark, m.theme.Variant)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.VariantLight, m.theme.Variant)
}
