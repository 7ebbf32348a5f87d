// Package theme defines the two fixed styling variants for the parameter
// form. A Theme is an explicit value threaded into the rendering boundary;
// the only mutation is the Toggle operation flipping between variants.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Variant identifies one of the two fixed theme variants.
type Variant int

const (
	VariantLight Variant = iota
	VariantDark
)

func (v Variant) String() string {
	if v == VariantDark {
		return "dark"
	}
	return "light"
}

// ColourSet represents a semantic color set: a base color, a content color
// that contrasts with it, and a muted accent.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes the semantic colour slots used by the form.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Success ColourSet
	Neutral ColourSet
}

// InputStyles describes default/focus/invalid styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// Theme bundles the palette with the derived styles the renderers consume.
// Themes are values; styling changes produce new themes rather than mutating
// shared state.
type Theme struct {
	Variant Variant
	Palette Palette

	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Hint         lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Container    lipgloss.Style
	Input        InputStyles
}

// Toggle flips between the two variants.
func (t Theme) Toggle() Theme {
	if t.Variant == VariantDark {
		return Light()
	}
	return Dark()
}

// ForVariant returns the theme for the given variant.
func ForVariant(v Variant) Theme {
	if v == VariantDark {
		return Dark()
	}
	return Light()
}

// Light returns the light theme variant.
func Light() Theme {
	palette := Palette{
		Primary: ColourSet{Base: "#2563eb", OnBase: "#f8fafc", Muted: "#93c5fd"},
		Surface: ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0"},
		Danger:  ColourSet{Base: "#dc2626", OnBase: "#fef2f2", Muted: "#fca5a5"},
		Success: ColourSet{Base: "#16a34a", OnBase: "#f0fdf4", Muted: "#86efac"},
		Neutral: ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#cbd5e1"},
	}
	return build(VariantLight, palette)
}

// Dark returns the dark theme variant.
func Dark() Theme {
	palette := Palette{
		Primary: ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"},
		Surface: ColourSet{Base: "#111827", OnBase: "#f9fafb", Muted: "#1f2937"},
		Danger:  ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c"},
		Success: ColourSet{Base: "#4ade80", OnBase: "#022c22", Muted: "#15803d"},
		Neutral: ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155"},
	}
	return build(VariantDark, palette)
}

func build(variant Variant, p Palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return Theme{
		Variant: variant,
		Palette: p,

		Title:        base.Bold(true).Foreground(p.Primary.Base),
		Label:        base,
		LabelFocused: base.Bold(true).Foreground(p.Primary.Base),
		Hint:         base.Faint(true).Foreground(p.Neutral.Base),
		Error:        base.Foreground(p.Danger.Base),
		Help:         base.Faint(true).Foreground(p.Neutral.Base),
		Container: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Neutral.Muted).
			Padding(1, 2),
		Input: InputStyles{
			Default: base.Foreground(p.Surface.OnBase),
			Focus:   base.Foreground(p.Primary.Base),
			Invalid: base.Foreground(p.Danger.Base),
		},
	}
}
