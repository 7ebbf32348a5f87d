package render

import (
	"fmt"

	"github.com/knobworks/knobs/internal/schema"
	"github.com/knobworks/knobs/internal/theme"
)

// Context provides theme and layout information to renderers during a render
// pass.
type Context struct {
	Theme   theme.Theme
	Focused bool
	Width   int

	// InputView, when non-empty, is the live editable widget view supplied by
	// the host for the focused control. Renderers embed it in place of the
	// plain value text.
	InputView string
}

// ControlID derives the stable identity for a parameter's rendered control,
// usable for label association and test selectors.
func ControlID(p schema.Parameter) string {
	return fmt.Sprintf("param-%d", p.ID)
}
