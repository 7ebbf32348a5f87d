package render

import (
	"fmt"
	"strings"

	"github.com/knobworks/knobs/internal/schema"
)

const labelWidth = 18

// UnselectedLabel is the display text for the select sentinel whose value is
// the empty string.
const UnselectedLabel = "(none)"

type stringRenderer struct{}

func (stringRenderer) Render(ctx Context, p schema.Parameter, value string, errMsg string) string {
	body := ctx.InputView
	if body == "" {
		body = textValue(ctx, value, errMsg)
	}
	return renderField(ctx, p, body, "", errMsg)
}

type numberRenderer struct{}

func (numberRenderer) Render(ctx Context, p schema.Parameter, value string, errMsg string) string {
	body := ctx.InputView
	if body == "" {
		body = textValue(ctx, value, errMsg)
	}
	return renderField(ctx, p, body, boundsHint(p), errMsg)
}

type selectRenderer struct{}

func (selectRenderer) Render(ctx Context, p schema.Parameter, value string, errMsg string) string {
	segments := make([]string, 0, len(p.Options())+1)
	segments = append(segments, renderOption(ctx, UnselectedLabel, value == ""))
	for _, option := range p.Options() {
		segments = append(segments, renderOption(ctx, option, option == value))
	}
	return renderField(ctx, p, strings.Join(segments, "  "), "", errMsg)
}

func renderOption(ctx Context, text string, selected bool) string {
	if selected {
		boxed := "[" + text + "]"
		if ctx.Focused {
			return ctx.Theme.LabelFocused.Render(boxed)
		}
		return ctx.Theme.Label.Render(boxed)
	}
	return ctx.Theme.Hint.Render(text)
}

// renderField assembles the labeled control line plus an optional inline
// error line. The error marker doubles as the discoverable invalid flag.
func renderField(ctx Context, p schema.Parameter, body string, hint string, errMsg string) string {
	labelStyle := ctx.Theme.Label
	if ctx.Focused {
		labelStyle = ctx.Theme.LabelFocused
	}

	label := padLabel(p.Name + ":")
	line := labelStyle.Render(label) + " " + body
	if hint != "" {
		line += " " + ctx.Theme.Hint.Render(hint)
	}

	if errMsg == "" {
		return line
	}
	errorLine := strings.Repeat(" ", labelWidth+1) + ctx.Theme.Error.Render("✗ "+errMsg)
	return line + "\n" + errorLine
}

func textValue(ctx Context, value string, errMsg string) string {
	style := ctx.Theme.Input.Default
	if errMsg != "" {
		style = ctx.Theme.Input.Invalid
	} else if ctx.Focused {
		style = ctx.Theme.Input.Focus
	}
	return style.Render(value)
}

func boundsHint(p schema.Parameter) string {
	if p.Number == nil {
		return ""
	}
	switch {
	case p.Number.Min != nil && p.Number.Max != nil:
		return fmt.Sprintf("(%v to %v)", *p.Number.Min, *p.Number.Max)
	case p.Number.Min != nil:
		return fmt.Sprintf("(min %v)", *p.Number.Min)
	case p.Number.Max != nil:
		return fmt.Sprintf("(max %v)", *p.Number.Max)
	}
	return ""
}

func padLabel(label string) string {
	if len(label) >= labelWidth {
		return label
	}
	return label + strings.Repeat(" ", labelWidth-len(label))
}
