// Package render maps parameter type tags to rendering strategies. Hosts get
// built-in renderers for the baseline tags and may override or extend them;
// coverage against a schema is validated at construction time so a missing
// renderer is an explicit error, never a silent gap at render time.
package render

import (
	"sort"

	"github.com/knobworks/knobs/internal/schema"
	knobserrors "github.com/knobworks/knobs/pkg/errors"
)

// Renderer presents one editable control for a parameter: label, current
// value, and the current error message when present.
type Renderer interface {
	Render(ctx Context, p schema.Parameter, value string, errMsg string) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx Context, p schema.Parameter, value string, errMsg string) string

// Render implements Renderer.
func (f RendererFunc) Render(ctx Context, p schema.Parameter, value string, errMsg string) string {
	return f(ctx, p, value, errMsg)
}

// Registry resolves a parameter type tag to its rendering strategy.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry merges caller overrides over the built-in strategies. Overrides
// win per type tag; unspecified tags keep the built-in. The merge happens
// once, at construction.
func NewRegistry(overrides map[string]Renderer) *Registry {
	merged := builtins()
	for tag, renderer := range overrides {
		if renderer == nil {
			continue
		}
		merged[tag] = renderer
	}
	return &Registry{renderers: merged}
}

// Lookup returns the renderer for a type tag.
func (r *Registry) Lookup(typeTag string) (Renderer, bool) {
	renderer, ok := r.renderers[typeTag]
	return renderer, ok
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	tags := make([]string, 0, len(r.renderers))
	for tag := range r.renderers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate checks total coverage: every parameter's type tag must resolve to
// a renderer. The first gap is reported as an UnknownRendererError.
func (r *Registry) Validate(params []schema.Parameter) error {
	for _, p := range params {
		if _, ok := r.renderers[p.Type]; !ok {
			return knobserrors.NewUnknownRendererError(p.Type, p.ID)
		}
	}
	return nil
}

// Render dispatches to the renderer for the parameter's type tag.
func (r *Registry) Render(ctx Context, p schema.Parameter, value string, errMsg string) (string, error) {
	renderer, ok := r.renderers[p.Type]
	if !ok {
		return "", knobserrors.NewUnknownRendererError(p.Type, p.ID)
	}
	return renderer.Render(ctx, p, value, errMsg), nil
}

func builtins() map[string]Renderer {
	return map[string]Renderer{
		schema.TypeString: stringRenderer{},
		schema.TypeNumber: numberRenderer{},
		schema.TypeSelect: selectRenderer{},
	}
}
