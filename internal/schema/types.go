package schema

import (
	"gopkg.in/yaml.v3"
)

// Baseline parameter type tags. The set is open: hosts may register renderers
// for additional tags, so parsing accepts any well-formed tag and coverage is
// checked against the renderer registry instead.
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeSelect = "select"
)

// Document represents a full parameter-form document: the declarative schema
// plus the current model being edited.
type Document struct {
	Version    string      `yaml:"version" validate:"required,semver"`
	Name       string      `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Parameters []Parameter `yaml:"parameters" validate:"required,min=1,dive"`
	Model      Model       `yaml:"model,omitempty"`
}

// Parameter describes a single typed field in the schema.
type Parameter struct {
	ID   int    `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
	Type string `yaml:"type" validate:"required,param_type"`

	Number *NumberSpec `yaml:",inline,omitempty"`
	Select *SelectSpec `yaml:",inline,omitempty"`
}

// NumberSpec carries optional bounds for number parameters. The bounds are
// informational: the editing core never enforces them.
type NumberSpec struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// SelectSpec carries the ordered list of allowed option strings.
type SelectSpec struct {
	Options []string `yaml:"options"`
}

// UnmarshalYAML customises parameter decoding to populate type-specific
// structures without conflicts.
func (p *Parameter) UnmarshalYAML(value *yaml.Node) error {
	type baseParameter struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}

	var base baseParameter
	if err := value.Decode(&base); err != nil {
		return err
	}

	p.ID = base.ID
	p.Name = base.Name
	p.Type = base.Type
	p.Number = nil
	p.Select = nil

	switch base.Type {
	case TypeNumber:
		var spec NumberSpec
		if err := value.Decode(&spec); err != nil {
			return err
		}
		p.Number = &spec
	case TypeSelect:
		var spec SelectSpec
		if err := value.Decode(&spec); err != nil {
			return err
		}
		p.Select = &spec
	}

	return nil
}

// Options returns the allowed options for select parameters, nil otherwise.
func (p Parameter) Options() []string {
	if p.Select == nil {
		return nil
	}
	return p.Select.Options
}

// ParameterValue pairs a parameter id with its value-as-text. All values are
// uniform text regardless of the declared parameter type.
type ParameterValue struct {
	ParamID int    `yaml:"param_id"`
	Value   string `yaml:"value"`
}

// Color is auxiliary data carried alongside parameter values. The editing
// core round-trips it untouched.
type Color struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Hex  string `yaml:"hex" validate:"omitempty,color_hex"`
}

// Model is the current set of parameter values plus the color collection.
type Model struct {
	ParamValues []ParameterValue `yaml:"param_values"`
	Colors      []Color          `yaml:"colors,omitempty" validate:"omitempty,dive"`
}

// ValueFor returns the model's value for a parameter id, if present.
func (m Model) ValueFor(id int) (string, bool) {
	for _, pv := range m.ParamValues {
		if pv.ParamID == id {
			return pv.Value, true
		}
	}
	return "", false
}
