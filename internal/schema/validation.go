package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	knobserrors "github.com/knobworks/knobs/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on an
// entire parameter document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return knobserrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(doc.Parameters))
	for i, param := range doc.Parameters {
		if prev, exists := seen[param.ID]; exists {
			return knobserrors.NewValidationError(fieldForParameter(i, "id"),
				fmt.Sprintf("duplicate parameter id %d (also used by parameters[%d])", param.ID, prev), nil)
		}
		seen[param.ID] = i

		if err := validateParameter(param, i); err != nil {
			return err
		}
	}

	return nil
}

func validateParameter(param Parameter, index int) error {
	switch param.Type {
	case TypeSelect:
		if param.Select == nil || len(param.Select.Options) == 0 {
			return knobserrors.NewValidationError(fieldForParameter(index, "options"),
				"select parameter needs at least one option", nil)
		}
		for j, option := range param.Select.Options {
			if strings.TrimSpace(option) == "" {
				return knobserrors.NewValidationError(fieldForParameter(index, fmt.Sprintf("options[%d]", j)),
					"option must not be blank", nil)
			}
		}
	case TypeNumber:
		if param.Number != nil && param.Number.Min != nil && param.Number.Max != nil {
			if *param.Number.Min > *param.Number.Max {
				return knobserrors.NewValidationError(fieldForParameter(index, "min"),
					fmt.Sprintf("min %v exceeds max %v", *param.Number.Min, *param.Number.Max), nil)
			}
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into typed validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return knobserrors.NewValidationError(field, msg, err)
	}

	return knobserrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForParameter(index int, field string) string {
	return fmt.Sprintf("parameters[%d].%s", index, field)
}
