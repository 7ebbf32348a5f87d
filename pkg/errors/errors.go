package errors

import (
	"fmt"
)

// ParseError represents a document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures schema or document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownRendererError indicates a parameter declares a type tag that no
// registered renderer covers. Coverage is checked when a form is constructed,
// never during a render pass.
type UnknownRendererError struct {
	TypeTag string
	ParamID int
}

// NewUnknownRendererError constructs an UnknownRendererError.
func NewUnknownRendererError(typeTag string, paramID int) error {
	return &UnknownRendererError{TypeTag: typeTag, ParamID: paramID}
}

func (e *UnknownRendererError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("renderer error: no renderer registered for type %q (parameter %d)", e.TypeTag, e.ParamID)
}
