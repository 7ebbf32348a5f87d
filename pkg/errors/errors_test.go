package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("params.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "params.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "params.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("params.yaml", 0, fmt.Errorf("no such file"))
	require.Contains(t, err.Error(), "parse error: params.yaml: no such file")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("parameters[1].options", "select needs at least one option", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "parameters[1].options", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least one option")
}

func TestUnknownRendererErrorNamesTypeAndParameter(t *testing.T) {
	t.Parallel()

	err := NewUnknownRendererError("toggle", 7)

	var rendererErr *UnknownRendererError
	require.ErrorAs(t, err, &rendererErr)
	require.Equal(t, "toggle", rendererErr.TypeTag)
	require.Equal(t, 7, rendererErr.ParamID)
	require.Contains(t, err.Error(), `"toggle"`)
	require.Contains(t, err.Error(), "parameter 7")
}
