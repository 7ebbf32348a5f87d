package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knobserrors "github.com/knobworks/knobs/pkg/errors"
)

func validDocument() *Document {
	minVal := 0.0
	maxVal := 100.0
	return &Document{
		Version: "1.0.0",
		Name:    "service tuning",
		Parameters: []Parameter{
			{ID: 1, Name: "Hostname", Type: TypeString},
			{ID: 2, Name: "Threshold", Type: TypeNumber, Number: &NumberSpec{Min: &minVal, Max: &maxVal}},
			{ID: 3, Name: "Region", Type: TypeSelect, Select: &SelectSpec{Options: []string{"eu", "us"}}},
		},
		Model: Model{
			ParamValues: []ParameterValue{{ParamID: 1, Value: "db-01"}},
			Colors:      []Color{{ID: 1, Name: "accent", Hex: "#ff8800"}},
		},
	}
}

func TestValidateDocumentAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocumentRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidateDocument(nil)
	require.Error(t, err)
}

func TestValidateDocumentRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Parameters[2].ID = 1

	err := ValidateDocument(doc)
	require.Error(t, err)

	var validationErr *knobserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "duplicate parameter id 1")
}

func TestValidateDocumentRejectsEmptySelect(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Parameters[2].Select = &SelectSpec{}

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one option")
}

func TestValidateDocumentRejectsBlankOption(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Parameters[2].Select.Options = []string{"eu", "  "}

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be blank")
}

func TestValidateDocumentRejectsInvertedBounds(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	minVal := 10.0
	maxVal := 5.0
	doc.Parameters[1].Number = &NumberSpec{Min: &minVal, Max: &maxVal}

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds max")
}

func TestValidateDocumentRejectsBadVersion(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Version = "one"

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semver")
}

func TestValidateDocumentRejectsBadColorHex(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Model.Colors[0].Hex = "orange"

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color_hex")
}

func TestValidateDocumentRejectsMalformedTypeTag(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Parameters[0].Type = "Not A Tag"

	err := ValidateDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "param_type")
}
