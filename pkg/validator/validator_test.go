package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=2"`
	Gender string `validate:"omitempty,oneof=Male Female Other"`
}

func TestValidate_OK(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "a@b.com", Name: "Jo", Gender: "Male"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "not-an-email", Gender: "X"})
	require.Error(t, err)

	fields := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", fields["Email"])
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "Gender must be one of: Male Female Other", fields["Gender"])
}
