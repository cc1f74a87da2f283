package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signUp{Email: "ada@example.com", Password: "correct horse"}))

	err := v.Validate(&signUp{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"email": "email", "password": "min=8"}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
