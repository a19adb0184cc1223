package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Internal string `json:"-"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Email: "maria@example.com", Password: "segredo123"}))

	err := v.Validate(&signup{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "min", Param: "8"},
	}, Details(err))
}

func TestDetails_OtherErrors(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
	assert.Nil(t, Details(nil))
}
