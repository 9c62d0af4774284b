package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	v, err := New()
	require.NoError(t, err)

	fields := v.Struct(samplePayload{Email: "john@x.com", Password: "Pa$$w0rd"})
	assert.Nil(t, fields)
}

func TestStruct_TranslatedFieldErrors(t *testing.T) {
	t.Parallel()

	v, err := New()
	require.NoError(t, err)

	fields := v.Struct(samplePayload{Email: "not-an-email", Password: "short"})
	require.Len(t, fields, 2)
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}
