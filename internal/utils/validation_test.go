package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/argon/internal/errors"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"not empty ok", NotEmpty("f")("x"), false},
		{"not empty fails", NotEmpty("f")(""), true},
		{"blank fails", NotEmpty("f")("  "), true},
		{"slice ok", SliceNotEmpty[string]("f")([]string{"a"}), false},
		{"slice fails", SliceNotEmpty[string]("f")(nil), true},
		{"each ok", ValidateEach("f", NotEmpty("item"))([]string{"a", "b"}), false},
		{"each fails", ValidateEach("f", NotEmpty("item"))([]string{"a", ""}), true},
		{"conditional skipped", Conditional(func(s string) bool { return s != "" }, ValidModulePath("f"))(""), false},
		{"conditional applied", Conditional(func(s string) bool { return s != "" }, ValidModulePath("f"))("a b"), true},
		{"pattern dir", DirectoryPattern("f")("./internal"), false},
		{"pattern recursive", DirectoryPattern("f")("./internal/..."), false},
		{"pattern bare wildcard", DirectoryPattern("f")("..."), false},
		{"pattern inner wildcard", DirectoryPattern("f")("./a/.../b"), true},
		{"pattern without separator", DirectoryPattern("f")("./a..."), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.Error(t, tt.err)
			} else {
				assert.NoError(t, tt.err)
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	err := ValidateEach("dirs", NotEmpty("dir"))([]string{"a", ""})

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "dirs[1]", validationErr.Field)
	assert.Equal(t, errors.ValidationErrorCode, validationErr.ErrorCode())
	assert.Equal(t, "dirs[1] dir cannot be empty", err.Error())

	err = DirectoryPattern("pattern")("./a/.../b")
	assert.EqualError(t, err, "pattern './a/.../b': '...' is only supported at the end of a pattern")
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NotEmpty("module")).Add(ValidModulePath("module"))

	assert.NoError(t, chain.Validate("example.com/app"))
	assert.ErrorContains(t, chain.Validate(""), "cannot be empty")
	assert.ErrorContains(t, chain.Validate("example.com/a b"), "module 'example.com/a b'")
}
