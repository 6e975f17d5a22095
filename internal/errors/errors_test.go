package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/argon/internal/annotations"
)

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "SyntaxError", SyntaxErrorCode.String())
	assert.Equal(t, "ValidationError", ValidationErrorCode.String())
	assert.Equal(t, "GenerationError", GenerationErrorCode.String())
	assert.Equal(t, "FileSystemError", FileSystemErrorCode.String())
	assert.Equal(t, "ConfigurationError", ConfigurationErrorCode.String())
	assert.Equal(t, "UnknownError", ErrorCode(99).String())
	assert.Equal(t, "UnknownError", ErrorCode(-1).String())
}

func TestSourceLocationString(t *testing.T) {
	assert.Equal(t, "unknown location", SourceLocation{}.String())
	assert.Equal(t, "store.go", SourceLocation{File: "store.go"}.String())
	assert.Equal(t, "store.go:12", SourceLocation{File: "store.go", Line: 12}.String())
	assert.Equal(t, "store.go:12:3", SourceLocation{File: "store.go", Line: 12, Column: 3}.String())
	assert.True(t, SourceLocation{Line: 4}.IsEmpty())
}

func TestBaseError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(GenerationErrorCode, "failed to write", cause).
		WithLocation(SourceLocation{File: "store.go", Line: 3}).
		WithContext("path", "store/argon_arguments.go").
		WithSuggestion("").
		WithSuggestion("Free some space")

	assert.Equal(t, "store.go:3: failed to write: disk full", err.Error())
	assert.Equal(t, GenerationErrorCode, err.ErrorCode())
	assert.Equal(t, []Detail{{Key: "path", Value: "store/argon_arguments.go"}}, err.Context())
	assert.Equal(t, []string{"Free some space"}, err.Suggestions())
	assert.ErrorIs(t, err, cause)

	plain := Newf(ValidationErrorCode, "bad %s", "input")
	assert.Equal(t, "bad input", plain.Error())
	assert.Empty(t, plain.Context())
	assert.Empty(t, plain.Suggestions())
	assert.Nil(t, plain.Unwrap())

	var argonErr ArgonError = plain.WithCause(cause)
	assert.Equal(t, "bad input: disk full", argonErr.Error())
}

func TestWithContextReplacesKey(t *testing.T) {
	err := New(GenerationErrorCode, "x").
		WithContext("stage", "render").
		WithContext("file", "a.go").
		WithContext("stage", "format")

	assert.Equal(t, []Detail{{Key: "stage", Value: "format"}, {Key: "file", Value: "a.go"}}, err.Context())
	_, ok := err.Detail("missing")
	assert.False(t, ok)
}

func TestMultipleErrors(t *testing.T) {
	errs := NewMultipleErrors()
	assert.Equal(t, "no errors", errs.Error())
	assert.NoError(t, errs.ErrorOrNil())

	errs.Add(nil)
	assert.True(t, errs.IsEmpty())

	first := NewValidationError("module", "bad path", "malformed")
	errs.Add(first)
	assert.Equal(t, first.Error(), errs.Error())

	errs.Add(WrapFileSystemError("read", "go.mod", os.ErrNotExist))
	assert.Equal(t, 2, errs.Count())
	assert.Contains(t, errs.Error(), "multiple errors (2 total):")
	assert.Contains(t, errs.Error(), "  2. failed to read file 'go.mod'")

	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var validationErr *ValidationError
	require.True(t, stderrors.As(err, &validationErr))
	assert.Equal(t, "module", validationErr.Field)
	assert.Equal(t, "bad path", validationErr.Value)
}

func TestTypedErrors(t *testing.T) {
	loc := SourceLocation{File: "a.go", Line: 1}

	validation := NewValidationError("provider", "NewStore", "declared twice").WithLocation(loc).WithSuggestion("Rename one")
	assert.Equal(t, "a.go:1: provider 'NewStore': declared twice", validation.Error())
	assert.Equal(t, []string{"Rename one"}, validation.Suggestions())

	syntax := NewAnnotationSyntaxError("named", "//axon::named", "missing parameter").WithLocation(loc)
	assert.Equal(t, "a.go:1: named annotation: missing parameter", syntax.Error())
	assert.Equal(t, "//axon::named", syntax.Token)

	parse := WrapParseError("store.go", fmt.Errorf("expected ')'"))
	assert.Equal(t, SyntaxErrorCode, parse.ErrorCode())
	assert.Equal(t, "failed to parse store.go: expected ')'", parse.Error())

	generate := WrapGenerateError("format", "argon_arguments.go", fmt.Errorf("bad source"))
	assert.Equal(t, "format", generate.Stage)
	assert.Equal(t, "argon_arguments.go", generate.TargetFile)
	assert.Equal(t, GenerationErrorCode, NewGenerationError("x.go", "render", "boom").ErrorCode())

	fs := WrapFileSystemError("write", "out.go", os.ErrPermission)
	assert.Equal(t, []Detail{{Key: "operation", Value: "write"}, {Key: "path", Value: "out.go"}}, fs.Context())

	config := WrapConfigurationError("module", "validate", fmt.Errorf("empty"))
	assert.Equal(t, ConfigurationErrorCode, config.ErrorCode())
	configType, ok := config.Detail("config_type")
	assert.True(t, ok)
	assert.Equal(t, "module", configType)
}

func TestWrapAnnotationError(t *testing.T) {
	loc := annotations.SourceLocation{File: "store.go", Line: 7, Column: 1}

	err := WrapAnnotationError(&annotations.ValidationError{
		Type:      annotations.NamedAnnotation,
		Parameter: "db",
		Msg:       "no parameter named 'db'",
		Loc:       loc,
		Hint:      "Check the spelling",
	})
	var validationErr *ValidationError
	require.True(t, stderrors.As(err, &validationErr))
	assert.Equal(t, "db", validationErr.Field)
	assert.Equal(t, SourceLocation{File: "store.go", Line: 7, Column: 1}, validationErr.Location())
	assert.Equal(t, []string{"Check the spelling"}, validationErr.Suggestions())
	assert.Contains(t, err.Error(), "named annotation: parameter 'db'")

	err = WrapAnnotationError(&annotations.SyntaxError{Msg: "unexpected token", Loc: loc})
	var syntaxErr *SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, "store.go:7:1: syntax error: unexpected token", err.Error())
	assert.Empty(t, syntaxErr.Suggestions())

	err = WrapAnnotationError(fmt.Errorf("plain"))
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, "failed to parse annotation: plain", err.Error())
}
