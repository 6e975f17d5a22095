package utils

import (
	"fmt"
	"strings"

	"github.com/toyz/argon/internal/errors"
)

// Validator checks a single value and returns an *errors.ValidationError
// describing the first problem found
type Validator[T any] func(T) error

// ValidatorChain runs validators in order
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain, stopping at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field string, value interface{}, message string) *errors.ValidationError {
	text := field + " " + message
	if s, ok := value.(string); ok && s != "" {
		text = fmt.Sprintf("%s '%s': %s", field, s, message)
	}
	return &errors.ValidationError{
		BaseError: errors.New(errors.ValidationErrorCode, text),
		Field:     field,
		Value:     value,
	}
}

// NotEmpty rejects empty or blank strings
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return invalid(field, value, "cannot be empty")
		}
		return nil
	}
}

// SliceNotEmpty rejects empty slices
func SliceNotEmpty[T any](field string) Validator[[]T] {
	return func(value []T) error {
		if len(value) == 0 {
			return invalid(field, value, "cannot be empty")
		}
		return nil
	}
}

// ValidateEach applies itemValidator to every element, naming the failing
// element by index
func ValidateEach[T any](field string, itemValidator Validator[T]) Validator[[]T] {
	return func(value []T) error {
		for i, item := range value {
			if err := itemValidator(item); err != nil {
				return invalid(fmt.Sprintf("%s[%d]", field, i), item, err.Error())
			}
		}
		return nil
	}
}

// Conditional validates only if the condition is true
func Conditional[T any](condition func(T) bool, validator Validator[T]) Validator[T] {
	return func(value T) error {
		if condition(value) {
			return validator(value)
		}
		return nil
	}
}

// DirectoryPattern accepts a directory optionally followed by "/...". The
// wildcard is not supported anywhere else in the pattern.
func DirectoryPattern(field string) Validator[string] {
	return func(value string) error {
		trimmed := strings.TrimSuffix(value, "...")
		if strings.Contains(trimmed, "...") {
			return invalid(field, value, "'...' is only supported at the end of a pattern")
		}
		if trimmed != value && trimmed != "" && !strings.HasSuffix(trimmed, "/") {
			return invalid(field, value, "'...' must follow a path separator")
		}
		return nil
	}
}
