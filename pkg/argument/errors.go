package argument

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when a registry already holds an equal argument.
var ErrDuplicate = errors.New("argument already registered")

// ContractError is the panic value raised when an argument is built from
// inputs that break its construction contract.
type ContractError struct {
	Field   string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("argument: invalid %s: %s", e.Field, e.Message)
}
