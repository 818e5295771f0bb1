package bankcore

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer = errors.New("internal server error")

	// ErrAcctNumExhausted is returned when account number generation
	// keeps colliding with existing accounts after the retry budget.
	ErrAcctNumExhausted = errors.New("could not allocate a unique account number")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

func (e ErrNotFound) Error() string {
	if e.Entity == "" {
		return "record not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

type ErrDuplicate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (e ErrDuplicate) Error() string {
	return fmt.Sprintf("%s already taken: %s", e.Field, e.Value)
}
