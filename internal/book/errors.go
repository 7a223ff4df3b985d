package book

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Every setter maps to exactly one of them.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrEmpty           = errors.New("cannot be empty")
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrNonPositive     = errors.New("must be greater than zero")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports which field rejected which value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (value=%q)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }
