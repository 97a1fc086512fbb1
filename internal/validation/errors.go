package validation

import (
	"errors"
	"fmt"
)

// Rule failures. FieldError unwraps to one of these.
var (
	ErrRequired  = errors.New("is required")
	ErrTooShort  = errors.New("is too short")
	ErrTooLong   = errors.New("is too long")
	ErrBelowMin  = errors.New("is below the minimum")
	ErrAboveMax  = errors.New("is above the maximum")
	ErrNotNumber = errors.New("is not a number")
)

// FieldError is a single rule violation on a named field
type FieldError struct {
	Field string
	Err   error
	Limit int
}

func (fe *FieldError) Error() string {
	switch {
	case errors.Is(fe.Err, ErrTooShort):
		return fmt.Sprintf("%s must be at least %d characters long", fe.Field, fe.Limit)
	case errors.Is(fe.Err, ErrTooLong):
		return fmt.Sprintf("%s must be at most %d characters long", fe.Field, fe.Limit)
	case errors.Is(fe.Err, ErrBelowMin):
		return fmt.Sprintf("%s must be at least %d", fe.Field, fe.Limit)
	case errors.Is(fe.Err, ErrAboveMax):
		return fmt.Sprintf("%s must be at most %d", fe.Field, fe.Limit)
	}
	return fmt.Sprintf("%s %v", fe.Field, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// FieldErrors extracts every FieldError from err, including joined errors
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		if _, joined := err.(interface{ Unwrap() []error }); !joined {
			return []*FieldError{fe}
		}
	}
	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
	}
	return out
}
