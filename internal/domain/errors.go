package domain

import (
	"errors"
	"fmt"
)

// ValidationKind classifies an input validation failure.
type ValidationKind string

const (
	InvalidYears     ValidationKind = "InvalidYears"
	InvalidRate      ValidationKind = "InvalidRate"
	InvalidNumber    ValidationKind = "InvalidNumber"
	InvalidFrequency ValidationKind = "InvalidFrequency"
)

// Sentinels for errors.Is matching against a *ValidationError.
var (
	ErrInvalidYears     = errors.New("invalid years")
	ErrInvalidRate      = errors.New("invalid rate")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidFrequency = errors.New("invalid compounding frequency")
)

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Kind    ValidationKind `json:"kind"`
	Field   string         `json:"field"`
	Value   any            `json:"-"`
	Message string         `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %v)", e.Kind, e.Field, e.Message, e.Value)
}

// Unwrap maps the kind to its sentinel error.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case InvalidYears:
		return ErrInvalidYears
	case InvalidRate:
		return ErrInvalidRate
	case InvalidNumber:
		return ErrInvalidNumber
	case InvalidFrequency:
		return ErrInvalidFrequency
	}
	return nil
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
