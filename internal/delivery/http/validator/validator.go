// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "workforce/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the echo validator adapter.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate implements echo.Validator; rule failures surface as the
// validation domain error so the error middleware maps them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
