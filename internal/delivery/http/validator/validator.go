// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs can declare their presence checks as tags.
package validator

import "github.com/go-playground/validator/v10"

// CustomValidator wraps a single validator instance shared by all routes.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
