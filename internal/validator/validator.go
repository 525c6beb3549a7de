// Package validator holds the process-wide struct validator for request payloads.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func GetValidator() *validator.Validate {
	return validate
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}
