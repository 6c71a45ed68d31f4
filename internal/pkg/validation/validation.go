// Package validation provides a process-wide validator instance and
// helpers for turning validator errors into readable messages.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Get returns the shared validator instance. validator.Validate caches
// struct metadata internally, so a single instance serves the process.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates the given struct with the shared instance.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatError converts a validator error into a single readable message
// describing the first failed field.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldErr := validationErrors[0]
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "file":
		return fmt.Sprintf("%s does not exist: %v", field, fieldErr.Value())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fieldErr.Tag())
	}
}
