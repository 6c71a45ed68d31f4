package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
	"github.com/consoletracker/console-catalog/internal/pkg/validation"
)

var validate = newValidator()

// newValidator builds the validator used for configuration structs and
// registers the custom rules.
func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names (listen_port) instead of Go field names
	// (ListenPort) in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("fatal initialization error: registering the 'cors_origin' validation failed: %v", err))
	}

	return v
}

// validateCORSOrigin adapts the validator field interface to the origin
// check in internal/pkg/validation.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// checkStruct validates a configuration struct and converts the first
// violation into a readable domain error.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s validation failed", contextName))
	}
	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "the web server port (listen_port) must be between 1 and 65535")
	case "TLSCertFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, "the certificate path (tls_cert_file) is required when the TLS server is enabled")
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("the TLS certificate file (tls_cert_file) was not found: '%v'", firstErr.Value()))
		default:
			return apperrors.New(apperrors.InvalidInput, "the TLS certificate path (tls_cert_file) is not valid")
		}
	case "TLSKeyFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, "the key path (tls_key_file) is required when the TLS server is enabled")
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("the TLS key file (tls_key_file) was not found: '%v'", firstErr.Value()))
		default:
			return apperrors.New(apperrors.InvalidInput, "the TLS key path (tls_key_file) is not valid")
		}
	case "Sources":
		switch firstErr.Tag() {
		case "min":
			return apperrors.New(apperrors.InvalidInput, "at least one snapshot source (catalog.sources) must be configured")
		case "unique":
			return apperrors.New(apperrors.InvalidInput, "duplicate source IDs in the snapshot source list (catalog.sources)")
		}
	case "DefaultPageSize":
		return apperrors.New(apperrors.InvalidInput, "the default page size (default_page_size) must be at least 1")
	case "MaxPageSize":
		return apperrors.New(apperrors.InvalidInput, "the maximum page size (max_page_size) must be at least 1")
	}

	switch firstErr.Tag() {
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s: the '%s' setting is required", contextName, firstErr.Field()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("invalid CORS origin format: '%v' (expected Scheme://Host[:Port], e.g. https://example.com)", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s: the '%s' setting is not valid (rule: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
