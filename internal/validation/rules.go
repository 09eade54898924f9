// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/petrilli/aletheia/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// hasWhitespace checks if string contains any whitespace characters
func hasWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// ResourceName validates key route segments (project, location, keyring, key).
// Segments become path components of the key route, so they must not contain
// slashes or whitespace.
var ResourceName = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != "" && !strings.Contains(s, "/") && !hasWhitespace(s)
	},
	validation.NewError(
		"validation_resource_name",
		"must not be blank or contain slashes or whitespace",
	),
)

// SecretName validates secret object names. Slashes are allowed as logical
// separators (e.g., "db/password") but the name must not begin or end with one.
var SecretName = validation.NewStringRuleWithError(
	func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}
		return !strings.HasPrefix(s, "/") && !strings.HasSuffix(s, "/")
	},
	validation.NewError(
		"validation_secret_name",
		"must not be blank or begin or end with a slash",
	),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
