// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/petrilli/aletheia/internal/validation"
)

// CreateSecretRequest contains the parameters for storing a secret.
// The secret name is extracted from the URL parameter, not the request body.
type CreateSecretRequest struct {
	Value string `json:"value"` // Base64-encoded plaintext
}

// Validate checks if the create secret request is valid.
func (r *CreateSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}
