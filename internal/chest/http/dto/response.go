// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/base64"

	"github.com/petrilli/aletheia/internal/chest/domain"
)

// SecretResponse represents a secret in API responses.
// SECURITY: The Value field contains plaintext and is only included in GET responses.
// Must be transmitted over HTTPS in production.
type SecretResponse struct {
	Name  string `json:"name"`
	Key   string `json:"key"`             // KMS key route that encrypted the value
	Value string `json:"value,omitempty"` // Base64-encoded plaintext, only in GET responses
}

// MapSecretToCreateResponse converts a domain secret to an API response for POST operations.
// The plaintext value is excluded for security (only metadata is returned on creation).
func MapSecretToCreateResponse(secret *domain.Secret) SecretResponse {
	return SecretResponse{
		Name: secret.Name(),
		Key:  secret.Route().String(),
	}
}

// MapSecretToGetResponse converts a domain secret to an API response for GET operations.
// The decrypted value is base64-encoded and included in the response.
func MapSecretToGetResponse(secret *domain.Secret, plaintext []byte) SecretResponse {
	return SecretResponse{
		Name:  secret.Name(),
		Key:   secret.Route().String(),
		Value: base64.StdEncoding.EncodeToString(plaintext),
	}
}
