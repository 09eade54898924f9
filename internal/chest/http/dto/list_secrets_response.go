// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/petrilli/aletheia/internal/chest/domain"
)

// ListSecretsResponse represents a list of stored secrets in API responses.
type ListSecretsResponse struct {
	Data []SecretInfoResponse `json:"data"`
}

// SecretInfoResponse represents stored secret metadata in list responses.
// Values are never included; each one requires an explicit GET.
type SecretInfoResponse struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapSecretInfosToListResponse converts domain secret metadata to a list response.
func MapSecretInfosToListResponse(infos []domain.SecretInfo) ListSecretsResponse {
	data := make([]SecretInfoResponse, 0, len(infos))
	for _, info := range infos {
		data = append(data, SecretInfoResponse{
			Name:      info.Name,
			Size:      info.Size,
			UpdatedAt: info.UpdatedAt,
		})
	}

	return ListSecretsResponse{
		Data: data,
	}
}
