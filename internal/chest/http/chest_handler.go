// Package http provides HTTP handlers for chest secret operations.
// Secrets are encrypted with a cloud KMS key and stored as bucket objects.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/petrilli/aletheia/internal/chest/domain"
	"github.com/petrilli/aletheia/internal/chest/http/dto"
	"github.com/petrilli/aletheia/internal/chest/usecase"
	"github.com/petrilli/aletheia/internal/httputil"
	customValidation "github.com/petrilli/aletheia/internal/validation"
)

// ChestHandler handles HTTP requests for secret storage operations.
// It delegates encryption and storage to the ChestUseCase.
type ChestHandler struct {
	chestUseCase usecase.ChestUseCase
	logger       *slog.Logger
}

// NewChestHandler creates a new chest handler with required dependencies.
func NewChestHandler(chestUseCase usecase.ChestUseCase, logger *slog.Logger) *ChestHandler {
	return &ChestHandler{
		chestUseCase: chestUseCase,
		logger:       logger,
	}
}

// secretName extracts and validates the secret name from the URL wildcard parameter.
func secretName(c *gin.Context) (string, error) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if err := validation.Validate(name, customValidation.SecretName); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}
	return name, nil
}

// CreateOrUpdateHandler encrypts and stores a secret, replacing any previous value.
// POST /v1/secrets/*name
// Returns 201 Created with secret metadata (excludes plaintext value for security).
func (h *ChestHandler) CreateOrUpdateHandler(c *gin.Context) {
	// Extract and validate name from URL parameter
	name, err := secretName(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateSecretRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Decode base64 value
	value, err := base64.StdEncoding.DecodeString(req.Value)
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid base64 value: %w", err),
			h.logger,
		)
		return
	}

	// Reject oversized plaintext before calling the KMS
	if len(value) > domain.MaxPlaintextSize {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("value exceeds maximum plaintext size of %d bytes", domain.MaxPlaintextSize),
			h.logger,
		)
		return
	}

	// Call use case with decoded bytes
	secret, err := h.chestUseCase.Create(c.Request.Context(), name, value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with metadata only (no plaintext)
	response := dto.MapSecretToCreateResponse(secret)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves and decrypts a secret by name.
// GET /v1/secrets/*name
// Returns 200 OK with the base64-encoded plaintext value.
func (h *ChestHandler) GetHandler(c *gin.Context) {
	// Extract and validate name from URL parameter
	name, err := secretName(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Fetch the stored secret
	secret, err := h.chestUseCase.Get(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Decrypt with the key recorded on the stored object
	plaintext, err := secret.Plaintext(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response (includes plaintext value)
	response := dto.MapSecretToGetResponse(secret, plaintext)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes a secret by its name.
// DELETE /v1/secrets/*name
// Returns 204 No Content.
func (h *ChestHandler) DeleteHandler(c *gin.Context) {
	// Extract and validate name from URL parameter
	name, err := secretName(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	if err := h.chestUseCase.Delete(c.Request.Context(), name); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves stored secret metadata, optionally filtered by name prefix.
// GET /v1/secrets?prefix=db/&limit=50
// Returns 200 OK with secret metadata (excludes values for security).
func (h *ChestHandler) ListHandler(c *gin.Context) {
	// Parse prefix and limit query parameters
	prefix, limit, err := httputil.ParseListQuery(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	infos, err := h.chestUseCase.List(c.Request.Context(), prefix, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapSecretInfosToListResponse(infos)
	c.JSON(http.StatusOK, response)
}
