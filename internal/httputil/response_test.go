package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/petrilli/aletheia/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "secret not found"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.Wrap(apperrors.ErrConflict, "object is not a valid secret"),
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name:           "invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "name must not be blank"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid_input",
		},
		{
			name:           "unavailable",
			err:            apperrors.Wrap(apperrors.ErrUnavailable, "encryption key unavailable"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "unavailable",
		},
		{
			name:           "unknown error",
			err:            apperrors.New("something unexpected"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})

	t.Run("internal error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, apperrors.New("kms exploded: credentials leaked"), logger)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotContains(t, resp.Message, "kms exploded")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, apperrors.New("invalid json payload"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "invalid json payload", resp.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, apperrors.New("value: must not be blank"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}
