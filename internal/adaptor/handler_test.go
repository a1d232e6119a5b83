package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/usecase"
	"cinema-pos/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"seat already sold maps to conflict", fmt.Errorf("seat A1: %w", repository.ErrSeatAlreadySold), http.StatusConflict},
		{"seat not found maps to not found", fmt.Errorf("seat Z9: %w", repository.ErrSeatNotFound), http.StatusNotFound},
		{"cart not found maps to not found", fmt.Errorf("cart x: %w", usecase.ErrCartNotFound), http.StatusNotFound},
		{"seat not in cart maps to not found", fmt.Errorf("seat A1: %w", usecase.ErrSeatNotInCart), http.StatusNotFound},
		{"mixed screening maps to bad request", fmt.Errorf("screening y: %w", usecase.ErrMixedScreening), http.StatusBadRequest},
		{"empty cart maps to bad request", fmt.Errorf("cart x: %w", usecase.ErrEmptyCart), http.StatusBadRequest},
		{"invalid input maps to bad request", fmt.Errorf("invalid cart ID format abc"), http.StatusBadRequest},
		{"validation failure maps to bad request", fmt.Errorf("validation failed: title is required"), http.StatusBadRequest},
		{"checkout failure maps to internal error", fmt.Errorf("%w: commit: boom", usecase.ErrCheckoutFailed), http.StatusInternalServerError},
		{"unknown error maps to internal error", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test operation")

			assert.Equal(t, tt.wantCode, rec.Code)

			var body utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
			require.NotEmpty(t, body.Message)

			// Internal failures never leak their cause to the client.
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body.Message)
			}
		})
	}
}
