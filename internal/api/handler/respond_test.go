package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waskito/ocpi-versions/internal/domain"
)

func TestMapError(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   any
	}{
		{"unknown version", domain.ErrUnknownVersion, http.StatusNotFound, float64(2003)},
		{"wrapped unknown version", fmt.Errorf("lookup: %w", domain.ErrUnknownVersion), http.StatusNotFound, float64(2003)},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, float64(3000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapError(rec, tc.err, now)

			require.Equal(t, tc.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body["status_code"])
			assert.NotContains(t, body, "data")
			assert.Equal(t, "2025-01-02T03:04:05Z", body["timestamp"])
		})
	}
}

func TestDocsHandler_OpenAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	NewDocsHandler([]byte(`{}`)).OpenAPI(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "{}", rec.Body.String())
}
