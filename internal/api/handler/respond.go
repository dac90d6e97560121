package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/waskito/ocpi-versions/internal/domain"
)

// Clock returns the current time; handlers take one so tests can pin it.
type Clock func() time.Time

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func respondStatus(w http.ResponseWriter, status int, code domain.StatusCode, now time.Time) {
	respondJSON(w, status, domain.Failure(code, now))
}

// mapError translates domain sentinel errors to OCPI envelopes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error, now time.Time) {
	switch {
	case errors.Is(err, domain.ErrUnknownVersion):
		respondStatus(w, http.StatusNotFound, domain.StatusUnknownVersion, now)
	default:
		respondStatus(w, http.StatusInternalServerError, domain.StatusServerError, now)
	}
}
