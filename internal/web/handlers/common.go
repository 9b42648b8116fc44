package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// relayEngineError maps an engine failure onto the HTTP response. Errors
// reported by the engine API keep their status code and message, so the page
// banner shows the engine's own words. Transport failures become a 502 with
// the fallback prefix.
func relayEngineError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *engine.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	respondError(w, http.StatusBadGateway, fmt.Sprintf("%s: %v", fallback, err))
}

// engineErrorMessage extracts the engine's own message when the failure came
// from the engine API, keeping transport errors verbatim otherwise.
func engineErrorMessage(err error) string {
	var apiErr *engine.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
