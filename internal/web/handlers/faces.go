package handlers

import (
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// FacesHandler handles registered-face endpoints.
type FacesHandler struct {
	config *config.Config
}

// NewFacesHandler creates a new faces handler.
func NewFacesHandler(cfg *config.Config) *FacesHandler {
	return &FacesHandler{
		config: cfg,
	}
}

// List returns the identities registered with the engine.
func (h *FacesHandler) List(w http.ResponseWriter, r *http.Request) {
	eng := middleware.MustGetEngine(r.Context(), w)
	if eng == nil {
		return
	}

	faces, err := eng.ListFaces(r.Context())
	if err != nil {
		relayEngineError(w, err, "failed to list faces")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"faces": faces,
		"count": len(faces),
	})
}
