package handlers

import (
	"errors"
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// ProcessHandler handles stored-video processing requests. Unlike the upload
// endpoints, the video already lives in an object store; the form names the
// source and destination objects and the engine streams between them.
type ProcessHandler struct {
	config *config.Config
}

// NewProcessHandler creates a new stored-video process handler.
func NewProcessHandler(cfg *config.Config) *ProcessHandler {
	return &ProcessHandler{
		config: cfg,
	}
}

// storedResponse mirrors the stored-video processing contract: a status
// discriminator plus either an output URL or an error message.
type storedResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	OutputURL string `json:"output_url,omitempty"`
}

// Process relays a stored-video processing request to the engine. The four
// object coordinates are required; aws_region is optional and defaults on
// the engine side.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSON(w, http.StatusBadRequest, storedResponse{Status: "error", Message: "invalid form data"})
		return
	}

	req := engine.StoredVideoRequest{
		InputBucket:  r.FormValue("input_bucket"),
		InputKey:     r.FormValue("input_key"),
		OutputBucket: r.FormValue("output_bucket"),
		OutputKey:    r.FormValue("output_key"),
		Region:       r.FormValue("aws_region"),
	}

	if req.InputBucket == "" || req.InputKey == "" || req.OutputBucket == "" || req.OutputKey == "" {
		respondJSON(w, http.StatusBadRequest, storedResponse{Status: "error", Message: "Missing required parameters"})
		return
	}

	eng := middleware.MustGetEngine(r.Context(), w)
	if eng == nil {
		return
	}

	result, err := eng.ProcessStored(r.Context(), req)
	if err != nil {
		var apiErr *engine.APIError
		if errors.As(err, &apiErr) {
			respondJSON(w, apiErr.StatusCode, storedResponse{Status: "error", Message: apiErr.Message})
			return
		}
		respondJSON(w, http.StatusBadGateway, storedResponse{Status: "error", Message: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, storedResponse{Status: result.Status, OutputURL: result.OutputURL})
}
