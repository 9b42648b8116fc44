package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/constants"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/images"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// RegisterHandler handles face registration endpoints.
type RegisterHandler struct {
	config *config.Config
	stats  *StatsHandler
}

// NewRegisterHandler creates a new registration handler.
func NewRegisterHandler(cfg *config.Config, stats *StatsHandler) *RegisterHandler {
	return &RegisterHandler{
		config: cfg,
		stats:  stats,
	}
}

// AddFace accepts a multipart form with a person_id field and a face_image
// file, downscales oversized images, and forwards the registration to the
// engine. Engine errors are relayed with their original status and message.
func (h *RegisterHandler) AddFace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxImageUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	personID := engine.NormalizePersonID(r.FormValue("person_id"))
	if err := engine.ValidatePersonID(personID); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("face_image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no face image provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, constants.MaxImageUploadSize+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read face image")
		return
	}
	if len(data) > constants.MaxImageUploadSize {
		respondError(w, http.StatusRequestEntityTooLarge, "face image too large")
		return
	}

	resized, err := images.Resize(data, constants.MaxFaceImageDim)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unsupported image format")
		return
	}

	eng := middleware.MustGetEngine(r.Context(), w)
	if eng == nil {
		return
	}

	result, err := eng.AddFace(r.Context(), personID, header.Filename, bytes.NewReader(resized))
	if err != nil {
		log.Printf("Face registration for %s failed: %v", sanitizeForLog(personID), err)
		relayEngineError(w, err, "face registration failed")
		return
	}

	h.stats.InvalidateCache()
	respondJSON(w, http.StatusOK, result)
}
