package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/constants"
	"github.com/UsmanZaka51/emotion-api/internal/report"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// AnalyzeHandler handles the synchronous video processing endpoint backing
// the upload page. The request blocks until the engine has analyzed the
// video, so the page can read output_url straight from the response.
type AnalyzeHandler struct {
	config *config.Config
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(cfg *config.Config) *AnalyzeHandler {
	return &AnalyzeHandler{
		config: cfg,
	}
}

// maxVideoBytes returns the configured video upload cap in bytes.
func (h *AnalyzeHandler) maxVideoBytes() int64 {
	mb := h.config.Web.MaxVideoUploadMB
	if mb <= 0 {
		mb = constants.DefaultMaxVideoUploadMB
	}
	return int64(mb) << 20
}

// ProcessVideo accepts a multipart form with a video_file part, forwards the
// video to the engine, and responds with the analysis report. The report's
// output_url points at the annotated video the engine produced.
func (h *AnalyzeHandler) ProcessVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxVideoBytes())

	if err := r.ParseMultipartForm(constants.UploadMemoryBuffer); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("video exceeds the %dMB upload limit", h.maxVideoBytes()>>20))
			return
		}
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("video_file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no video file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondError(w, http.StatusBadRequest, "no selected file")
		return
	}

	eng := middleware.MustGetEngine(r.Context(), w)
	if eng == nil {
		return
	}

	result, err := eng.ProcessVideo(r.Context(), header.Filename, header.Size, file, nil)
	if err != nil {
		log.Printf("Video processing for %s failed: %v", sanitizeForLog(header.Filename), err)
		relayEngineError(w, err, "video processing failed")
		return
	}

	respondJSON(w, http.StatusOK, report.Build(result, &h.config.Emotions))
}
