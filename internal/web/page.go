package web

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
	"github.com/UsmanZaka51/emotion-api/internal/ui"
	"github.com/UsmanZaka51/emotion-api/internal/web/static"
)

// servePage renders the upload page. The optional tab query parameter
// selects the active tab; everything else starts from the initial view
// state, which the page script picks up and keeps applying events to.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	state := ui.Initial()
	if tab := ui.Tab(r.URL.Query().Get("tab")); ui.ValidTab(tab) {
		state = ui.Apply(state, ui.TabSelected(tab))
	}

	maxUploadMB := s.config.Web.MaxVideoUploadMB
	if maxUploadMB <= 0 {
		maxUploadMB = constants.DefaultMaxVideoUploadMB
	}

	data := static.PageData{
		State:       state,
		Emotions:    s.config.Emotions.Labels,
		MaxUploadMB: maxUploadMB,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := static.PageTemplate().Execute(w, data); err != nil {
		log.Printf("Failed to render upload page: %v", err)
	}
}

// serveAsset serves the embedded page assets with explicit content
// types and a short client cache.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/assets")

	f, err := static.Assets().Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(path, ".css"):
		contentType = "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		contentType = "application/javascript; charset=utf-8"
	case strings.HasSuffix(path, ".svg"):
		contentType = "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(path, ".ico"):
		contentType = "image/x-icon"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		log.Printf("Failed to serve asset %s: %v", path, err)
	}
}
