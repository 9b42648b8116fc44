// Package static embeds the upload page template and its assets.
package static

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/ui"
)

//go:embed index.html.tmpl assets
var content embed.FS

var pageTemplate = template.Must(template.ParseFS(content, "index.html.tmpl"))

// PageData carries everything the upload page template needs to render.
type PageData struct {
	State       ui.State
	Emotions    []config.EmotionLabel
	MaxUploadMB int
}

// PageTemplate returns the parsed upload page template.
func PageTemplate() *template.Template {
	return pageTemplate
}

// Assets returns an http.FileSystem serving the embedded page assets.
func Assets() http.FileSystem {
	assets, err := fs.Sub(content, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(assets)
}
