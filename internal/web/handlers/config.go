package handlers

import (
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	Providers   []ProviderInfo        `json:"providers"`
	Emotions    []config.EmotionLabel `json:"emotions"`
	MaxUploadMB int                   `json:"max_upload_mb"`
}

// ProviderInfo represents information about a summary provider
type ProviderInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Get returns the client-relevant configuration: which summary providers are
// usable, the emotion palette, and the video upload cap.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	providers := []ProviderInfo{
		{
			Name:      constants.ProviderOpenAI,
			Available: h.config.OpenAI.GetToken() != "",
		},
		{
			Name:      constants.ProviderGemini,
			Available: h.config.Gemini.GetAPIKey() != "",
		},
		{
			Name:      constants.ProviderOllama,
			Available: true, // Always available (local)
		},
	}

	maxUploadMB := h.config.Web.MaxVideoUploadMB
	if maxUploadMB <= 0 {
		maxUploadMB = constants.DefaultMaxVideoUploadMB
	}

	respondJSON(w, http.StatusOK, ConfigResponse{
		Providers:   providers,
		Emotions:    h.config.Emotions.Labels,
		MaxUploadMB: maxUploadMB,
	})
}
