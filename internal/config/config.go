// Package config loads the service configuration from environment
// variables. Secrets are kept in unexported fields and exposed through
// getters so they never end up in logs or serialized dumps by accident.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

//go:embed emotions.yaml
var emotionsFile []byte

// Config carries every tunable of the service. Load is the only
// constructor used by the commands; tests build it by hand.
type Config struct {
	Engine  Engine
	OpenAI  OpenAI
	Gemini  Gemini
	Ollama  Ollama
	Summary Summary
	Web     Web

	Emotions Emotions
}

// Engine points at the face/emotion analysis engine the gateway
// forwards uploads to.
type Engine struct {
	URL    string
	apiKey string
}

// GetAPIKey returns the bearer token for the engine, empty when the
// engine runs without authentication.
func (e *Engine) GetAPIKey() string {
	return e.apiKey
}

// OpenAI credentials for the optional analysis summarizer.
type OpenAI struct {
	token string
}

func (o *OpenAI) GetToken() string {
	return o.token
}

// Gemini credentials for the optional analysis summarizer.
type Gemini struct {
	apiKey string
}

func (g *Gemini) GetAPIKey() string {
	return g.apiKey
}

// Ollama points at a local model server, used when no cloud provider
// is configured.
type Ollama struct {
	URL   string
	Model string
}

// Summary selects which provider writes the plain-text recap of an
// analysis. Empty provider disables summaries entirely.
type Summary struct {
	Provider string
}

// Web holds the HTTP server knobs.
type Web struct {
	Port           int
	Host           string
	AllowedOrigins []string

	// MaxVideoUploadMB caps the multipart body of video uploads.
	MaxVideoUploadMB int
}

// Emotions is the embedded palette: every label the engine can report
// plus the bounding box colors it draws into output videos.
type Emotions struct {
	Labels []EmotionLabel `yaml:"labels"`
	Boxes  BoxColors      `yaml:"boxes"`
}

type EmotionLabel struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

type BoxColors struct {
	Known   string `yaml:"known"`
	Unknown string `yaml:"unknown"`
}

// ColorFor returns the display color for an emotion label, falling
// back to the neutral color for labels missing from the palette.
func (e *Emotions) ColorFor(name string) string {
	fallback := ""
	for _, l := range e.Labels {
		if strings.EqualFold(l.Name, name) {
			return l.Color
		}
		if l.Name == "neutral" {
			fallback = l.Color
		}
	}
	return fallback
}

// Names returns the label names in palette order.
func (e *Emotions) Names() []string {
	names := make([]string, 0, len(e.Labels))
	for _, l := range e.Labels {
		names = append(names, l.Name)
	}
	return names
}

// Load reads the configuration from environment variables and parses
// the embedded emotion palette. It fails when the engine URL is
// missing since the service cannot do anything without it.
func Load() (*Config, error) {
	cfg := &Config{
		Engine: Engine{
			URL:    strings.TrimRight(os.Getenv("ENGINE_URL"), "/"),
			apiKey: os.Getenv("ENGINE_API_KEY"),
		},
		OpenAI: OpenAI{
			token: os.Getenv("OPENAI_TOKEN"),
		},
		Gemini: Gemini{
			apiKey: os.Getenv("GEMINI_API_KEY"),
		},
		Ollama: Ollama{
			URL:   os.Getenv("OLLAMA_URL"),
			Model: os.Getenv("OLLAMA_MODEL"),
		},
		Summary: Summary{
			Provider: strings.ToLower(os.Getenv("SUMMARY_PROVIDER")),
		},
		Web: Web{
			Port:             envInt("WEB_PORT", 8080),
			Host:             os.Getenv("WEB_HOST"),
			AllowedOrigins:   splitOrigins(os.Getenv("WEB_ALLOWED_ORIGINS")),
			MaxVideoUploadMB: envInt("UPLOAD_MAX_MB", constants.DefaultMaxVideoUploadMB),
		},
	}

	if cfg.Engine.URL == "" {
		return nil, fmt.Errorf("ENGINE_URL environment variable is required")
	}

	if err := yaml.Unmarshal(emotionsFile, &cfg.Emotions); err != nil {
		return nil, fmt.Errorf("could not parse embedded emotions palette: %w", err)
	}

	return cfg, nil
}

// envInt parses an integer environment variable, returning def when
// the variable is unset or not a number.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	var origins []string
	for origin := range strings.SplitSeq(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
