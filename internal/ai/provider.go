// Package ai produces short natural-language summaries of analysis
// reports. Summaries are a nice-to-have: every caller treats a failed
// or disabled summarizer as "no summary", never as a failed analysis.
package ai

import (
	"context"
	"fmt"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

// Summarizer turns the plain-text analysis report into a two or three
// sentence recap.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, reportText string) (string, error)
}

// FromConfig builds the configured summarizer. Returns (nil, nil) when
// summaries are disabled.
func FromConfig(ctx context.Context, cfg *config.Config) (Summarizer, error) {
	switch cfg.Summary.Provider {
	case "":
		return nil, nil
	case constants.ProviderOpenAI:
		if cfg.OpenAI.GetToken() == "" {
			return nil, fmt.Errorf("OPENAI_TOKEN is required for the openai summary provider")
		}
		return NewOpenAISummarizer(cfg.OpenAI.GetToken()), nil
	case constants.ProviderGemini:
		if cfg.Gemini.GetAPIKey() == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini summary provider")
		}
		return NewGeminiSummarizer(ctx, cfg.Gemini.GetAPIKey())
	case constants.ProviderOllama:
		return NewOllamaSummarizer(cfg.Ollama.URL, cfg.Ollama.Model), nil
	default:
		return nil, fmt.Errorf("unknown summary provider: %s", cfg.Summary.Provider)
	}
}
