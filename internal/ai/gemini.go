package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

type GeminiSummarizer struct {
	client *genai.Client
}

func NewGeminiSummarizer(ctx context.Context, apiKey string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSummarizer{client: client}, nil
}

func (p *GeminiSummarizer) Name() string {
	return geminiModel
}

func (p *GeminiSummarizer) Summarize(ctx context.Context, reportText string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: summaryPrompt + "\n\n" + reportText},
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	content := result.Text()
	if content == "" {
		return "", errors.New("no response from Gemini")
	}

	return content, nil
}
