package ai

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

//go:embed prompts/summary.txt
var summaryPrompt string

const chatModel = openai.ChatModelGPT4_1Mini

type OpenAISummarizer struct {
	client *openai.Client
}

func NewOpenAISummarizer(apiKey string) *OpenAISummarizer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAISummarizer{client: &client}
}

func (p *OpenAISummarizer) Name() string {
	return chatModel
}

func (p *OpenAISummarizer) Summarize(ctx context.Context, reportText string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(summaryPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(reportText),
					},
				},
			},
		},
		MaxTokens: openai.Int(200),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
