package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
)

// CompletionInput is one opaque "complete(prompt, options) -> text" request.
// Zero-valued sampling knobs fall back to provider defaults.
type CompletionInput struct {
	System      string
	Prompt      string
	Temperature float64
	TopP        float64
}

type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

// Complete performs a single one-shot request. No retry, no caching; the
// usecases substitute a fallback string on any failure.
func (c *Client) Complete(ctx context.Context, input CompletionInput) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input.Prompt)),
		},
	}

	if input.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: input.System}}
	}
	if input.Temperature > 0 {
		params.Temperature = anthropic.Float(input.Temperature)
	}
	if input.TopP > 0 {
		params.TopP = anthropic.Float(input.TopP)
	}

	message, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if t, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(t.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return text.String(), nil
}
