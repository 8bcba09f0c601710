package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/warebot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer implements ai.Completer using OpenAI-compatible chat APIs.
type Completer struct {
	client llms.Model
	logger *slog.Logger
}

// newCompleter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newCompleter(config *ai.Config) (*Completer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat completion
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.CompletionHost),
		openai.WithToken("none"),
		openai.WithModel(config.CompletionModel),
	)
	if err != nil {
		return nil, err
	}

	return &Completer{
		client: client,
		logger: slog.Default().With("component", "openai-completer"),
	}, nil
}

// NewCompleter creates a new completer using the provided configuration.
//
// Returns ai.Completer interface to enforce abstraction.
func NewCompleter(config *ai.Config) (ai.Completer, error) {
	return newCompleter(config)
}

// Complete sends the assembled prompt to the model and returns the answer text.
// Grounding is carried entirely by the prompt's instruction block; the model
// output is returned as-is apart from whitespace trimming.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("generating completion", "promptLength", len(prompt))

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		c.logger.Error("failed to generate completion", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		c.logger.Warn("no choices returned from model")
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
