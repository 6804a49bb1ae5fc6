// Package openai provides a recipe generator backed by the official OpenAI SDK.
// It speaks the chat completions API, so any OpenAI-compatible endpoint works.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

const generatorName = "openai"

// ErrNoChoices is returned when the API answers without any completion choice.
var ErrNoChoices = errors.New("completion returned no choices")

// Generator implements domain.Generator for OpenAI-compatible chat models.
type Generator struct {
	client       openai.Client
	name         string
	model        string
	temperature  float64
	systemPrompt string
}

var _ domain.Generator = (*Generator)(nil)

// NewGenerator creates a new OpenAI generator.
func NewGenerator(config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if config.Model == "" {
		return nil, errors.New("OpenAI model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Generator{
		client:       openai.NewClient(opts...),
		name:         generatorName,
		model:        config.Model,
		temperature:  config.Temperature,
		systemPrompt: domain.SystemPrompt,
	}, nil
}

// Generate sends the prompt as a chat completion and returns the first choice's text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = observability.WithModel(ctx, g.model)
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API")

	resp, err := g.client.Chat.Completions.New(ctx, g.toSDKParams(prompt))
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
		observability.String("finish_reason", resp.Choices[0].FinishReason),
	)

	return resp.Choices[0].Message.Content, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return g.name
}

// Model returns the configured chat model.
func (g *Generator) Model() string {
	return g.model
}

func (g *Generator) toSDKParams(prompt string) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.systemPrompt),
			openai.UserMessage(prompt),
		},
	}

	if g.temperature > 0 {
		params.Temperature = openai.Float(g.temperature)
	}

	return params
}
