package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"cosmicmatch/internal/config"
)

const defaultTimeout = 90 * time.Second

// ErrEmptyCompletion is returned when the model answers with no text
var ErrEmptyCompletion = errors.New("completion contained no text")

// Client generates text through an OpenAI-compatible chat completions API
type Client struct {
	api         *gopenai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	logger      *slog.Logger
}

func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	apiCfg := gopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	apiCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:         gopenai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
		logger:      logger.With("component", "openai-client"),
	}
}

// Generate sends one system and one user message and returns the reply
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := gopenai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: system},
			{Role: gopenai.ChatMessageRoleUser, Content: user},
		},
	}

	c.logger.Debug("requesting chat completion",
		"model", c.model,
		"prompt_chars", len(system)+len(user),
	)

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *gopenai.APIError
		if errors.As(err, &apiErr) {
			c.logger.Error("chat completion rejected",
				"model", c.model,
				"status_code", apiErr.HTTPStatusCode,
				"type", apiErr.Type,
				"error", apiErr.Message,
			)
		} else {
			c.logger.Error("chat completion failed", "model", c.model, "error", err)
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug("chat completion received",
		"model", resp.Model,
		"duration", time.Since(start),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)

	return text, nil
}
