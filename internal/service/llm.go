package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/config"
)

// TextGenerator is an opaque text-completion provider.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatMessage is a single message of a chat-completions request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body posted to the provider
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// ChatCompletionResponse is the subset of the provider reply we read
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// LLMService talks to an OpenAI-compatible chat-completions endpoint (Cerebras by default).
type LLMService struct {
	client      *resty.Client
	model       string
	maxTokens   int
	temperature float64
	log         *zap.Logger
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg config.LLMConfig, log *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM_API_KEY must be set")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &LLMService{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}, nil
}

// Complete sends prompt as a single user message and returns the first choice's content.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	req := ChatCompletionRequest{
		Model: s.model,
		Messages: []ChatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to send request to provider: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		s.log.Error("Provider returned non-OK status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", truncate(resp.String(), 500)),
		)
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), truncate(resp.String(), 200))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", errors.New("no choices in provider response")
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("empty content in provider response")
	}

	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
