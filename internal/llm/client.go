// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/connect4good/internal/config"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

const (
	endpointEmbeddings = "embeddings"
	endpointChat       = "chat_completions"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4096
)

// Client calls the embedding and chat endpoints.
type Client struct {
	baseURL        string
	apiKey         string
	embeddingModel string
	chatModel      string
	temperature    float64
	timeout        time.Duration
	httpClient     *http.Client

	embedBreaker *gobreaker.CircuitBreaker[[]float64]
	chatBreaker  *gobreaker.CircuitBreaker[string]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client from the LLM configuration.
func NewClient(cfg *config.LLMConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("llm base URL is required")
	}

	c := &Client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		embeddingModel: cfg.EmbeddingModel,
		chatModel:      cfg.ChatModel,
		temperature:    cfg.Temperature,
		timeout:        cfg.Timeout,
		httpClient:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.embedBreaker = newBreaker[[]float64]("llm-embeddings", cfg)
	c.chatBreaker = newBreaker[string]("llm-chat", cfg)
	return c, nil
}

type embeddingRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Embed returns the embedding vector of text.
func (c *Client) Embed(ctx context.Context, text string) (vec []float64, err error) {
	start := time.Now()
	defer func() { metrics.RecordLLMRequest(endpointEmbeddings, time.Since(start), err) }()

	vec, err = execute(c.embedBreaker, func() ([]float64, error) {
		var resp embeddingResponse
		if err := c.post(ctx, "/embeddings", embeddingRequest{Input: text, Model: c.embeddingModel}, &resp); err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
			return nil, errors.New("response contained no embedding")
		}
		return resp.Data[0].Embedding, nil
	})
	if err != nil {
		return nil, serviceError("embedding", err)
	}
	return vec, nil
}

// Complete returns the model's reply to prompt sent as a single user
// message.
func (c *Client) Complete(ctx context.Context, prompt string) (text string, err error) {
	start := time.Now()
	defer func() { metrics.RecordLLMRequest(endpointChat, time.Since(start), err) }()

	req := chatRequest{
		Model:       c.chatModel,
		Temperature: c.temperature,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	}
	text, err = execute(c.chatBreaker, func() (string, error) {
		var resp chatResponse
		if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("response contained no choices")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", serviceError("generation", err)
	}
	return text, nil
}

// statusError is a non-2xx upstream response.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("upstream returned status %d", e.status)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.status, e.message)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{status: resp.StatusCode, message: upstreamMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// upstreamMessage extracts error.message from an OpenAI-style error body,
// falling back to the raw text.
func upstreamMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

// serviceError converts any client failure into an ExternalService error.
// The detail is shown to API clients and carries the upstream status code at
// most; the full cause stays in Err for logs.
func serviceError(service string, err error) error {
	var se *statusError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return models.ExternalService(service+" service unavailable: circuit breaker open", err)
	case errors.As(err, &se):
		return models.ExternalService(fmt.Sprintf("%s service error: upstream returned status %d", service, se.status), err)
	case errors.Is(err, context.DeadlineExceeded):
		return models.ExternalService(service+" service timed out", err)
	default:
		return models.ExternalService(service+" service error", err)
	}
}
