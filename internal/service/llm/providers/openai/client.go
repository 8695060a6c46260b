// Package openai talks to OpenAI-compatible chat completion endpoints
// (OpenAI itself, OpenRouter, local gateways).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	domainllm "docxgen/internal/domain/services/llm"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Provider implements the LLMProvider interface for chat completions.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL points the provider at another compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// NewProvider creates a new provider with the given API key.
func NewProvider(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	p := &Provider{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "openai"
}

// SupportsModel accepts any non-empty model id; compatible gateways route
// vendor-prefixed ids such as "anthropic/claude-haiku-4-5".
func (p *Provider) SupportsModel(model string) bool {
	return model != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// GenerateResponse sends one chat completion request.
func (p *Provider) GenerateResponse(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by OpenAI provider", req.Model)
	}

	payload := chatRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	}
	if req.System != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: req.System})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.Temperature > 0 {
		temperature := req.Temperature
		payload.Temperature = &temperature
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(respBody, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return nil, fmt.Errorf("openai API returned %d: %s", resp.StatusCode, msg)
	}

	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("openai API returned invalid JSON")
	}

	choice := gjson.GetBytes(respBody, "choices.0")
	if !choice.Exists() {
		return nil, fmt.Errorf("openai API returned no choices")
	}

	model := gjson.GetBytes(respBody, "model").String()
	if model == "" {
		model = req.Model
	}

	return &domainllm.GenerateResponse{
		Text:         choice.Get("message.content").String(),
		Model:        model,
		InputTokens:  int(gjson.GetBytes(respBody, "usage.prompt_tokens").Int()),
		OutputTokens: int(gjson.GetBytes(respBody, "usage.completion_tokens").Int()),
		StopReason:   choice.Get("finish_reason").String(),
	}, nil
}
