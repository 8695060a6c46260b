package llm

import (
	"context"
)

// LLMProvider defines the interface that all LLM providers must implement.
// This abstraction allows supporting multiple providers (Anthropic, OpenAI, etc.)
// behind the single formatting call the document pipeline makes.
type LLMProvider interface {
	// GenerateResponse sends one system instruction plus one user prompt
	// and returns the completion text.
	GenerateResponse(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider name (e.g., "anthropic", "openai")
	Name() string

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}

// GenerateRequest contains the parameters for an LLM generation request.
type GenerateRequest struct {
	// System is the fixed instruction describing the output shape
	System string

	// Prompt is the user turn carrying the raw text
	Prompt string

	// Model is the model identifier (e.g., "gpt-4")
	Model string

	MaxTokens   int
	Temperature float64

	// JSONOutput tells providers that can shape their output (or mock it)
	// that a JSON document is expected
	JSONOutput bool
}

// GenerateResponse contains the LLM provider's response.
type GenerateResponse struct {
	// Text is the concatenated text of the completion
	Text string

	// Model is the model that was used (may differ from request if aliased)
	Model string

	// InputTokens is the number of tokens in the input
	InputTokens int

	// OutputTokens is the number of tokens in the output
	OutputTokens int

	// StopReason indicates why generation stopped (e.g., "end_turn", "max_tokens")
	StopReason string
}
