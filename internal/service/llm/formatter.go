package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	domainllm "docxgen/internal/domain/services/llm"
	"docxgen/internal/service/document"
)

var errEmptyCompletion = errors.New("model returned no text")

// FormatterConfig holds the request parameters for every formatting call.
type FormatterConfig struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration // 0 means only the caller's context bounds the call
}

// formatter implements domainllm.Formatter on top of one provider.
type formatter struct {
	provider domainllm.LLMProvider
	config   FormatterConfig
	logger   *slog.Logger
}

// NewFormatter creates a formatter for the given provider.
func NewFormatter(provider domainllm.LLMProvider, cfg FormatterConfig, logger *slog.Logger) domainllm.Formatter {
	return &formatter{
		provider: provider,
		config:   cfg,
		logger:   logger,
	}
}

// Format sends one request and returns the structured text with any
// surrounding code fence removed. Nothing is retried.
func (f *formatter) Format(ctx context.Context, req *FormatRequest) (*FormatResult, error) {
	model := req.Model
	if model == "" {
		model = f.config.Model
	}
	if !f.provider.SupportsModel(model) {
		return nil, &domain.InputValidationError{
			Message: "model '" + model + "' is not supported by provider " + f.provider.Name(),
		}
	}

	if f.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := f.provider.GenerateResponse(ctx, &domainllm.GenerateRequest{
		System:      SystemPrompt(req.Structure),
		Prompt:      UserPrompt(req.Text),
		Model:       model,
		MaxTokens:   f.config.MaxTokens,
		Temperature: f.config.Temperature,
		JSONOutput:  req.Structure == models.StructureJSON,
	})
	if err != nil {
		f.logger.Error("formatting call failed",
			"provider", f.provider.Name(),
			"model", model,
			"error", err,
		)
		return nil, &domain.FormattingServiceError{Provider: f.provider.Name(), Err: err}
	}

	text := strings.TrimSpace(document.StripCodeFence(resp.Text))
	if text == "" {
		return nil, &domain.FormattingServiceError{Provider: f.provider.Name(), Err: errEmptyCompletion}
	}

	if resp.StopReason == "max_tokens" || resp.StopReason == "length" {
		f.logger.Warn("completion truncated",
			"provider", f.provider.Name(),
			"model", resp.Model,
			"max_tokens", f.config.MaxTokens,
		)
	}

	f.logger.Debug("formatting call completed",
		"provider", f.provider.Name(),
		"model", resp.Model,
		"structure", req.Structure,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &FormatResult{
		Text:         text,
		Provider:     f.provider.Name(),
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}, nil
}

// Aliases keep call sites in this package short.
type (
	FormatRequest = domainllm.FormatRequest
	FormatResult  = domainllm.FormatResult
)
