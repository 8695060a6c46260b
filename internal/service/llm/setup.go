package llm

import (
	"fmt"
	"log/slog"

	"docxgen/internal/config"
	domainllm "docxgen/internal/domain/services/llm"
)

// SetupFormatter creates the configured provider and the formatter that
// wraps it. Returns an error if the provider cannot be built (unknown name,
// missing API key).
func SetupFormatter(cfg *config.Config, logger *slog.Logger) (domainllm.Formatter, error) {
	provider, err := NewProviderFactory(cfg).GetProvider(cfg.LLMProvider)
	if err != nil {
		return nil, fmt.Errorf("provider setup failed: %w", err)
	}

	if !provider.SupportsModel(cfg.LLMModel) {
		return nil, fmt.Errorf("model '%s' is not supported by provider %s", cfg.LLMModel, provider.Name())
	}

	logger.Info("provider available",
		"name", provider.Name(),
		"model", cfg.LLMModel,
		"max_tokens", cfg.LLMMaxTokens,
		"temperature", cfg.LLMTemperature,
	)

	return NewFormatter(provider, FormatterConfig{
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	}, logger), nil
}
