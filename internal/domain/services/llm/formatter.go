package llm

import (
	"context"

	models "docxgen/internal/domain/models/document"
)

// Formatter turns raw text into structured text through one model call.
type Formatter interface {
	// Format returns structured text in the requested shape. model may be
	// empty to use the configured default.
	Format(ctx context.Context, req *FormatRequest) (*FormatResult, error)
}

// FormatRequest is one formatting call.
type FormatRequest struct {
	Text      string
	Structure models.Structure
	Model     string
}

// FormatResult is the structured text plus what produced it.
type FormatResult struct {
	Text         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
}
