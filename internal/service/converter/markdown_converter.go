package converter

import (
	"context"

	docSvc "docxgen/internal/domain/services/document"
)

// markdownConverter is a passthrough: the model reads markdown as-is.
type markdownConverter struct{}

// NewMarkdownConverter creates a new markdown passthrough converter.
func NewMarkdownConverter() docSvc.ContentConverter {
	return &markdownConverter{}
}

// Convert returns the input unchanged (passthrough).
func (c *markdownConverter) Convert(ctx context.Context, input []byte) (string, error) {
	return string(input), nil
}

// Formats returns the format names for markdown.
func (c *markdownConverter) Formats() []string {
	return []string{FormatMarkdown, "md"}
}

// Name returns the converter name for logging.
func (c *markdownConverter) Name() string {
	return "markdown"
}
