package converter

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	docSvc "docxgen/internal/domain/services/document"
	"docxgen/internal/service/converter/sanitizer"
)

// htmlConverter converts pasted HTML to markdown.
// Implements a two-stage process:
// 1. Sanitize HTML to drop scripts, styles and attributes the model never needs
// 2. Convert sanitized HTML to markdown
type htmlConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

// NewHTMLConverter creates a new HTML to markdown converter.
func NewHTMLConverter() docSvc.ContentConverter {
	return &htmlConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: md.NewConverter("", true, nil),
	}
}

// Convert transforms HTML to markdown.
func (c *htmlConverter) Convert(ctx context.Context, input []byte) (string, error) {
	sanitized, err := c.sanitizer.Sanitize(string(input))
	if err != nil {
		return "", fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	markdown, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return strings.TrimSpace(markdown), nil
}

// Formats returns the format names for HTML.
func (c *htmlConverter) Formats() []string {
	return []string{FormatHTML, "htm"}
}

// Name returns the converter name for logging.
func (c *htmlConverter) Name() string {
	return "html"
}
