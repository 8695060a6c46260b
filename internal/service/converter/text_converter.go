package converter

import (
	"context"
	"strings"

	docSvc "docxgen/internal/domain/services/document"
)

// textConverter normalizes plain text before it is sent to the model.
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() docSvc.ContentConverter {
	return &textConverter{}
}

// Convert unifies line endings and trims surrounding whitespace.
func (c *textConverter) Convert(ctx context.Context, input []byte) (string, error) {
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	return strings.TrimSpace(text), nil
}

// Formats returns the format names for plain text.
func (c *textConverter) Formats() []string {
	return []string{FormatText, "txt", "plaintext"}
}

// Name returns the converter name for logging.
func (c *textConverter) Name() string {
	return "plaintext"
}
