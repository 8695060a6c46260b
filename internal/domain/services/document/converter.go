package document

import "context"

// ContentConverter normalises inbound text to what the model should see.
// Each converter handles one source format (text, markdown, html).
//
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Convert transforms input content to markdown-compatible text.
	// Returns an error if conversion fails.
	Convert(ctx context.Context, input []byte) (markdown string, err error)

	// Formats returns the source format names this converter handles.
	Formats() []string

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}

// ConverterRegistry routes a source format to its converter.
type ConverterRegistry interface {
	Convert(ctx context.Context, format string, input []byte) (string, error)
	Supports(format string) bool
}
