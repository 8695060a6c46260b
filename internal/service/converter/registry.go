package converter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"docxgen/internal/domain"
	docSvc "docxgen/internal/domain/services/document"
)

// Source formats accepted on the generate endpoint.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Registry manages content converters and routes input by source format.
//
// Thread-safe for concurrent access.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]docSvc.ContentConverter // key: format name (e.g., "html")
}

// NewRegistry creates a registry with standard converters pre-registered.
func NewRegistry() *Registry {
	registry := &Registry{
		converters: make(map[string]docSvc.ContentConverter),
	}

	registry.Register(NewTextConverter())
	registry.Register(NewMarkdownConverter())
	registry.Register(NewHTMLConverter())

	return registry
}

// Register adds a converter under each of its format names.
// Names are normalized to lowercase.
func (r *Registry) Register(converter docSvc.ContentConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, format := range converter.Formats() {
		r.converters[strings.ToLower(format)] = converter
	}
}

// GetConverter returns the converter for a format, or nil.
// An empty format means plain text.
func (r *Registry) GetConverter(format string) docSvc.ContentConverter {
	if format == "" {
		format = FormatText
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[strings.ToLower(format)]
}

// Supports reports whether a converter is registered for format.
func (r *Registry) Supports(format string) bool {
	return r.GetConverter(format) != nil
}

// Convert selects the converter for format and runs it.
// Unknown formats are an InputValidationError.
func (r *Registry) Convert(ctx context.Context, format string, input []byte) (string, error) {
	converter := r.GetConverter(format)
	if converter == nil {
		return "", &domain.InputValidationError{
			Message: fmt.Sprintf("unsupported format %q (supported: %s)", format, strings.Join(r.Formats(), ", ")),
		}
	}
	return converter.Convert(ctx, input)
}

// Formats returns all registered format names, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.converters))
	for format := range r.converters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
