package converter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docxgen/internal/domain"
)

func TestRegistry_Formats(t *testing.T) {
	r := NewRegistry()

	for _, format := range []string{"", "text", "TEXT", "txt", "markdown", "md", "html", "htm"} {
		assert.True(t, r.Supports(format), "format %q should be supported", format)
	}
	assert.False(t, r.Supports("pdf"))
}

func TestRegistry_UnknownFormat(t *testing.T) {
	_, err := NewRegistry().Convert(context.Background(), "pdf", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), `"pdf"`)
}

func TestTextConverter(t *testing.T) {
	got, err := NewRegistry().Convert(context.Background(), FormatText, []byte("  line one\r\nline two  \r\n"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestMarkdownConverter_Passthrough(t *testing.T) {
	in := "# Title\n\n- item\n"
	got, err := NewRegistry().Convert(context.Background(), FormatMarkdown, []byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestHTMLConverter(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		contains    []string
		notContains []string
	}{
		{
			name:     "headings and lists",
			html:     "<h1>Plan</h1><ul><li>One</li><li>Two</li></ul>",
			contains: []string{"# Plan", "- One", "- Two"},
		},
		{
			name:        "scripts removed",
			html:        "<p>Hello</p><script>alert('x')</script>",
			contains:    []string{"Hello"},
			notContains: []string{"alert", "script"},
		},
		{
			name:        "event handlers removed",
			html:        `<p onclick="steal()">Click</p>`,
			contains:    []string{"Click"},
			notContains: []string{"steal"},
		},
		{
			name:     "emphasis kept",
			html:     "<p><strong>Bold</strong> text</p>",
			contains: []string{"**Bold** text"},
		},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Convert(context.Background(), FormatHTML, []byte(tt.html))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.False(t, strings.Contains(got, unwanted), "output should not contain %q: %s", unwanted, got)
			}
		})
	}
}
