package document

import (
	"strings"

	"docxgen/internal/config"
)

const (
	// FallbackFilenameBase names documents whose title sanitizes to nothing.
	FallbackFilenameBase = "ai_document"
	// FilenameExtension is appended to every derived name.
	FilenameExtension = ".docx"
)

// SanitizeFilename derives a download-safe file name from a free-form title.
// Only ASCII letters, digits, spaces, underscores and hyphens survive; the
// result is trimmed, spaces become underscores and the base is cut to
// config.MaxFilenameBaseLength characters.
func SanitizeFilename(title string) string {
	var sb strings.Builder
	for i := 0; i < len(title); i++ {
		if c := title[i]; allowedFilenameByte(c) {
			sb.WriteByte(c)
		}
	}

	base := strings.ReplaceAll(strings.TrimSpace(sb.String()), " ", "_")
	if len(base) > config.MaxFilenameBaseLength {
		base = base[:config.MaxFilenameBaseLength]
	}
	if base == "" {
		base = FallbackFilenameBase
	}
	return base + FilenameExtension
}

// Multi-byte UTF-8 sequences never pass since every byte is >= 0x80.
func allowedFilenameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ' ', c == '_', c == '-':
		return true
	}
	return false
}
