package document

import (
	"time"

	"github.com/google/uuid"
)

// Generation is the history record of one completed document.
// Document bytes are never stored.
type Generation struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       string    `json:"user_id,omitempty" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Filename     string    `json:"filename" db:"filename"`
	Provider     string    `json:"provider" db:"provider"`
	Model        string    `json:"model" db:"model"`
	Structure    Structure `json:"structure" db:"structure"`
	SourceFormat string    `json:"source_format" db:"source_format"`
	BlockCount   int       `json:"block_count" db:"block_count"`
	SizeBytes    int       `json:"size_bytes" db:"size_bytes"`
	DurationMS   int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
