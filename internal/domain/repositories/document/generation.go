package document

import (
	"context"

	models "docxgen/internal/domain/models/document"
)

// GenerationRepository defines data access operations for generation history
type GenerationRepository interface {
	// Create stores a record. ID and CreatedAt are filled in when zero.
	Create(ctx context.Context, gen *models.Generation) error

	// List returns up to limit records, newest first.
	// An empty userID lists every user's records.
	List(ctx context.Context, userID string, limit int) ([]models.Generation, error)

	// Get returns one record or domain.ErrNotFound.
	Get(ctx context.Context, userID, id string) (*models.Generation, error)
}
