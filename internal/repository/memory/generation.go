// Package memory holds the in-process generation history used when no
// database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	docRepo "docxgen/internal/domain/repositories/document"
)

// DefaultCapacity bounds how many records are kept before the oldest is evicted.
const DefaultCapacity = 500

// GenerationRepository keeps the newest records in memory.
type GenerationRepository struct {
	mu       sync.RWMutex
	records  []models.Generation // oldest first
	capacity int
}

var _ docRepo.GenerationRepository = (*GenerationRepository)(nil)

// NewGenerationRepository creates an empty repository. A non-positive
// capacity falls back to DefaultCapacity.
func NewGenerationRepository(capacity int) *GenerationRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &GenerationRepository{capacity: capacity}
}

func (r *GenerationRepository) Create(_ context.Context, gen *models.Generation) error {
	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *gen)
	if over := len(r.records) - r.capacity; over > 0 {
		r.records = append([]models.Generation(nil), r.records[over:]...)
	}
	return nil
}

func (r *GenerationRepository) List(_ context.Context, userID string, limit int) ([]models.Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Generation, 0)
	for _, gen := range r.records {
		if userID == "" || gen.UserID == userID {
			out = append(out, gen)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *GenerationRepository) Get(_ context.Context, userID, id string) (*models.Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, gen := range r.records {
		if gen.ID.String() == id && (userID == "" || gen.UserID == userID) {
			found := gen
			return &found, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("generation %s not found", id)}
}
