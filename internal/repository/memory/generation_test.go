package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
)

func TestGenerationRepository_ListNewestFirst(t *testing.T) {
	repo := NewGenerationRepository(0)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.Generation{
			Filename:  name + ".docx",
			UserID:    "u1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Generation{Filename: "other.docx", UserID: "u2", CreatedAt: base}))

	got, err := repo.List(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c.docx", got[0].Filename)
	assert.Equal(t, "b.docx", got[1].Filename)

	all, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestGenerationRepository_Eviction(t *testing.T) {
	repo := NewGenerationRepository(2)
	ctx := context.Background()

	first := &models.Generation{Filename: "1.docx"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &models.Generation{Filename: "2.docx"}))
	require.NoError(t, repo.Create(ctx, &models.Generation{Filename: "3.docx"}))

	all, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.Get(ctx, "", first.ID.String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGenerationRepository_GetScopedToUser(t *testing.T) {
	repo := NewGenerationRepository(0)
	ctx := context.Background()

	gen := &models.Generation{Filename: "mine.docx", UserID: "owner"}
	require.NoError(t, repo.Create(ctx, gen))

	got, err := repo.Get(ctx, "owner", gen.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "mine.docx", got.Filename)

	_, err = repo.Get(ctx, "intruder", gen.ID.String())
	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
