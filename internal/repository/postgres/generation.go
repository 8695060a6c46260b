package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	"docxgen/internal/domain/repositories"
	docRepo "docxgen/internal/domain/repositories/document"
)

// PostgresGenerationRepository implements the GenerationRepository interface
type PostgresGenerationRepository struct {
	db     repositories.DBTX
	tables *TableNames
	logger *slog.Logger
}

// NewGenerationRepository creates a new PostgresGenerationRepository
func NewGenerationRepository(config *RepositoryConfig) *PostgresGenerationRepository {
	return &PostgresGenerationRepository{
		db:     config.DB,
		tables: config.Tables,
		logger: config.Logger,
	}
}

var _ docRepo.GenerationRepository = (*PostgresGenerationRepository)(nil)

const generationColumns = `id, user_id, title, filename, provider, model, structure,
	source_format, block_count, size_bytes, duration_ms, created_at`

// EnsureSchema creates the history table and its index if missing.
func (r *PostgresGenerationRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id            UUID PRIMARY KEY,
			user_id       TEXT NOT NULL DEFAULT '',
			title         TEXT NOT NULL DEFAULT '',
			filename      TEXT NOT NULL,
			provider      TEXT NOT NULL DEFAULT '',
			model         TEXT NOT NULL DEFAULT '',
			structure     TEXT NOT NULL,
			source_format TEXT NOT NULL,
			block_count   INTEGER NOT NULL,
			size_bytes    INTEGER NOT NULL,
			duration_ms   BIGINT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS %[1]s_user_created_idx ON %[1]s (user_id, created_at DESC);
	`, r.tables.Generations)

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure generations schema: %w", err)
	}
	return nil
}

// Create inserts a generation record
func (r *PostgresGenerationRepository) Create(ctx context.Context, gen *models.Generation) error {
	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, r.tables.Generations, generationColumns)

	_, err := r.db.Exec(ctx, query,
		gen.ID,
		gen.UserID,
		gen.Title,
		gen.Filename,
		gen.Provider,
		gen.Model,
		string(gen.Structure),
		gen.SourceFormat,
		gen.BlockCount,
		gen.SizeBytes,
		gen.DurationMS,
		gen.CreatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("generation %s already exists: %w", gen.ID, err)
		}
		return fmt.Errorf("create generation: %w", err)
	}

	r.logger.Debug("generation recorded", "id", gen.ID, "filename", gen.Filename)
	return nil
}

// List returns the newest records, optionally for one user
func (r *PostgresGenerationRepository) List(ctx context.Context, userID string, limit int) ([]models.Generation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`, generationColumns, r.tables.Generations)

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	generations := make([]models.Generation, 0)
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		generations = append(generations, *gen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return generations, nil
}

// Get retrieves one record. userID restricts the lookup when non-empty.
func (r *PostgresGenerationRepository) Get(ctx context.Context, userID, id string) (*models.Generation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND ($2 = '' OR user_id = $2)
	`, generationColumns, r.tables.Generations)

	gen, err := scanGeneration(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("generation %s not found", id)}
		}
		return nil, fmt.Errorf("get generation: %w", err)
	}

	return gen, nil
}

func scanGeneration(row pgx.Row) (*models.Generation, error) {
	var (
		gen       models.Generation
		structure string
	)
	err := row.Scan(
		&gen.ID,
		&gen.UserID,
		&gen.Title,
		&gen.Filename,
		&gen.Provider,
		&gen.Model,
		&structure,
		&gen.SourceFormat,
		&gen.BlockCount,
		&gen.SizeBytes,
		&gen.DurationMS,
		&gen.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	gen.Structure = models.Structure(structure)
	return &gen, nil
}
