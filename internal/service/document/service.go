package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docxgen/internal/config"
	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	docRepo "docxgen/internal/domain/repositories/document"
	docSvc "docxgen/internal/domain/services/document"
	domainllm "docxgen/internal/domain/services/llm"
)

const (
	missingTextMessage    = "Missing 'text' in request body"
	missingContentMessage = "Missing 'content' in request body"

	// sourceStructured marks history records rendered without a model call.
	sourceStructured = "structured"
)

// generationService implements the GenerationService interface
type generationService struct {
	formatter  domainllm.Formatter
	converters docSvc.ConverterRegistry
	renderer   *Renderer
	repo       docRepo.GenerationRepository
	config     *config.Config
	logger     *slog.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	formatter domainllm.Formatter,
	converters docSvc.ConverterRegistry,
	renderer *Renderer,
	repo docRepo.GenerationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) docSvc.GenerationService {
	return &generationService{
		formatter:  formatter,
		converters: converters,
		renderer:   renderer,
		repo:       repo,
		config:     cfg,
		logger:     logger,
	}
}

// Generate runs convert → format → parse → render → record.
func (s *generationService) Generate(ctx context.Context, req *docSvc.GenerateRequest) (*models.RenderedDocument, error) {
	start := time.Now()

	if strings.TrimSpace(req.Text) == "" {
		return nil, &domain.InputValidationError{Message: missingTextMessage}
	}
	structure := s.resolveStructure(req.Structure)
	if err := s.validateGenerateRequest(req, structure); err != nil {
		return nil, err
	}

	source, err := s.converters.Convert(ctx, req.Format, []byte(req.Text))
	if err != nil {
		var validationErr *domain.InputValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		return nil, &domain.InputValidationError{Message: fmt.Sprintf("could not read %s input: %v", req.Format, err)}
	}
	if strings.TrimSpace(source) == "" {
		return nil, &domain.InputValidationError{Message: "input contains no text after conversion"}
	}

	formatted, err := s.formatter.Format(ctx, &domainllm.FormatRequest{
		Text:      source,
		Structure: structure,
		Model:     req.Model,
	})
	if err != nil {
		return nil, err
	}

	blocks, err := Parse(structure, formatted.Text)
	if err != nil {
		s.logger.Warn("model output did not parse",
			"structure", structure,
			"provider", formatted.Provider,
			"error", err,
		)
		return nil, err
	}

	rendered, err := s.render(blocks)
	if err != nil {
		return nil, err
	}

	s.record(ctx, &models.Generation{
		UserID:       req.UserID,
		Title:        rendered.Title,
		Filename:     rendered.Filename,
		Provider:     formatted.Provider,
		Model:        formatted.Model,
		Structure:    structure,
		SourceFormat: formatName(req.Format),
		BlockCount:   rendered.BlockCount,
		SizeBytes:    len(rendered.Data),
		DurationMS:   time.Since(start).Milliseconds(),
	})

	s.logger.Info("document generated",
		"filename", rendered.Filename,
		"structure", structure,
		"provider", formatted.Provider,
		"model", formatted.Model,
		"blocks", rendered.BlockCount,
		"bytes", len(rendered.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return rendered, nil
}

// Render renders caller-supplied structured text. Parse failures are the
// caller's fault and map to client errors.
func (s *generationService) Render(ctx context.Context, req *docSvc.RenderRequest) (*models.RenderedDocument, error) {
	start := time.Now()

	if strings.TrimSpace(req.Content) == "" {
		return nil, &domain.InputValidationError{Message: missingContentMessage}
	}
	structure := s.resolveStructure(req.Structure)
	if !structure.Valid() {
		return nil, &domain.InputValidationError{Message: fmt.Sprintf("unknown structure %q", req.Structure)}
	}

	blocks, err := Parse(structure, req.Content)
	if err != nil {
		var malformed *domain.MalformedStructureError
		if errors.As(err, &malformed) {
			malformed.ClientSupplied = true
		}
		return nil, err
	}

	rendered, err := s.render(blocks)
	if err != nil {
		return nil, err
	}

	s.record(ctx, &models.Generation{
		UserID:       req.UserID,
		Title:        rendered.Title,
		Filename:     rendered.Filename,
		Structure:    structure,
		SourceFormat: sourceStructured,
		BlockCount:   rendered.BlockCount,
		SizeBytes:    len(rendered.Data),
		DurationMS:   time.Since(start).Milliseconds(),
	})

	return rendered, nil
}

// ListGenerations returns recent history records, newest first.
func (s *generationService) ListGenerations(ctx context.Context, userID string, limit int) ([]models.Generation, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	if limit > config.MaxHistoryLimit {
		limit = config.MaxHistoryLimit
	}
	return s.repo.List(ctx, userID, limit)
}

// GetGeneration returns one history record.
func (s *generationService) GetGeneration(ctx context.Context, userID, id string) (*models.Generation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &domain.InputValidationError{Message: fmt.Sprintf("invalid generation id %q", id)}
	}
	return s.repo.Get(ctx, userID, id)
}

func (s *generationService) render(blocks []models.Block) (*models.RenderedDocument, error) {
	data, err := s.renderer.RenderBytes(blocks)
	if err != nil {
		s.logger.Error("render failed", "blocks", len(blocks), "error", err)
		return nil, err
	}

	title := models.TitleText(blocks)
	return &models.RenderedDocument{
		Filename:    SanitizeFilename(title),
		ContentType: models.ContentTypeDOCX,
		Title:       title,
		BlockCount:  len(blocks),
		Data:        data,
	}, nil
}

// record stores a history entry. Failures are logged, never returned:
// the document is already rendered and the caller should still get it.
func (s *generationService) record(ctx context.Context, gen *models.Generation) {
	if err := s.repo.Create(ctx, gen); err != nil {
		s.logger.Warn("failed to record generation",
			"filename", gen.Filename,
			"error", err,
		)
	}
}

func (s *generationService) resolveStructure(requested string) models.Structure {
	if requested == "" {
		return models.Structure(s.config.DefaultStructure)
	}
	return models.Structure(strings.ToLower(requested))
}

func (s *generationService) validateGenerateRequest(req *docSvc.GenerateRequest, structure models.Structure) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Text, validation.RuneLength(0, s.config.MaxInputChars)),
		validation.Field(&req.Format, validation.By(func(value interface{}) error {
			if !s.converters.Supports(req.Format) {
				return fmt.Errorf("unsupported format %q", req.Format)
			}
			return nil
		})),
	)
	if err == nil && !structure.Valid() {
		err = fmt.Errorf("structure: unknown structure %q", structure)
	}
	if err != nil {
		return &domain.InputValidationError{Message: err.Error()}
	}
	return nil
}

func formatName(format string) string {
	if format == "" {
		return "text"
	}
	return strings.ToLower(format)
}
