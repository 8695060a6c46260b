package document

import (
	"context"

	models "docxgen/internal/domain/models/document"
)

// GenerationService runs the text-to-document pipeline.
type GenerationService interface {
	// Generate formats raw text through the model and renders the result.
	Generate(ctx context.Context, req *GenerateRequest) (*models.RenderedDocument, error)

	// Render renders caller-supplied structured text without a model call.
	Render(ctx context.Context, req *RenderRequest) (*models.RenderedDocument, error)

	// ListGenerations returns recent history, newest first.
	// userID filters to one user's records when non-empty.
	ListGenerations(ctx context.Context, userID string, limit int) ([]models.Generation, error)

	// GetGeneration returns one history record.
	GetGeneration(ctx context.Context, userID, id string) (*models.Generation, error)
}

// GenerateRequest represents a document generation request
type GenerateRequest struct {
	UserID    string `json:"-"`                   // Set by handler from auth context, not from request body
	Text      string `json:"text"`                // Raw input text (required)
	Structure string `json:"structure,omitempty"` // markdown (default), json or plain
	Format    string `json:"format,omitempty"`    // Source format: text (default), markdown or html
	Model     string `json:"model,omitempty"`     // Overrides the configured model
}

// RenderRequest represents a render-only request
type RenderRequest struct {
	UserID    string `json:"-"`
	Content   string `json:"content"`             // Structured text (required)
	Structure string `json:"structure,omitempty"` // markdown (default), json or plain
}
