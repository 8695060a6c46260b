package handler

import (
	"log/slog"
	"net/http"

	"docxgen/internal/config"
	docSvc "docxgen/internal/domain/services/document"
	"docxgen/internal/httputil"
)

// GenerationHandler serves the generation history
type GenerationHandler struct {
	service docSvc.GenerationService
	logger  *slog.Logger
}

// NewGenerationHandler creates a new generation history handler
func NewGenerationHandler(service docSvc.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		service: service,
		logger:  logger,
	}
}

// ListGenerations returns recent generations, newest first
// GET /api/generations?limit=20
func (h *GenerationHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	limit := QueryInt(r, "limit", config.DefaultHistoryLimit, 1, config.MaxHistoryLimit)

	generations, err := h.service.ListGenerations(r.Context(), httputil.GetUserID(r), limit)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"generations": generations,
	})
}

// GetGeneration returns one history record
// GET /api/generations/{id}
func (h *GenerationHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id", "Generation ID")
	if !ok {
		return
	}

	generation, err := h.service.GetGeneration(r.Context(), httputil.GetUserID(r), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, generation)
}
