package handler

import (
	"errors"
	"log/slog"
	"net/http"

	docSvc "docxgen/internal/domain/services/document"
	"docxgen/internal/httputil"
)

// DocumentHandler handles document generation HTTP requests
type DocumentHandler struct {
	service docSvc.GenerationService
	logger  *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service docSvc.GenerationService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateDocument formats raw text with the model and returns a .docx attachment
// POST /generate-docx
func (h *DocumentHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req docSvc.GenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		h.respondParseError(w, err)
		return
	}

	req.UserID = httputil.GetUserID(r)

	doc, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondAttachment(w, doc.Filename, doc.ContentType, doc.Data)
}

// RenderDocument renders caller-supplied structured text without a model call
// POST /api/documents/render
func (h *DocumentHandler) RenderDocument(w http.ResponseWriter, r *http.Request) {
	var req docSvc.RenderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		h.respondParseError(w, err)
		return
	}

	req.UserID = httputil.GetUserID(r)

	doc, err := h.service.Render(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondAttachment(w, doc.Filename, doc.ContentType, doc.Data)
}

func (h *DocumentHandler) respondParseError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		handleError(w, h.logger, err)
		return
	}
	respondBadRequest(w, "Invalid request body")
}

func respondBadRequest(w http.ResponseWriter, message string) {
	httputil.RespondError(w, http.StatusBadRequest, message)
}
