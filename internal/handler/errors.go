package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"docxgen/internal/domain"
	"docxgen/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		httpErr     domain.HTTPError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.As(err, &httpErr):
		status := httpErr.StatusCode()
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", "status", status, "error", err)
		}
		httputil.RespondError(w, status, httpErr.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
