package handler

import (
	"io"
	"net/http"

	"docxgen/internal/httputil"
)

// WelcomeMessage is served at the root path.
const WelcomeMessage = "👋 Welcome to the AI DOCX Generator API!"

// HealthCheck is a simple health check endpoint
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Home serves the welcome text
// GET /{$}
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, WelcomeMessage)
}
