package handler

import "net/http"

// RegisterRoutes wires every endpoint onto mux (Go 1.22+ patterns).
func RegisterRoutes(mux *http.ServeMux, docs *DocumentHandler, generations *GenerationHandler) {
	mux.HandleFunc("GET /{$}", Home)
	mux.HandleFunc("GET /health", HealthCheck)

	// Document routes
	mux.HandleFunc("POST /generate-docx", docs.GenerateDocument)
	mux.HandleFunc("POST /api/documents/render", docs.RenderDocument)

	// History routes
	mux.HandleFunc("GET /api/generations", generations.ListGenerations)
	mux.HandleFunc("GET /api/generations/{id}", generations.GetGeneration)
}
