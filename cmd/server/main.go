package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"docxgen/internal/auth"
	"docxgen/internal/config"
	docRepo "docxgen/internal/domain/repositories/document"
	"docxgen/internal/handler"
	"docxgen/internal/middleware"
	"docxgen/internal/repository/memory"
	"docxgen/internal/repository/postgres"
	"docxgen/internal/service/converter"
	"docxgen/internal/service/document"
	serviceLLM "docxgen/internal/service/llm"
	"docxgen/internal/style"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger, closeLog, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"llm_provider", cfg.LLMProvider,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional bearer-token auth
	var jwtVerifier auth.JWTVerifier
	if cfg.AuthJWKSURL != "" {
		jwtVerifier, err = auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
	} else {
		logger.Warn("AUTH_JWKS_URL not set, authentication disabled")
	}

	// Generation history: postgres when configured, in-memory otherwise
	var generationRepo docRepo.GenerationRepository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		repo := postgres.NewGenerationRepository(&postgres.RepositoryConfig{
			DB:     pool,
			Tables: postgres.NewTableNames(cfg.TablePrefix),
			Logger: logger,
		})
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare schema: %v", err)
		}
		generationRepo = repo
		logger.Info("database connected", "history", "postgres")
	} else {
		generationRepo = memory.NewGenerationRepository(memory.DefaultCapacity)
		logger.Info("DATABASE_URL not set, history kept in memory", "capacity", memory.DefaultCapacity)
	}

	// Style spec is loaded once and shared read-only
	styleSpec, err := style.Default()
	if err != nil {
		log.Fatalf("Failed to load style spec: %v", err)
	}

	// Setup LLM formatter
	formatter, err := serviceLLM.SetupFormatter(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM provider: %v", err)
	}

	// Create services
	converters := converter.NewRegistry()
	renderer := document.NewRenderer(styleSpec)
	generationService := document.NewGenerationService(formatter, converters, renderer, generationRepo, cfg, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(generationService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)

	logger.Info("services initialized", "source_formats", converters.Formats())

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, docHandler, generationHandler)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Auth → Routes
	h = middleware.Auth(jwtVerifier, logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     h,
		ReadTimeout: 15 * time.Second,
		// Model round trips can take most of LLM_TIMEOUT
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
