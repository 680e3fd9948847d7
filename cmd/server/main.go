package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"docweld/internal/auth"
	"docweld/internal/config"
	"docweld/internal/handler"
	"docweld/internal/middleware"
	"docweld/internal/repository/postgres"
	postgresDocsys "docweld/internal/repository/postgres/docsystem"
	"docweld/internal/service/docimport"
	serviceDocsys "docweld/internal/service/docsystem"
	s3store "docweld/internal/storage/s3"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	objectStore, err := s3store.NewObjectStore(ctx, &cfg.Storage, logger)
	if err != nil {
		log.Fatalf("Failed to create object store: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	projectRepo := postgresDocsys.NewProjectRepository(repoConfig)
	libraryRepo := postgresDocsys.NewLibraryRepository(repoConfig)
	weldLogRepo := postgresDocsys.NewWeldLogRepository(repoConfig)
	sectionRepo := postgresDocsys.NewSectionRepository(repoConfig)
	docRepo := postgresDocsys.NewDocumentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Create services
	projectService := serviceDocsys.NewProjectService(projectRepo, logger)
	libraryService := serviceDocsys.NewLibraryService(libraryRepo, logger)
	weldLogService := serviceDocsys.NewWeldLogService(weldLogRepo, projectRepo, logger)
	sectionService := serviceDocsys.NewSectionService(sectionRepo, logger)
	docService := serviceDocsys.NewDocumentService(docRepo, objectStore, logger)
	importService := docimport.NewImportService(docRepo, sectionRepo, txManager, objectStore, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, logger)
	libraryHandler := handler.NewLibraryHandler(libraryService, logger)
	weldLogHandler := handler.NewWeldLogHandler(weldLogService, logger)
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	docHandler := handler.NewDocumentHandler(docService, logger)
	importHandler := handler.NewImportHandler(importService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)

	// Library routes
	mux.HandleFunc("GET /api/libraries", libraryHandler.ListLibraries)
	mux.HandleFunc("POST /api/libraries", libraryHandler.CreateLibrary)
	mux.HandleFunc("GET /api/libraries/{id}", libraryHandler.GetLibrary)
	mux.HandleFunc("PATCH /api/libraries/{id}", libraryHandler.UpdateLibrary)
	mux.HandleFunc("DELETE /api/libraries/{id}", libraryHandler.DeleteLibrary)

	// Weld log routes
	mux.HandleFunc("GET /api/projects/{id}/weld-logs", weldLogHandler.ListWeldLogs)
	mux.HandleFunc("POST /api/projects/{id}/weld-logs", weldLogHandler.CreateWeldLog)
	mux.HandleFunc("GET /api/weld-logs/{id}", weldLogHandler.GetWeldLog)
	mux.HandleFunc("PATCH /api/weld-logs/{id}", weldLogHandler.UpdateWeldLog)
	mux.HandleFunc("DELETE /api/weld-logs/{id}", weldLogHandler.DeleteWeldLog)

	// Section routes
	mux.HandleFunc("GET /api/sections", sectionHandler.ListSections)
	mux.HandleFunc("POST /api/sections", sectionHandler.CreateSection)
	mux.HandleFunc("PATCH /api/sections/{id}", sectionHandler.UpdateSection)
	mux.HandleFunc("DELETE /api/sections/{id}", sectionHandler.DeleteSection)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.RenameDocument)
	mux.HandleFunc("PATCH /api/documents/{id}/order", docHandler.ReorderDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)
	mux.HandleFunc("GET /api/documents/{id}/download", docHandler.DownloadDocument)

	// Import routes
	mux.HandleFunc("POST /api/import", importHandler.Import)

	// Build middleware chain, applied in reverse order
	// Order: CORS -> Recovery -> Auth -> Routes
	var root http.Handler = mux
	root = middleware.AuthMiddleware(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
