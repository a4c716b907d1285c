package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/questscholar/backend/docs"
	"github.com/questscholar/backend/internal/assistant"
	"github.com/questscholar/backend/internal/auth"
	"github.com/questscholar/backend/internal/config"
	"github.com/questscholar/backend/internal/handlers"
	"github.com/questscholar/backend/internal/logger"
	"github.com/questscholar/backend/internal/middlewares"
	"github.com/questscholar/backend/internal/models"
	"github.com/questscholar/backend/internal/repositories"
	"github.com/questscholar/backend/internal/services"
	"github.com/questscholar/backend/internal/session"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title QuestScholar API
// @version 1.0
// @description Student assistant API: demo auth, assistant chat proxy, flashcard generation and the admin document dashboard

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting QuestScholar backend")

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize session store, rehydrating from durable storage
	sessionStorage := session.NewFileStorage(cfg.Session.FilePath)
	sessionStore := session.NewStore(sessionStorage, logger.Logger, cfg.Session.LoginDelay)

	// Initialize prediction endpoint client
	assistantClient := assistant.NewClient(cfg.Assistant.URL, cfg.Assistant.APIKey, logger.Logger)

	// Initialize repositories
	flashcardRepo := repositories.NewFlashcardRepository()
	documentRepo := repositories.NewDocumentRepository()

	// Initialize services
	chatService := services.NewChatService(assistantClient, logger.Logger)
	flashcardService := services.NewFlashcardService(assistantClient, flashcardRepo, logger.Logger)
	documentService := services.NewDocumentService(documentRepo, logger.Logger, cfg.Documents.ProcessingDelay, cfg.Documents.PollInterval)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionStore, tokenGenerator, logger.Logger)
	chatHandler := handlers.NewChatHandler(chatService, assistantClient, logger.Logger)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService, logger.Logger)
	documentHandler := handlers.NewDocumentHandler(documentService, logger.Logger)

	// Initialize route guard middleware
	authenticatedOnly := session.RequireRoles(tokenGenerator)
	adminOnly := session.RequireRoles(tokenGenerator, models.RoleAdmin)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Register auth routes (public)
		authHandler.RegisterRoutes(r)
		// Register chat and flashcard routes for any authenticated user
		r.Group(func(r chi.Router) {
			r.Use(authenticatedOnly)
			chatHandler.RegisterRoutes(r)
			flashcardHandler.RegisterRoutes(r)
		})
		// Register document dashboard routes with admin role middleware
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			documentHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
