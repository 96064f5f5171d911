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
	_ "github.com/learnhub/backend/docs"
	"github.com/learnhub/backend/internal/config"
	"github.com/learnhub/backend/internal/fixtures"
	"github.com/learnhub/backend/internal/handlers"
	"github.com/learnhub/backend/internal/logger"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/repositories"
	"github.com/learnhub/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title LearnHub API
// @version 1.0
// @description API for browsing courses, studying lessons, taking quizzes and tracking progress

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

	logger.Logger.Info("Starting LearnHub backend")

	// Load seed data
	dataset, err := fixtures.Load(cfg.Store.FixturesDir)
	if err != nil {
		logger.Logger.Fatal("Failed to load fixtures", zap.Error(err), zap.String("dir", cfg.Store.FixturesDir))
	}
	logger.Logger.Info("Fixtures loaded",
		zap.Int("courses", len(dataset.Courses)),
		zap.Int("quizzes", len(dataset.Quizzes)),
		zap.Int("progress", len(dataset.UserProgress)),
	)

	// Initialize repositories
	latency := repositories.WithLatency(cfg.Store.Latency)
	courseRepo := repositories.NewCourseRepository(dataset.Courses, latency)
	quizRepo := repositories.NewQuizRepository(dataset.Quizzes, latency)
	progressRepo := repositories.NewUserProgressRepository(dataset.UserProgress, latency)

	// Initialize services
	catalogService := services.NewCatalogService(courseRepo, progressRepo, logger.Logger)
	learningService := services.NewLearningService(courseRepo, quizRepo, progressRepo, logger.Logger)
	quizService := services.NewQuizService(quizRepo, courseRepo, progressRepo, logger.Logger)
	progressService := services.NewProgressService(courseRepo, progressRepo, logger.Logger)
	notesService := services.NewNotesService(courseRepo, progressRepo, logger.Logger)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(catalogService, logger.Logger)
	lessonHandler := handlers.NewLessonHandler(learningService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	noteHandler := handlers.NewNoteHandler(notesService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		courseHandler.RegisterRoutes(r)
		lessonHandler.RegisterRoutes(r)
		quizHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		noteHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
