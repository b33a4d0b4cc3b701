package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wonbyte/internal/config"
	"wonbyte/internal/database"
	"wonbyte/internal/handlers"
	"wonbyte/internal/repository"
	"wonbyte/internal/scheduler"
	"wonbyte/internal/security"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories and the ledger store
	userRepo := repository.NewUserRepository(db)
	stateRepo := repository.NewStateRepository(db)
	store := storage.New(stateRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenDuration)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reportService := service.NewReportService(userRepo, store, emailService)

	// Initialize handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter)
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(store, authService)
	statsHandler := handlers.NewStatsHandler(store)
	vocabHandler := handlers.NewVocabHandler(store)
	wrongAnswerHandler := handlers.NewWrongAnswerHandler(store)
	bookmarkHandler := handlers.NewBookmarkHandler(store)
	gameHandler := handlers.NewGameHandler(store)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))

	// Profile
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profileHandler.GetProfile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profileHandler.UpdateProfile))
	mux.HandleFunc("PUT /api/profile/guardian", middleware.RequireAuth(profileHandler.UpdateGuardian))
	mux.HandleFunc("DELETE /api/profile", middleware.RequireAuth(profileHandler.ResetAll))

	// Learning stats
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(statsHandler.GetStats))
	mux.HandleFunc("POST /api/stats/record", middleware.RequireAuth(statsHandler.Record))
	mux.HandleFunc("GET /api/stats/today", middleware.RequireAuth(statsHandler.GetToday))
	mux.HandleFunc("GET /api/stats/weekly", middleware.RequireAuth(statsHandler.GetWeekly))

	// Vocabulary
	mux.HandleFunc("GET /api/vocabulary", middleware.RequireAuth(vocabHandler.List))
	mux.HandleFunc("POST /api/vocabulary", middleware.RequireAuth(vocabHandler.Add))
	mux.HandleFunc("GET /api/vocabulary/unmastered", middleware.RequireAuth(vocabHandler.Unmastered))
	mux.HandleFunc("POST /api/vocabulary/import", middleware.RequireAuth(vocabHandler.Import))
	mux.HandleFunc("PATCH /api/vocabulary/{id}", middleware.RequireAuth(vocabHandler.Patch))
	mux.HandleFunc("DELETE /api/vocabulary/{id}", middleware.RequireAuth(vocabHandler.Remove))
	mux.HandleFunc("POST /api/vocabulary/{id}/review", middleware.RequireAuth(vocabHandler.Review))

	// Review notebook
	mux.HandleFunc("GET /api/review-notes", middleware.RequireAuth(wrongAnswerHandler.List))
	mux.HandleFunc("POST /api/review-notes", middleware.RequireAuth(wrongAnswerHandler.Add))
	mux.HandleFunc("GET /api/review-notes/unsolved", middleware.RequireAuth(wrongAnswerHandler.Unsolved))
	mux.HandleFunc("PATCH /api/review-notes/{id}", middleware.RequireAuth(wrongAnswerHandler.Patch))
	mux.HandleFunc("DELETE /api/review-notes/{id}", middleware.RequireAuth(wrongAnswerHandler.Remove))
	mux.HandleFunc("POST /api/review-notes/{id}/retry", middleware.RequireAuth(wrongAnswerHandler.Retry))

	// Bookmarks
	mux.HandleFunc("GET /api/bookmarks", middleware.RequireAuth(bookmarkHandler.List))
	mux.HandleFunc("POST /api/bookmarks", middleware.RequireAuth(bookmarkHandler.Add))
	mux.HandleFunc("DELETE /api/bookmarks/{id}", middleware.RequireAuth(bookmarkHandler.Remove))
	mux.HandleFunc("POST /api/bookmarks/{id}/use", middleware.RequireAuth(bookmarkHandler.Use))

	// Game rewards
	mux.HandleFunc("GET /api/game", middleware.RequireAuth(gameHandler.GetState))
	mux.HandleFunc("PATCH /api/game", middleware.RequireAuth(gameHandler.Patch))
	mux.HandleFunc("POST /api/game/points", middleware.RequireAuth(gameHandler.AddPoints))
	mux.HandleFunc("POST /api/game/points/spend", middleware.RequireAuth(gameHandler.SpendPoints))
	mux.HandleFunc("POST /api/game/exp", middleware.RequireAuth(gameHandler.AddExp))
	mux.HandleFunc("POST /api/game/badges/{id}", middleware.RequireAuth(gameHandler.UnlockBadge))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Weekly guardian report job
	jobs := scheduler.New(reportService)
	if emailService.IsEnabled() {
		if err := jobs.Start(cfg.ReportWeekday, cfg.ReportHour); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer jobs.Stop()
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
