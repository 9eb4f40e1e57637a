package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"Postboard/internal/api/middleware"
	"Postboard/internal/api/routes"
	"Postboard/internal/auth"
	"Postboard/internal/config"
	"Postboard/internal/core/posts"
	"Postboard/internal/core/users"
	"Postboard/internal/core/votes"
	postgresRepo "Postboard/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgresRepo.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	slog.Info("connected to database")

	if err := postgresRepo.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	slog.Info("migrations completed successfully")

	gormDB, err := postgresRepo.NewGormDB(db)
	if err != nil {
		log.Fatal("Failed to initialize ORM:", err)
	}

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(gormDB)
	voteRepo := postgresRepo.NewVoteRepository(gormDB)

	userService := users.NewUserService(userRepo)
	postService := posts.NewPostService(postRepo)
	voteService := votes.NewVoteService(voteRepo, votes.NewFuncSubjectValidator(postExists(postRepo)))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authMiddleware := middleware.NewAuthMiddleware(tokens, userService)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.TrustedProxies...)
	r.Use(rateLimiter.Middleware)

	routes.RegisterUserRoutes(r, userService)
	routes.RegisterLoginRoutes(r, userService, tokens)
	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterVoteRoutes(r, voteService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("failed to write health response", slog.String("error", err.Error()))
		}
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Postboard server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// postExists adapts the post repository to the vote subject check
func postExists(repo posts.Repository) votes.PostExistsFunc {
	return func(ctx context.Context, postID int64) (bool, error) {
		_, err := repo.GetByID(ctx, postID)
		if errors.Is(err, posts.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}
