// Rentora | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis_rate/v10"

	"github.com/rentora/rentora/internal/auth"
	"github.com/rentora/rentora/internal/comment"
	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/health"
	"github.com/rentora/rentora/internal/middleware"
	"github.com/rentora/rentora/internal/offer"
	"github.com/rentora/rentora/internal/server"
	"github.com/rentora/rentora/internal/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("telemetry disabled", slog.String("error", err.Error()))
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("database close", slog.String("error", err.Error()))
		}
	}()

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	revoked := auth.NewRevocationList()
	tokens, err := auth.NewTokenManager(cfg.Auth, revoked)
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	userRepo := user.NewRepository(db)
	offerRepo := offer.NewRepository(db)
	commentRepo := comment.NewRepository(db)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, 10*time.Second)
	defer cancelIndexes()
	for name, ensure := range map[string]func(context.Context) error{
		"users":    userRepo.EnsureIndexes,
		"offers":   offerRepo.EnsureIndexes,
		"comments": commentRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	files := core.NewFileResolver(cfg.Storage.StaticRoute, cfg.Storage.UploadRoute)

	offerSvc := offer.NewService(offerRepo, commentRepo, logger)
	commentSvc := comment.NewService(commentRepo, offerRepo, logger)
	userSvc := user.NewService(userRepo, offerRepo, tokens, cfg.Auth.Salt, logger)

	userHandler := user.NewHandler(userSvc, files, cfg.Storage)
	offerHandler := offer.NewHandler(offerSvc, userSvc, files, cfg.Storage)
	commentHandler := comment.NewHandler(commentSvc, offerSvc.ExistsByID)
	healthHandler := health.NewHandler(map[string]health.Checker{
		"mongodb": db,
		"redis":   rdb,
	})

	limiter := middleware.NewRateLimiter(rdb.Client, middleware.RateLimitConfig{
		Limit: redis_rate.Limit{
			Rate:   cfg.RateLimit.Requests,
			Period: cfg.RateLimit.Window,
			Burst:  cfg.RateLimit.Burst,
		},
		KeyFunc:  middleware.KeyByIP,
		FailOpen: true,
	})

	authenticate := middleware.Authenticator(tokens)
	identify := middleware.OptionalAuth(tokens)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(limiter.Handler)

	healthHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router, authenticate)
	offerHandler.RegisterRoutes(router, authenticate, identify)
	commentHandler.RegisterRoutes(router, authenticate)

	srv := server.New(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.String("error", err.Error()))
	}
	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", slog.String("error", err.Error()))
		}
	}

	logger.Info("shutdown complete")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
