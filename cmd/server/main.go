package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/misranrifat/book-store/internal/api"
	"github.com/misranrifat/book-store/internal/infrastructure/config"
	mongodb "github.com/misranrifat/book-store/internal/infrastructure/db/mongo"
	"github.com/misranrifat/book-store/internal/infrastructure/http/handlers"
	"github.com/misranrifat/book-store/internal/infrastructure/seed"
	"github.com/misranrifat/book-store/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	authorRepo := mongodb.NewAuthorRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	// Unique indexes must exist before the first registration can race.
	// Startup failures past this point return instead of Fatal so the
	// deferred disconnect runs.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create user indexes")
		return
	}
	if err := bookRepo.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create book indexes")
		return
	}

	if err := seed.Run(ctx, userRepo, authorRepo, bookRepo, log); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return
	}

	e := api.NewRouter(api.Deps{
		Users:   userRepo,
		Authors: authorRepo,
		Books:   bookRepo,
		Readiness: []handlers.ReadinessCheck{
			{Name: "mongodb", Check: func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			}},
		},
	}, cfg.JWTSecret, cfg.JWTTTL, log)

	// Serve errors come back on a channel so the deferred disconnect still runs.
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error().Err(err).Msg("server stopped")
		return
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
