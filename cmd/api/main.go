package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/keepnote/notes-api/internal/api"
	"github.com/keepnote/notes-api/internal/core/service"
	"github.com/keepnote/notes-api/internal/infrastructure/config"
	mongodb "github.com/keepnote/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/keepnote/notes-api/internal/infrastructure/db/redis"
	"github.com/keepnote/notes-api/internal/infrastructure/seed"
	"github.com/keepnote/notes-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

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
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := noteRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("note index creation failed")
	}

	// Development convenience only; failures must not block startup.
	if cfg.Env == "development" {
		if err := seed.EnsureDefaultUser(ctx, userRepo, service.NewBcryptHasher(), log); err != nil {
			log.Warn().Err(err).Msg("default user seeding failed")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("notes api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
