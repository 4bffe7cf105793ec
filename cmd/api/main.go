package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/technotes/notes-api/internal/api"
	"github.com/technotes/notes-api/internal/infrastructure/config"
	mongodb "github.com/technotes/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/technotes/notes-api/internal/infrastructure/db/redis"
	"github.com/technotes/notes-api/pkg/logger"

	_ "github.com/technotes/notes-api/docs"
)

// @title           technotes API
// @version         1.0
// @description     CRUD REST backend for the technotes application.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting technotes API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := noteRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create note indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(api.Deps{
		Users:  userRepo,
		Notes:  noteRepo,
		Tokens: redisdb.NewTokenStore(rdb, cfg.RefreshTTL),
		Mongo:  db,
		Redis:  rdb,
		Config: cfg,
		Logger: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
