// zcardgen serves digital business cards: authenticated owners manage cards
// with social links and logos, anyone can fetch the public card page, and a
// background dispatcher records page views asynchronously.
//
// @title        zcardgen API
// @version      1.0
// @description  Digital business card service: card management, public card pages, view tracking and logo uploads.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saddam-69/zcardgen/internal/api"
	"github.com/saddam-69/zcardgen/internal/infrastructure/config"
	"github.com/saddam-69/zcardgen/internal/infrastructure/db/postgres"
	redisdb "github.com/saddam-69/zcardgen/internal/infrastructure/db/redis"
	"github.com/saddam-69/zcardgen/internal/infrastructure/storage"
	"github.com/saddam-69/zcardgen/pkg/logger"
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

	// --- Postgres ---
	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}
	log.Info().Msg("connected to postgres")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Msg("connected to redis")

	// --- Upload directory ---
	blobs := storage.NewLocalStore(cfg.Upload.Dir)
	if err := blobs.EnsureReady(); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("upload directory unavailable")
	}

	// --- HTTP server + view dispatcher ---
	e, dispatcher := api.NewRouter(db, rdb, blobs, cfg, log)
	dispatcher.Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
