package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/todoapp/task-api/internal/api"
	"github.com/todoapp/task-api/internal/core/service"
	"github.com/todoapp/task-api/internal/infrastructure/config"
	"github.com/todoapp/task-api/internal/infrastructure/db/postgres"
	redisdb "github.com/todoapp/task-api/internal/infrastructure/db/redis"
	"github.com/todoapp/task-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if cfg.Postgres.RunMigrations {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			logg.Fatal().Err(err).Msg("failed to run migrations")
		}
		logg.Info().Msg("migrations applied")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Idempotent seed: guarantees the demo credential exists before the
	// server starts accepting logins.
	userRepo := postgres.NewUserRepository(db)
	if err := service.EnsureDefaultUser(ctx, userRepo, cfg.Seed.Email, cfg.Seed.Password, logg); err != nil {
		logg.Fatal().Err(err).Msg("failed to seed default user")
	}

	e := api.NewRouter(db, rdb, cfg, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
