package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/symmetrical-potato/web/internal/api"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	redisdb "github.com/symmetrical-potato/web/internal/infrastructure/db/redis"
	"github.com/symmetrical-potato/web/internal/pkg/config"
	"github.com/symmetrical-potato/web/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter ports.LoginLimiter
	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		// The gateway still serves without redis; only login throttling
		// and the readiness probe degrade.
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
	} else {
		defer rdb.Close()
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	anonymous := graphql.NewClient(cfg.GraphQLURL(), log)
	newBackend := func(bearer string) ports.Backend {
		if bearer == "" {
			return anonymous
		}
		return anonymous.WithBearer(bearer)
	}

	e := api.NewRouter(api.RouterConfig{
		Config:     cfg,
		NewBackend: newBackend,
		Limiter:    limiter,
		Redis:      rdb,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
