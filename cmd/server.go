/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskgate/clickup-gateway/internal/api"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/db/postgres"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/db/redis"
	"github.com/taskgate/clickup-gateway/internal/pkg/config"
	"github.com/taskgate/clickup-gateway/pkg/logger"

	_ "github.com/taskgate/clickup-gateway/docs"
)

const connectTimeout = 10 * time.Second

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the gateway HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.Env == "development",
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pool, err := postgres.Connect(ctx, cfg.Postgres.URL, connectTimeout)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}

		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		e := api.NewRouter(ctx, pool, rdb, cfg, log)

		go func() {
			log.Info().Str("port", cfg.Port).Msg("starting server")
			if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info().Msg("server shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
