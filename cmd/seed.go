/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskgate/clickup-gateway/internal/infrastructure/db/postgres"
	"github.com/taskgate/clickup-gateway/internal/pkg/config"
	"github.com/taskgate/clickup-gateway/pkg/logger"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Creates the fixture user accounts",
	Long: `Creates one account per role (ADMIN, EDITOR, VIEWER) so the API is
usable immediately after a fresh deployment. Running it again is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

		ctx := cmd.Context()
		pool, err := postgres.Connect(ctx, cfg.Postgres.URL, 10*time.Second)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		return postgres.Seed(ctx, pool, log)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
