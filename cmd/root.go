/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clickup-gateway",
	Short: "REST gateway in front of the ClickUp API",
	Long: `clickup-gateway exposes a REST API that proxies the ClickUp task
management API, adding JWT authentication, role based access control,
rate limiting and API usage logging.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// Missing .env is fine, variables may come from the environment.
		_ = godotenv.Load()
	})
}
