package cli

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"imagehost/internal/config"
	"imagehost/internal/server"
)

var (
	serveEnvFile   string
	serveWorkers   int
	serveStartPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the image hosting workers",
	Long:  "Load configuration from the environment (and an optional .env file), then start one HTTP worker per configured port.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(serveEnvFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := applyOverrides(cfg, serveWorkers, serveStartPort); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		gin.SetMode(gin.ReleaseMode)

		if err := server.Run(context.Background(), cfg); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

// applyOverrides replaces the worker count and start port when the flags
// were set, then re-validates so a bad override fails at startup instead of
// leaving every worker unable to bind.
func applyOverrides(cfg *config.Config, workers, startPort int) error {
	if workers > 0 {
		cfg.Workers = workers
	}
	if startPort > 0 {
		cfg.StartPort = startPort
	}
	return cfg.Validate()
}

func init() {
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", "", "path to a .env file (default: .env in the working directory)")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "override WEB_SERVER_WORKERS")
	serveCmd.Flags().IntVar(&serveStartPort, "start-port", 0, "override WEB_SERVER_START_PORT")
	rootCmd.AddCommand(serveCmd)
}
