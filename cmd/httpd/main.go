// Command httpd runs the grievance classifier HTTP service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jansunwai/grievance-classifier/internal/bootstrap"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting grievance classifier service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	components, err := bootstrap.NewHTTPComponents(cfg, log)
	if err != nil {
		log.Error("Failed to initialize components", logger.Error(err))
		os.Exit(1)
	}

	if err := components.Server.RunWithGracefulShutdown(context.Background()); err != nil {
		log.Error("Server error", logger.Error(err))
		os.Exit(1)
	}
}
