// Package bootstrap assembles the service components from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jansunwai/grievance-classifier/internal/api"
	"github.com/jansunwai/grievance-classifier/internal/classifier"
	"github.com/jansunwai/grievance-classifier/internal/config"
	"github.com/jansunwai/grievance-classifier/internal/geocode"
	"github.com/jansunwai/grievance-classifier/internal/httpserver"
	"github.com/jansunwai/grievance-classifier/internal/logger"
	"github.com/jansunwai/grievance-classifier/internal/logging"
	"github.com/jansunwai/grievance-classifier/internal/processor"
	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

const (
	defaultHTTPTimeout    = 30 * time.Second
	defaultConcurrency    = 8
	geocoderPingTimeout   = 5 * time.Second
	memoryGrowthThreshold = 2.0
	memoryCheckInterval   = 5 * time.Minute
)

// HTTPComponents holds all components needed for the HTTP server.
type HTTPComponents struct {
	Handler   *api.Handler
	Server    *httpserver.Server
	Telemetry *telemetry.Provider
	Geocoder  *geocode.Client
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	tel := telemetry.NewProvider()

	// The interface stays nil when the client is absent so location fusion
	// takes its no-geocoder path instead of calling through a nil pointer.
	var (
		geocoder  classifier.Geocoder
		geoClient *geocode.Client
	)
	if cfg.Geocoder.Disabled {
		log.Info("Geocoder disabled, address resolution skipped")
	} else {
		geoClient = geocode.NewClient(cfg.Geocoder, tel)
		geocoder = geoClient
		log.Info("Geocoder client initialized",
			logger.String("base_url", cfg.Geocoder.BaseURL),
			logger.Float64("rate_per_second", cfg.Geocoder.RatePerSecond),
		)
	}

	analyzer, err := classifier.NewAnalyzer(log, geocoder, classifier.Config{
		Version:   cfg.Service.Version,
		Telemetry: tel,
	})
	if err != nil {
		return nil, fmt.Errorf("build analyzer: %w", err)
	}

	concurrency := cfg.Service.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	kvLog := logging.NewAdapter(log)
	batch := processor.NewBatchProcessor(analyzer, concurrency, kvLog, tel)
	log.Info("Batch processor initialized", logger.Int("concurrency", concurrency))

	handler := api.NewHandler(analyzer, batch, cfg.Service.BatchSize, kvLog)

	serverConfig := api.ServerConfig{
		Port:          cfg.Service.Port,
		ReadTimeout:   defaultHTTPTimeout,
		WriteTimeout:  defaultHTTPTimeout,
		Debug:         cfg.Service.Debug,
		Metrics:       tel.Handler(),
		MemoryMonitor: httpserver.NewMemoryMonitor(memoryGrowthThreshold, memoryCheckInterval),
	}
	if geoClient != nil {
		serverConfig.GeocoderPing = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), geocoderPingTimeout)
			defer cancel()
			return geoClient.Health(ctx)
		}
	}
	server := api.NewServer(handler, serverConfig, cfg, log)

	return &HTTPComponents{
		Handler:   handler,
		Server:    server,
		Telemetry: tel,
		Geocoder:  geoClient,
	}, nil
}
