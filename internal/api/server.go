package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jansunwai/grievance-classifier/internal/config"
	"github.com/jansunwai/grievance-classifier/internal/httpserver"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// Default timeout values.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Metrics, when set, is served at /metrics.
	Metrics http.Handler
	// GeocoderPing, when set, is surfaced as a named health check.
	GeocoderPing func() error
	// MemoryMonitor, when set, enriches /health/memory with baseline
	// metrics.
	MemoryMonitor *httpserver.MemoryMonitor
}

// NewServer assembles the HTTP server with standard middleware, health
// endpoints and the service routes.
func NewServer(handler *Handler, serverCfg ServerConfig, cfg *config.Config, log logger.Logger) *httpserver.Server {
	readTimeout := serverCfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := serverCfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = defaultWriteTimeout
	}

	builder := httpserver.NewServerBuilder(cfg.Service.Name, serverCfg.Port).
		WithLogger(log).
		WithDebug(serverCfg.Debug).
		WithVersion(cfg.Service.Version).
		WithTimeouts(readTimeout, writeTimeout, defaultIdleTimeout).
		WithRoutes(func(router *gin.Engine) {
			SetupServiceRoutes(router, handler, serverCfg.Metrics)
		})

	if serverCfg.GeocoderPing != nil {
		builder = builder.WithGeocoderHealthCheck(serverCfg.GeocoderPing)
	}
	if serverCfg.MemoryMonitor != nil {
		builder = builder.WithMemoryMonitor(serverCfg.MemoryMonitor)
	}

	return builder.Build()
}
