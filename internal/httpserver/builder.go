package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// ServerBuilder assembles a Server step by step. Every option returns the
// builder so calls chain.
type ServerBuilder struct {
	config       *Config
	logger       logger.Logger
	setupRoutes  func(*gin.Engine)
	healthChecks map[string]HealthChecker
	monitor      *MemoryMonitor
}

// NewServerBuilder starts a builder for the named service.
func NewServerBuilder(serviceName string, port int) *ServerBuilder {
	cfg := &Config{ServiceName: serviceName, Port: port}
	cfg.SetDefaults()
	return &ServerBuilder{
		config:       cfg,
		healthChecks: make(map[string]HealthChecker),
	}
}

// WithLogger sets the logger. Without one the builder creates an
// info-level default.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.logger = log
	return b
}

// WithDebug toggles Gin debug mode.
func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.config.Debug = debug
	return b
}

// WithVersion sets the version reported by /health.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.config.ServiceVersion = version
	return b
}

// WithTimeouts overrides the read, write and idle timeouts.
func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	b.config.ReadTimeout = read
	b.config.WriteTimeout = write
	b.config.IdleTimeout = idle
	return b
}

// WithHealthCheck registers a named check reported under /health.
func (b *ServerBuilder) WithHealthCheck(name string, check HealthChecker) *ServerBuilder {
	b.healthChecks[name] = check
	return b
}

// WithGeocoderHealthCheck registers the geocoder connectivity check.
func (b *ServerBuilder) WithGeocoderHealthCheck(ping func() error) *ServerBuilder {
	return b.WithHealthCheck("geocoder", GeocoderHealthChecker(ping))
}

// WithMemoryMonitor attaches a memory monitor. The server starts and stops
// it with its own lifecycle, and /health/memory reports its baseline.
func (b *ServerBuilder) WithMemoryMonitor(monitor *MemoryMonitor) *ServerBuilder {
	b.monitor = monitor
	return b
}

// WithRoutes sets the service route registration callback.
func (b *ServerBuilder) WithRoutes(setupRoutes func(*gin.Engine)) *ServerBuilder {
	b.setupRoutes = setupRoutes
	return b
}

// Build constructs the server. Health routes are registered before the
// service routes so they cannot be shadowed.
func (b *ServerBuilder) Build() *Server {
	if b.logger == nil {
		b.logger = logger.Must(logger.Config{
			Level:       "info",
			Development: b.config.Debug,
		})
	}

	setup := func(router *gin.Engine) {
		RegisterHealthRoutes(router, HealthOptions{
			ServiceName:    b.config.ServiceName,
			ServiceVersion: b.config.ServiceVersion,
			Checks:         b.healthChecks,
			MemoryMonitor:  b.monitor,
		})
		if b.setupRoutes != nil {
			b.setupRoutes(router)
		}
	}

	srv := NewServer(b.config, b.logger, setup)
	srv.monitor = b.monitor
	return srv
}
