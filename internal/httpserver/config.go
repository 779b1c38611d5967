// Package httpserver carries the Gin plumbing shared by the service's HTTP
// surface: middleware, health endpoints, memory monitoring and lifecycle.
package httpserver

import (
	"time"
)

const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 30 * time.Second
	defaultCORSMaxAge      = 12 * time.Hour
)

// Config holds the HTTP server configuration.
type Config struct {
	// Port to listen on.
	Port int
	// Debug switches Gin into debug mode.
	Debug bool

	// ServiceName and ServiceVersion appear in health responses and
	// startup logs.
	ServiceName    string
	ServiceVersion string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds how long Shutdown waits for in-flight
	// requests.
	ShutdownTimeout time.Duration

	CORS CORSConfig
}

// CORSConfig controls the CORS middleware.
type CORSConfig struct {
	Enabled bool
	// AllowedOrigins lists origins that may call the API; "*" allows all.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	// AllowCredentials permits cookies and auth headers on cross-origin
	// requests.
	AllowCredentials bool
	// MaxAge is how long browsers may cache a preflight response.
	MaxAge time.Duration
}

// SetDefaults fills every unset field with its default.
func (c *Config) SetDefaults() {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
	c.CORS.SetDefaults()
}

// SetDefaults fills the CORS config. With nothing configured the policy is
// a permissive one: any origin, the common methods and headers.
func (c *CORSConfig) SetDefaults() {
	if !c.Enabled && len(c.AllowedOrigins) == 0 {
		c.Enabled = true
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"Authorization", "Cache-Control", "X-Requested-With", "X-API-Key",
		}
	}
	if c.MaxAge == 0 {
		c.MaxAge = defaultCORSMaxAge
	}
}
