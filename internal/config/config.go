package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName    = "grievance-classifier"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8085
	defaultConcurrency    = 8
	defaultBatchSize      = 50
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"

	defaultGeocoderBaseURL       = "https://nominatim.openstreetmap.org"
	defaultGeocoderUserAgent     = "grievance-classifier/1.0"
	defaultGeocoderTimeout       = 5 * time.Second
	defaultGeocoderMaxAttempts   = 2
	defaultGeocoderRatePerSecond = 1.0
)

// Config holds all configuration for the grievance classifier service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"GRIEVANCE_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"             yaml:"debug"`
	Concurrency int    `env:"GRIEVANCE_CONCURRENCY" yaml:"concurrency"`
	BatchSize   int    `yaml:"batch_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// GeocoderConfig holds geocoder client configuration.
// The geocoder resolves free-text addresses against Nominatim; lookups are
// best effort and a disabled or unreachable geocoder degrades location
// fusion gracefully rather than failing requests.
type GeocoderConfig struct {
	Disabled      bool          `env:"GEOCODER_DISABLED" yaml:"disabled"`
	BaseURL       string        `env:"GEOCODER_BASE_URL" yaml:"base_url"`
	UserAgent     string        `yaml:"user_agent"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxAttempts   int           `yaml:"max_attempts"`
	RatePerSecond float64       `yaml:"rate_per_second"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	cfg, err := LoadFileWithDefaults[Config](path, setDefaults)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration populated entirely from defaults and
// environment overrides. Used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setGeocoderDefaults(&cfg.Geocoder)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.BatchSize == 0 {
		s.BatchSize = defaultBatchSize
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setGeocoderDefaults(g *GeocoderConfig) {
	if g.BaseURL == "" {
		g.BaseURL = defaultGeocoderBaseURL
	}
	if g.UserAgent == "" {
		g.UserAgent = defaultGeocoderUserAgent
	}
	if g.Timeout == 0 {
		g.Timeout = defaultGeocoderTimeout
	}
	if g.MaxAttempts == 0 {
		g.MaxAttempts = defaultGeocoderMaxAttempts
	}
	if g.RatePerSecond == 0 {
		g.RatePerSecond = defaultGeocoderRatePerSecond
	}
}
