package config

import (
	"fmt"
)

// ValidationError reports a configuration field with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks the loaded configuration. Defaults are applied before
// validation runs, so only explicitly bad values fail here.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return invalid("service.port", "must be between 1 and 65535")
	}
	if c.Service.Concurrency < 1 {
		return invalid("service.concurrency", "must be at least 1")
	}
	if c.Service.BatchSize < 1 {
		return invalid("service.batch_size", "must be at least 1")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("logging.level", "must be one of: debug, info, warn, error, fatal")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return invalid("logging.format", "must be one of: json, console")
	}

	if !c.Geocoder.Disabled {
		if c.Geocoder.BaseURL == "" {
			return invalid("geocoder.base_url", "is required when the geocoder is enabled")
		}
		if c.Geocoder.RatePerSecond <= 0 {
			return invalid("geocoder.rate_per_second", "must be greater than zero")
		}
	}
	return nil
}
