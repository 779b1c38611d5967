package httpserver

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the reported state of the service or one of its checks.
type HealthStatus string

const (
	// HealthStatusHealthy means the service is fully operational.
	HealthStatusHealthy HealthStatus = "healthy"
	// HealthStatusDegraded means an optional dependency is down but the
	// service still answers requests.
	HealthStatusDegraded HealthStatus = "degraded"
	// HealthStatusUnhealthy means the service cannot do useful work.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  HealthStatus           `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of one named health check.
type CheckResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Latency string       `json:"latency,omitempty"`
}

// HealthChecker probes one dependency and reports its state.
type HealthChecker func() CheckResult

// HealthOptions configures the health endpoints.
type HealthOptions struct {
	ServiceName    string
	ServiceVersion string
	// Checks maps check names to their probes. May be empty.
	Checks map[string]HealthChecker
	// MemoryMonitor, when set, adds its baseline to /health/memory.
	MemoryMonitor *MemoryMonitor
}

var startOnce sync.Once

var startedAt time.Time

// RegisterHealthRoutes adds GET /health, HEAD /health and
// GET /health/memory to the router. The GET handler runs every configured
// check and folds the worst result into the top-level status; an unhealthy
// check turns the response into a 503.
func RegisterHealthRoutes(router *gin.Engine, opts HealthOptions) {
	startOnce.Do(func() { startedAt = time.Now() })

	router.GET("/health", func(c *gin.Context) {
		resp := HealthResponse{
			Status:  HealthStatusHealthy,
			Service: opts.ServiceName,
			Version: opts.ServiceVersion,
			Uptime:  formatUptime(time.Since(startedAt)),
		}
		if len(opts.Checks) > 0 {
			resp.Checks = make(map[string]CheckResult, len(opts.Checks))
			for name, check := range opts.Checks {
				result := check()
				resp.Checks[name] = result
				resp.Status = worseOf(resp.Status, result.Status)
			}
		}

		code := http.StatusOK
		if resp.Status == HealthStatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, resp)
	})

	// Load balancers probe with HEAD; skip the check work for those.
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	memory := MemoryHealthHandler(opts.MemoryMonitor)
	router.GET("/health/memory", func(c *gin.Context) {
		memory(c.Writer, c.Request)
	})
}

// worseOf returns the more severe of two statuses.
func worseOf(a, b HealthStatus) HealthStatus {
	if a == HealthStatusUnhealthy || b == HealthStatusUnhealthy {
		return HealthStatusUnhealthy
	}
	if a == HealthStatusDegraded || b == HealthStatusDegraded {
		return HealthStatusDegraded
	}
	return HealthStatusHealthy
}

// formatUptime renders a duration in the largest two units that apply,
// e.g. "3d 7h" or "12m 40s".
func formatUptime(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	days := totalSeconds / 86400
	hours := totalSeconds % 86400 / 3600
	minutes := totalSeconds % 3600 / 60
	seconds := totalSeconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// GeocoderHealthChecker probes geocoder connectivity. A failing geocoder
// only degrades the service, since location fusion still works on text
// evidence without it.
func GeocoderHealthChecker(ping func() error) HealthChecker {
	return func() CheckResult {
		start := time.Now()
		err := ping()
		latency := time.Since(start).String()

		if err != nil {
			return CheckResult{
				Status:  HealthStatusDegraded,
				Message: "Geocoder unreachable",
				Latency: latency,
			}
		}
		return CheckResult{
			Status:  HealthStatusHealthy,
			Message: "Geocoder connection OK",
			Latency: latency,
		}
	}
}
