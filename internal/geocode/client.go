// Package geocode provides a Nominatim client for resolving complaint
// addresses. Calls follow the public usage policy: a global rate limit, an
// identifying user agent, and bounded retries on transient failures only.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jansunwai/grievance-classifier/internal/config"
	"github.com/jansunwai/grievance-classifier/internal/retry"
	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

// ErrNoResult indicates the geocoder answered but found nothing for the
// query. Callers treat this as a miss, not a failure.
var ErrNoResult = errors.New("no geocoding result")

// Client is a Nominatim HTTP client. One instance serves the whole process
// so the rate limit actually holds across concurrent analyses.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	retryCfg  retry.Config
	telemetry *telemetry.Provider
}

// searchResult is one entry of the /search response array. Nominatim
// serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// reverseResult is the /reverse response object. An unresolvable point
// comes back as 200 with an error field.
type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NewClient builds a client from configuration. Telemetry may be nil.
func NewClient(cfg config.GeocoderConfig, tel *telemetry.Provider) *Client {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
		retryCfg: retry.Config{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: 250 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2.0,
		},
		telemetry: tel,
	}
}

// Geocode resolves a free-form query to coordinates via /search, limited
// to India.
func (c *Client) Geocode(ctx context.Context, query string) (float64, float64, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	var results []searchResult
	err := retry.Do(ctx, c.retryCfg, func() error {
		return c.get(ctx, "/search", params, &results)
	})
	if err != nil {
		c.record(ctx, "search", "error", start)
		return 0, 0, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		c.record(ctx, "search", "no_result", start)
		return 0, 0, fmt.Errorf("geocode %q: %w", query, ErrNoResult)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		c.record(ctx, "search", "error", start)
		return 0, 0, fmt.Errorf("geocode %q: parse lat: %w", query, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		c.record(ctx, "search", "error", start)
		return 0, 0, fmt.Errorf("geocode %q: parse lon: %w", query, err)
	}

	c.record(ctx, "search", "ok", start)
	return lat, lon, nil
}

// ReverseGeocode resolves coordinates to a display label via /reverse.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	var result reverseResult
	err := retry.Do(ctx, c.retryCfg, func() error {
		return c.get(ctx, "/reverse", params, &result)
	})
	if err != nil {
		c.record(ctx, "reverse", "error", start)
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	if result.Error != "" || result.DisplayName == "" {
		c.record(ctx, "reverse", "no_result", start)
		return "", fmt.Errorf("reverse geocode: %w", ErrNoResult)
	}

	c.record(ctx, "reverse", "ok", start)
	return result.DisplayName, nil
}

// Health checks the upstream /status endpoint. Used by the readiness
// checker; failures mark the geocoder degraded, never the service down.
func (c *Client) Health(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status?format=json", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) record(ctx context.Context, operation, outcome string, start time.Time) {
	if c.telemetry != nil {
		c.telemetry.RecordGeocode(ctx, operation, outcome, time.Since(start))
	}
}
