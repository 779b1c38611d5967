package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordClassification(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordClassification(ctx, "roads", "high")
	provider.RecordClassification(ctx, "other", "low")
	provider.RecordAnalysis(ctx, 100*time.Millisecond)
}

func TestRecordKeywordScan(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordKeywordScan(ctx, 5*time.Millisecond, 12)
}

func TestRecordRoutingAndFusion(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordRouting(ctx, "MOJS", false)
	provider.RecordRouting(ctx, "GENERAL", true)
	provider.RecordFusion(ctx, "gps")
	provider.RecordFusion(ctx, "")
}

func TestRecordGeocode(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordGeocode(ctx, "geocode", "ok", 200*time.Millisecond)
	provider.RecordGeocode(ctx, "reverse", "no_result", 50*time.Millisecond)
	provider.RecordBatchSize(25)
}
