// Package telemetry provides OpenTelemetry instrumentation for the grievance
// classifier service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "grievance-classifier"

// Metrics holds all grievance classifier Prometheus metrics
type Metrics struct {
	// Classification metrics
	ComplaintsClassified *prometheus.CounterVec
	AnalysisDuration     prometheus.Histogram
	BatchSize            prometheus.Histogram

	// Keyword index metrics
	KeywordScanDuration prometheus.Histogram
	KeywordsMatched     prometheus.Counter

	// Routing metrics
	RoutingDecisions *prometheus.CounterVec
	RoutingFallbacks prometheus.Counter

	// Location metrics
	FusionOutcomes  *prometheus.CounterVec
	GeocodeRequests *prometheus.CounterVec
	GeocodeDuration *prometheus.HistogramVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	metrics := initMetrics()
	tracer := otel.Tracer(serviceName)

	return &Provider{
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initClassificationMetrics(m)
	initKeywordMetrics(m)
	initRoutingMetrics(m)
	initLocationMetrics(m)
	return m
}

func initClassificationMetrics(m *Metrics) {
	m.ComplaintsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grievance_complaints_classified_total",
		Help: "Total complaints classified, by category and priority",
	}, []string{"category", "priority"})

	m.AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "grievance_analysis_duration_seconds",
		Help:    "Time for one combined complaint analysis",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "grievance_batch_size",
		Help:    "Number of complaints per batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})
}

func initKeywordMetrics(m *Metrics) {
	m.KeywordScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "grievance_keyword_scan_duration_seconds",
		Help:    "Time spent in keyword presence scanning (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.KeywordsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grievance_keywords_matched_total",
		Help: "Total keywords found across all presence scans",
	})
}

func initRoutingMetrics(m *Metrics) {
	m.RoutingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grievance_routing_decisions_total",
		Help: "Total routing decisions, by primary department code",
	}, []string{"department"})

	m.RoutingFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grievance_routing_fallback_total",
		Help: "Routing decisions that fell back to the general department",
	})
}

func initLocationMetrics(m *Metrics) {
	m.FusionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grievance_fusion_outcomes_total",
		Help: "Total location fusions, by winning method (gps, manual, ocr, ocr_partial, none)",
	}, []string{"method"})

	m.GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grievance_geocode_requests_total",
		Help: "Total geocoding calls, by operation and outcome",
	}, []string{"operation", "outcome"})

	m.GeocodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grievance_geocode_duration_seconds",
		Help:    "Geocoding call latency, by operation",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
	}, []string{"operation"})
}

// RecordClassification records one classified complaint
func (p *Provider) RecordClassification(ctx context.Context, category, priority string) {
	p.Metrics.ComplaintsClassified.WithLabelValues(category, priority).Inc()
}

// RecordAnalysis records the duration of one combined analysis
func (p *Provider) RecordAnalysis(ctx context.Context, duration time.Duration) {
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())
}

// RecordKeywordScan records keyword index metrics for one presence scan
func (p *Provider) RecordKeywordScan(ctx context.Context, duration time.Duration, matched int) {
	p.Metrics.KeywordScanDuration.Observe(duration.Seconds())
	p.Metrics.KeywordsMatched.Add(float64(matched))
}

// RecordRouting records one routing decision by primary department
func (p *Provider) RecordRouting(ctx context.Context, department string, fallback bool) {
	p.Metrics.RoutingDecisions.WithLabelValues(department).Inc()
	if fallback {
		p.Metrics.RoutingFallbacks.Inc()
	}
}

// RecordFusion records the winning method of one location fusion
func (p *Provider) RecordFusion(ctx context.Context, method string) {
	label := method
	if label == "" {
		label = "none"
	}
	p.Metrics.FusionOutcomes.WithLabelValues(label).Inc()
}

// RecordGeocode records one geocoding call with its outcome
func (p *Provider) RecordGeocode(ctx context.Context, operation, outcome string, duration time.Duration) {
	p.Metrics.GeocodeRequests.WithLabelValues(operation, outcome).Inc()
	p.Metrics.GeocodeDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBatchSize records the size of a processed batch
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
