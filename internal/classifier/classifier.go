// internal/classifier/classifier.go
package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

// Analyzer wires the four analysis concerns into one pipeline: complaint
// classification, department routing, location extraction and location
// fusion. All state is immutable after construction, so one Analyzer
// serves concurrent requests.
type Analyzer struct {
	complaints *ComplaintClassifier
	router     *DepartmentRouter
	extractor  *LocationExtractor
	fusion     *LocationFusion
	index      *KeywordIndex
	telemetry  *telemetry.Provider
	logger     logger.Logger
}

// Config holds analyzer construction options.
type Config struct {
	// Version is reported in the startup log.
	Version string
	// Telemetry enables metric recording when set.
	Telemetry *telemetry.Provider
}

// NewAnalyzer builds the full pipeline. Construction fails when a profile
// table or pattern is malformed; the returned analyzer never errors at
// operation time.
func NewAnalyzer(log logger.Logger, geocoder Geocoder, cfg Config) (*Analyzer, error) {
	index, err := NewKeywordIndex(categoryProfiles, departmentProfiles, log, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("build keyword index: %w", err)
	}
	complaints, err := NewComplaintClassifier(index, log)
	if err != nil {
		return nil, fmt.Errorf("build complaint classifier: %w", err)
	}

	if log != nil {
		log.Info("analyzer initialized",
			logger.String("version", cfg.Version),
			logger.Int("categories", len(categoryProfiles)),
			logger.Int("departments", len(departmentProfiles)),
			logger.Int("keywords", index.KeywordCount()))
	}

	return &Analyzer{
		complaints: complaints,
		router:     NewDepartmentRouter(index, log),
		extractor:  NewLocationExtractor(log),
		fusion:     NewLocationFusion(geocoder, log),
		index:      index,
		telemetry:  cfg.Telemetry,
		logger:     log,
	}, nil
}

// Analyze runs the complete pipeline over one complaint. Text complaints
// classify on their text; photo complaints classify on their OCR text.
// Location evidence prefers OCR text since that is where addresses hide.
func (a *Analyzer) Analyze(ctx context.Context, complaint *domain.Complaint) *domain.Analysis {
	start := time.Now()

	var span trace.Span
	if a.telemetry != nil {
		ctx, span = a.telemetry.StartSpan(ctx, "complaint.analyze")
		defer span.End()
	}

	text := complaint.Text
	if strings.TrimSpace(text) == "" {
		text = complaint.OCRText
	}
	evidenceText := complaint.OCRText
	if strings.TrimSpace(evidenceText) == "" {
		evidenceText = complaint.Text
	}

	classification := a.Classify(ctx, text, complaint.Vision)
	evidence := a.extractor.Extract(evidenceText)
	fused := a.Fuse(ctx, complaint.GPS, &evidence, complaint.ManualAddress)
	ranking := a.Route(ctx, text, complaint.Vision, &fused)

	analysis := &domain.Analysis{
		ID:             uuid.New().String(),
		Classification: classification,
		Evidence:       evidence,
		Location:       fused,
		Ranking:        ranking,
		Submission:     a.complaints.FormatSubmission(text, classification, fused),
		Suggestions:    a.complaints.Suggest(text, classification),
	}

	if span != nil {
		span.SetAttributes(
			attribute.String("category", classification.Category),
			attribute.String("department", ranking.Primary.Code))
	}
	if a.telemetry != nil {
		a.telemetry.RecordAnalysis(ctx, time.Since(start))
	}
	if a.logger != nil {
		a.logger.Info("complaint analysis complete",
			logger.String("analysis_id", analysis.ID),
			logger.String("category", classification.Category),
			logger.Float64("confidence", classification.Confidence),
			logger.String("department", ranking.Primary.Code),
			logger.String("location_method", fused.Method),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()))
	}

	return analysis
}

// Classify categorizes complaint text, optionally steered by a vision hint.
func (a *Analyzer) Classify(ctx context.Context, text string, hint *domain.VisionHint) domain.ClassificationResult {
	result := a.complaints.Classify(text, hint)
	if a.telemetry != nil {
		a.telemetry.RecordClassification(ctx, result.Category, result.Priority)
	}
	return result
}

// Route ranks departments for complaint text.
func (a *Analyzer) Route(ctx context.Context, text string, hint *domain.VisionHint, location *domain.FusedLocation) domain.DepartmentRanking {
	ranking := a.router.Route(text, hint, location)
	if a.telemetry != nil {
		fallback := ranking.Details.MatchingMethod == domain.MatchingMethodFallback
		a.telemetry.RecordRouting(ctx, ranking.Primary.Code, fallback)
	}
	return ranking
}

// Extract pulls location evidence out of raw text.
func (a *Analyzer) Extract(_ context.Context, text string) domain.LocationEvidence {
	return a.extractor.Extract(text)
}

// Fuse merges GPS, manual and OCR signals into one location decision.
func (a *Analyzer) Fuse(ctx context.Context, gps *domain.GPSCoordinates, evidence *domain.LocationEvidence, manualAddress string) domain.FusedLocation {
	fused := a.fusion.Fuse(ctx, gps, evidence, manualAddress)
	if a.telemetry != nil {
		a.telemetry.RecordFusion(ctx, fused.Method)
	}
	return fused
}

// ValidateCoordinates checks a GPS pair against India's bounds.
func (a *Analyzer) ValidateCoordinates(lat, lon float64) domain.CoordinateValidation {
	return a.fusion.ValidateCoordinates(lat, lon)
}

// Categories returns the category profiles in table order.
func (a *Analyzer) Categories() []domain.CategoryProfile {
	return a.complaints.Categories()
}

// Template returns the submission template for a category.
func (a *Analyzer) Template(category string) domain.ComplaintTemplate {
	return a.complaints.Template(category)
}

// Suggest returns improvement suggestions for a classified complaint.
func (a *Analyzer) Suggest(text string, result domain.ClassificationResult) []string {
	return a.complaints.Suggest(text, result)
}

// FormatSubmission renders an advisory submission record.
func (a *Analyzer) FormatSubmission(text string, result domain.ClassificationResult, location domain.FusedLocation) domain.Submission {
	return a.complaints.FormatSubmission(text, result, location)
}

// Department returns the profile registered under a code.
func (a *Analyzer) Department(code string) (domain.DepartmentProfile, bool) {
	return a.router.Department(code)
}

// Departments returns every department profile in table order.
func (a *Analyzer) Departments() []domain.DepartmentProfile {
	return a.router.Departments()
}

// SearchDepartments matches a free-form query against the directory.
func (a *Analyzer) SearchDepartments(query string) []domain.DepartmentMatch {
	return a.router.SearchDepartments(query)
}
