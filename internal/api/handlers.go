package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jansunwai/grievance-classifier/internal/classifier"
	"github.com/jansunwai/grievance-classifier/internal/processor"
)

// defaultMaxBatchSize caps batch requests when no limit is configured.
const defaultMaxBatchSize = 50

// Handler handles HTTP requests for the grievance classifier API
type Handler struct {
	analyzer     *classifier.Analyzer
	batch        *processor.BatchProcessor
	maxBatchSize int
	logger       Logger
}

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NewHandler creates a new API handler
func NewHandler(
	analyzer *classifier.Analyzer,
	batch *processor.BatchProcessor,
	maxBatchSize int,
	logger Logger,
) *Handler {
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}

	return &Handler{
		analyzer:     analyzer,
		batch:        batch,
		maxBatchSize: maxBatchSize,
		logger:       logger,
	}
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid classification request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.analyzer.Classify(c.Request.Context(), req.Text, req.Vision)

	h.logger.Info("Complaint classified",
		"category", result.Category,
		"confidence", result.Confidence,
		"priority", result.Priority,
	)

	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ClassifyBatch handles POST /api/v1/classify/batch
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch classification request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Complaints) > h.maxBatchSize {
		h.logger.Warn("Batch classification request too large",
			"batch_size", len(req.Complaints),
			"max_batch_size", h.maxBatchSize,
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("batch size %d exceeds maximum %d", len(req.Complaints), h.maxBatchSize),
		})
		return
	}

	items := make([]processor.Item, len(req.Complaints))
	for i, complaint := range req.Complaints {
		items[i] = processor.Item{Text: complaint.Text, Hint: complaint.Vision}
	}

	results, err := h.batch.Process(c.Request.Context(), items)
	if err != nil {
		h.logger.Error("Batch classification failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{Results: results, Total: len(results)})
}

// Route handles POST /api/v1/route
func (h *Handler) Route(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid routing request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ranking := h.analyzer.Route(c.Request.Context(), req.Text, req.Vision, req.Location)

	h.logger.Info("Complaint routed",
		"department", ranking.Primary.Code,
		"confidence", ranking.Primary.Confidence,
		"method", ranking.Details.MatchingMethod,
	)

	c.JSON(http.StatusOK, RouteResponse{Ranking: ranking})
}

// ExtractLocation handles POST /api/v1/locations/extract
func (h *Handler) ExtractLocation(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid location extraction request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evidence := h.analyzer.Extract(c.Request.Context(), req.Text)

	h.logger.Debug("Location evidence extracted",
		"pincode", evidence.Pincode,
		"city", evidence.City,
		"confidence", evidence.Confidence,
	)

	c.JSON(http.StatusOK, ExtractResponse{Evidence: evidence})
}

// FuseLocation handles POST /api/v1/locations/fuse
func (h *Handler) FuseLocation(c *gin.Context) {
	var req FuseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid location fusion request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := h.analyzer.Fuse(c.Request.Context(), req.GPS, req.Evidence, req.ManualAddress)

	h.logger.Info("Location fused",
		"method", location.Method,
		"confidence", location.Confidence,
	)

	c.JSON(http.StatusOK, FuseResponse{Location: location})
}

// Analyze handles POST /api/v1/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analysis request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis := h.analyzer.Analyze(c.Request.Context(), req.Complaint)

	c.JSON(http.StatusOK, AnalyzeResponse{Analysis: analysis})
}

// ListDepartments handles GET /api/v1/departments
func (h *Handler) ListDepartments(c *gin.Context) {
	departments := h.analyzer.Departments()

	c.JSON(http.StatusOK, DepartmentsResponse{
		Departments: departments,
		Total:       len(departments),
	})
}

// SearchDepartments handles GET /api/v1/departments/search
func (h *Handler) SearchDepartments(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	matches := h.analyzer.SearchDepartments(query)

	h.logger.Debug("Department directory searched", "query", query, "matches", len(matches))

	c.JSON(http.StatusOK, DepartmentSearchResponse{
		Query:   query,
		Matches: matches,
		Total:   len(matches),
	})
}

// GetDepartment handles GET /api/v1/departments/:code
func (h *Handler) GetDepartment(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))

	department, ok := h.analyzer.Department(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("department %s not found", code)})
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories := h.analyzer.Categories()

	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// GetCategoryTemplate handles GET /api/v1/categories/:category/template
func (h *Handler) GetCategoryTemplate(c *gin.Context) {
	category := strings.ToLower(c.Param("category"))

	c.JSON(http.StatusOK, TemplateResponse{
		Category: category,
		Template: h.analyzer.Template(category),
	})
}

// ReadyCheck handles GET /ready. The analyzer is built before the server
// starts listening, so a served request means the service is ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
