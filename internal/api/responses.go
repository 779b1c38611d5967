package api

import (
	"github.com/jansunwai/grievance-classifier/internal/domain"
)

// ClassifyRequest asks for one complaint text to be classified.
type ClassifyRequest struct {
	Text   string             `json:"text"             binding:"required"`
	Vision *domain.VisionHint `json:"vision,omitempty"`
}

// ClassifyResponse carries a single classification result.
type ClassifyResponse struct {
	Result domain.ClassificationResult `json:"result"`
}

// BatchItem is one complaint inside a batch request.
type BatchItem struct {
	Text   string             `json:"text"`
	Vision *domain.VisionHint `json:"vision,omitempty"`
}

// BatchClassifyRequest asks for a batch of complaints to be classified.
type BatchClassifyRequest struct {
	Complaints []BatchItem `json:"complaints" binding:"required,min=1"`
}

// BatchClassifyResponse carries batch results in input order.
type BatchClassifyResponse struct {
	Results []domain.ClassificationResult `json:"results"`
	Total   int                           `json:"total"`
}

// RouteRequest asks for a department ranking for one complaint.
type RouteRequest struct {
	Text     string                `json:"text"               binding:"required"`
	Vision   *domain.VisionHint    `json:"vision,omitempty"`
	Location *domain.FusedLocation `json:"location,omitempty"`
}

// RouteResponse carries a full routing decision.
type RouteResponse struct {
	Ranking domain.DepartmentRanking `json:"ranking"`
}

// ExtractRequest asks for location evidence to be pulled from text.
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractResponse carries extracted location evidence.
type ExtractResponse struct {
	Evidence domain.LocationEvidence `json:"evidence"`
}

// FuseRequest asks for location signals to be merged. Every field is
// optional; an empty request fuses to method none.
type FuseRequest struct {
	GPS           *domain.GPSCoordinates   `json:"gps,omitempty"`
	Evidence      *domain.LocationEvidence `json:"evidence,omitempty"`
	ManualAddress string                   `json:"manual_address,omitempty"`
}

// FuseResponse carries the fused location decision.
type FuseResponse struct {
	Location domain.FusedLocation `json:"location"`
}

// AnalyzeRequest asks for the full analysis pipeline over one complaint.
type AnalyzeRequest struct {
	Complaint *domain.Complaint `json:"complaint" binding:"required"`
}

// AnalyzeResponse carries a complete complaint analysis.
type AnalyzeResponse struct {
	Analysis *domain.Analysis `json:"analysis"`
}

// DepartmentsResponse lists the department directory.
type DepartmentsResponse struct {
	Departments []domain.DepartmentProfile `json:"departments"`
	Total       int                        `json:"total"`
}

// DepartmentSearchResponse carries directory search hits.
type DepartmentSearchResponse struct {
	Query   string                   `json:"query"`
	Matches []domain.DepartmentMatch `json:"matches"`
	Total   int                      `json:"total"`
}

// CategoriesResponse lists the complaint category profiles.
type CategoriesResponse struct {
	Categories []domain.CategoryProfile `json:"categories"`
	Total      int                      `json:"total"`
}

// TemplateResponse carries the submission template for a category.
type TemplateResponse struct {
	Category string                   `json:"category"`
	Template domain.ComplaintTemplate `json:"template"`
}
