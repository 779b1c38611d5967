package domain

import "fmt"

// Department hierarchy levels.
const (
	LevelCentral  = "central"
	LevelState    = "state"
	LevelDistrict = "district"
	LevelLocal    = "local"
)

// Matching methods recorded on a routing decision.
const (
	MatchingMethodHybrid   = "keyword_vision_hybrid"
	MatchingMethodFallback = "fallback"
)

// ContactInfo holds a department's public contact metadata.
type ContactInfo struct {
	Website  string `json:"website,omitempty"`
	Helpline string `json:"helpline,omitempty"`
	Email    string `json:"email,omitempty"`
}

// DepartmentProfile is the static routing profile of one government
// department.
type DepartmentProfile struct {
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	Level       string      `json:"level"`
	Endpoint    string      `json:"cpgrams_endpoint"`
	Ministry    string      `json:"ministry_parent,omitempty"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Weight      float64     `json:"priority_score"`
	Contact     ContactInfo `json:"contact_info"`
}

// Validate reports structural problems in a department profile. Profiles
// are compiled in, so a failure here is a startup error.
func (p *DepartmentProfile) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("department profile has empty code")
	}
	if p.Name == "" {
		return fmt.Errorf("department %s: name is empty", p.Code)
	}
	if len(p.Keywords) == 0 {
		return fmt.Errorf("department %s: no keywords", p.Code)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("department %s: priority score must be positive, got %v", p.Code, p.Weight)
	}
	if p.Endpoint == "" {
		return fmt.Errorf("department %s: endpoint is empty", p.Code)
	}
	switch p.Level {
	case LevelCentral, LevelState, LevelDistrict, LevelLocal:
	default:
		return fmt.Errorf("department %s: unknown level %q", p.Code, p.Level)
	}
	return nil
}

// RankedDepartment is one entry in a routing decision. Description, contact
// and ministry are populated on the primary entry only.
type RankedDepartment struct {
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Level       string       `json:"level"`
	Confidence  float64      `json:"confidence_score"`
	Endpoint    string       `json:"cpgrams_endpoint"`
	Description string       `json:"description,omitempty"`
	Contact     *ContactInfo `json:"contact_info,omitempty"`
	Ministry    string       `json:"ministry_parent,omitempty"`
}

// RoutingInfo is the advisory submission metadata for the winning
// department. Nothing is transmitted; callers decide what to do with it.
type RoutingInfo struct {
	APIEndpoint           string   `json:"api_endpoint"`
	SubmissionMethod      string   `json:"submission_method"`
	RequiredFields        []string `json:"required_fields"`
	EstimatedResponseTime string   `json:"estimated_response_time"`
}

// RoutingDetails records how a routing decision was reached.
type RoutingDetails struct {
	DepartmentsEvaluated int    `json:"total_departments_evaluated"`
	MatchingMethod       string `json:"matching_method"`
	LocationApplied      bool   `json:"location_factor_applied"`
	VisionApplied        bool   `json:"vision_boost_applied"`
	Note                 string `json:"note,omitempty"`
}

// DepartmentRanking is a full routing decision: the winning department, up
// to two alternatives, and submission metadata.
type DepartmentRanking struct {
	Primary         RankedDepartment   `json:"primary_department"`
	Alternatives    []RankedDepartment `json:"alternative_departments,omitempty"`
	Routing         RoutingInfo        `json:"routing_info"`
	KeywordsMatched []string           `json:"keywords_matched,omitempty"`
	Details         RoutingDetails     `json:"analysis_details"`
}

// DepartmentMatch is a directory search hit.
type DepartmentMatch struct {
	Code       string            `json:"code"`
	Department DepartmentProfile `json:"department"`
	Score      float64           `json:"score"`
}
