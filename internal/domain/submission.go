package domain

// ComplaintTemplate describes the fields a well-formed complaint of a
// category should carry.
type ComplaintTemplate struct {
	RequiredFields       []string `json:"required_fields"`
	OptionalFields       []string `json:"optional_fields"`
	SuggestedDescription string   `json:"suggested_description"`
	UrgencyIndicators    []string `json:"urgency_indicators,omitempty"`
}

// Submission is a formatted, ready-to-file complaint record. It is advisory
// output only; nothing is transmitted.
type Submission struct {
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Analysis bundles every signal-fusion output for one complaint.
type Analysis struct {
	ID             string               `json:"analysis_id"`
	Classification ClassificationResult `json:"classification"`
	Evidence       LocationEvidence     `json:"location_evidence"`
	Location       FusedLocation        `json:"fused_location"`
	Ranking        DepartmentRanking    `json:"department_ranking"`
	Submission     Submission           `json:"submission"`
	Suggestions    []string             `json:"suggestions,omitempty"`
}
