package domain

import "fmt"

// Complaint categories. CategoryOther is the zero value assigned when no
// keyword evidence is found.
const (
	CategoryRoads          = "roads"
	CategoryWater          = "water"
	CategoryElectricity    = "electricity"
	CategorySanitation     = "sanitation"
	CategoryHealthcare     = "healthcare"
	CategoryEducation      = "education"
	CategoryTransport      = "transport"
	CategoryPublicServices = "public_services"
	CategoryHousing        = "housing"
	CategoryFoodSafety     = "food_safety"
	CategoryOther          = "other"
)

// Priority levels assigned to classified complaints.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// CategoryProfile describes one complaint category: its keyword tiers,
// phrase patterns, static priority, and suggested departments.
type CategoryProfile struct {
	ID             string   `json:"id"`
	Primary        []string `json:"primary"`
	Secondary      []string `json:"secondary"`
	Local          []string `json:"local"`
	PhrasePatterns []string `json:"phrase_patterns,omitempty"`
	Priority       string   `json:"priority"`
	Departments    []string `json:"departments"`
}

// Validate reports structural problems in a category profile. Profiles are
// compiled in, so a failure here is a startup error.
func (p *CategoryProfile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("category profile has empty id")
	}
	if len(p.Primary) == 0 {
		return fmt.Errorf("category %s: no primary keywords", p.ID)
	}
	switch p.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("category %s: unknown priority %q", p.ID, p.Priority)
	}
	return nil
}

// SecondaryCategory is a runner-up category that scored within reach of the
// winner.
type SecondaryCategory struct {
	Category    string   `json:"category"`
	Score       float64  `json:"score"`
	Departments []string `json:"departments,omitempty"`
}

// ClassificationResult is the outcome of classifying one complaint text.
// Inputs with no keyword evidence yield the zero-value result rather than
// an error.
type ClassificationResult struct {
	Category            string              `json:"category"`
	Confidence          float64             `json:"confidence"`
	Priority            string              `json:"priority"`
	SecondaryCategories []SecondaryCategory `json:"secondary_categories,omitempty"`
	Departments         []string            `json:"department_suggestions,omitempty"`
	KeywordsFound       []string            `json:"keywords_found,omitempty"`
	CategoryScores      map[string]float64  `json:"category_scores,omitempty"`
}

// ZeroClassification returns the defined fallback result for inputs that
// carry no usable signal.
func ZeroClassification() ClassificationResult {
	return ClassificationResult{
		Category: CategoryOther,
		Priority: PriorityLow,
	}
}
