// internal/classifier/template.go
package classifier

import (
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

// complaintTemplates guides complainants on what a well-formed submission
// for each category should contain. Categories without a dedicated
// template fall back to defaultTemplate.
var complaintTemplates = map[string]domain.ComplaintTemplate{
	domain.CategoryRoads: {
		RequiredFields:       []string{"location", "issue_type", "severity"},
		OptionalFields:       []string{"traffic_impact", "safety_concern", "duration"},
		SuggestedDescription: "Please describe the road condition issue, exact location, and how it affects traffic or safety.",
		UrgencyIndicators:    []string{"accident prone", "safety hazard", "traffic jam", "blocking road"},
	},
	domain.CategoryWater: {
		RequiredFields:       []string{"location", "issue_type", "duration"},
		OptionalFields:       []string{"water_quality", "supply_timing", "pressure_issue"},
		SuggestedDescription: "Please describe the water-related issue, location, and duration of the problem.",
		UrgencyIndicators:    []string{"no water supply", "contaminated water", "major leak", "sewage overflow"},
	},
	domain.CategoryElectricity: {
		RequiredFields:       []string{"location", "issue_type", "duration"},
		OptionalFields:       []string{"safety_concern", "equipment_damage", "frequency"},
		SuggestedDescription: "Please describe the electrical issue, location, and duration of the problem.",
		UrgencyIndicators:    []string{"power outage", "hanging wire", "sparking", "transformer issue"},
	},
	domain.CategorySanitation: {
		RequiredFields:       []string{"location", "issue_type"},
		OptionalFields:       []string{"health_impact", "odor_level", "frequency"},
		SuggestedDescription: "Please describe the sanitation issue, location, and health impact if any.",
		UrgencyIndicators:    []string{"health hazard", "disease outbreak", "major spillage", "pest infestation"},
	},
}

var defaultTemplate = domain.ComplaintTemplate{
	RequiredFields:       []string{"location", "issue_type"},
	OptionalFields:       []string{"description", "impact"},
	SuggestedDescription: "Please provide detailed description of the issue and its location.",
}

// Suggestion rules.
const (
	minDetailWords = 10
	maxSuggestions = 3
)

var urgencyTerms = []string{"urgent", "emergency", "immediately", "asap", "critical"}

var timelineTerms = []string{"days", "weeks", "months", "since", "from", "ongoing"}

// Template returns the submission template for a category.
func (c *ComplaintClassifier) Template(category string) domain.ComplaintTemplate {
	if tpl, ok := complaintTemplates[category]; ok {
		return tpl
	}
	return defaultTemplate
}

// Suggest returns up to three improvements that would make the complaint
// easier to process, in fixed rule order.
func (c *ComplaintClassifier) Suggest(text string, result domain.ClassificationResult) []string {
	suggestions := make([]string, 0, maxSuggestions)
	lowered := strings.ToLower(text)

	if len(strings.Fields(text)) < minDetailWords {
		suggestions = append(suggestions, "Consider adding more details about the issue for better resolution.")
	}
	if !strings.Contains(lowered, "location") && !strings.Contains(lowered, "near") {
		suggestions = append(suggestions, "Include specific location details (area, landmark, or address).")
	}
	if result.Priority == domain.PriorityHigh && !containsAny(lowered, urgencyTerms) {
		suggestions = append(suggestions, "Consider mentioning if this is an urgent matter requiring immediate attention.")
	}
	if !containsAny(lowered, timelineTerms) {
		suggestions = append(suggestions, "Mention when the problem started or how long it has been ongoing.")
	}

	switch result.Category {
	case domain.CategoryRoads, domain.CategoryElectricity:
		if !strings.Contains(lowered, "safety") {
			suggestions = append(suggestions, "Mention any safety concerns related to this issue.")
		}
	case domain.CategoryWater, domain.CategorySanitation:
		if !strings.Contains(lowered, "health") {
			suggestions = append(suggestions, "Describe any health impact or concerns related to this issue.")
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
