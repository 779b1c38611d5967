// internal/classifier/template_test.go
//
//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"reflect"
	"testing"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

func TestTemplate(t *testing.T) {
	t.Helper()

	c := newTestClassifier(t)

	roads := c.Template(domain.CategoryRoads)
	if !reflect.DeepEqual(roads.RequiredFields, []string{"location", "issue_type", "severity"}) {
		t.Errorf("unexpected roads required fields: %v", roads.RequiredFields)
	}
	if len(roads.UrgencyIndicators) != 4 {
		t.Errorf("expected 4 urgency indicators, got %v", roads.UrgencyIndicators)
	}

	// Categories without a dedicated template share the default.
	for _, category := range []string{domain.CategoryHousing, domain.CategoryOther, "unknown"} {
		tpl := c.Template(category)
		if tpl.SuggestedDescription != defaultTemplate.SuggestedDescription {
			t.Errorf("expected default template for %s, got %+v", category, tpl)
		}
	}
}

func TestSuggest(t *testing.T) {
	t.Helper()

	c := newTestClassifier(t)

	tests := []struct {
		name     string
		text     string
		result   domain.ClassificationResult
		expected []string
	}{
		{
			name:   "short urgent complaint hits the cap",
			text:   "Road broken",
			result: domain.ClassificationResult{Category: domain.CategoryRoads, Priority: domain.PriorityHigh},
			expected: []string{
				"Consider adding more details about the issue for better resolution.",
				"Include specific location details (area, landmark, or address).",
				"Consider mentioning if this is an urgent matter requiring immediate attention.",
			},
		},
		{
			name:   "detailed water complaint only misses health impact",
			text:   "There is an urgent water leakage problem near the main market since three days and it is getting worse daily",
			result: domain.ClassificationResult{Category: domain.CategoryWater, Priority: domain.PriorityHigh},
			expected: []string{
				"Describe any health impact or concerns related to this issue.",
			},
		},
		{
			name:   "roads complaint without safety mention",
			text:   "Urgent pothole near city center causing traffic issues since last week making travel slow for everyone daily",
			result: domain.ClassificationResult{Category: domain.CategoryRoads, Priority: domain.PriorityHigh},
			expected: []string{
				"Mention any safety concerns related to this issue.",
			},
		},
		{
			name:     "complete complaint needs nothing",
			text:     "The garbage has been rotting for months near our health center and the smell is unbearable since April",
			result:   domain.ClassificationResult{Category: domain.CategorySanitation, Priority: domain.PriorityMedium},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Suggest(tt.text, tt.result)

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if len(got) > maxSuggestions {
				t.Errorf("suggestions exceed cap: %v", got)
			}
		})
	}
}
