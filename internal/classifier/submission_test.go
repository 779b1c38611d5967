// internal/classifier/submission_test.go
//
//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

func TestFormatSubject(t *testing.T) {
	t.Helper()

	longAddress := "Some Extremely Long Residential Address Line Beyond Fifty, Mumbai"

	tests := []struct {
		name     string
		category string
		location domain.FusedLocation
		expected string
	}{
		{
			name:     "missing location",
			category: domain.CategoryRoads,
			expected: "Road Infrastructure Issue - Unspecified Location",
		},
		{
			name:     "unknown category",
			category: domain.CategoryOther,
			location: domain.FusedLocation{Address: "Pune"},
			expected: "Public Grievance - Pune",
		},
		{
			name:     "long location shortens to first comma part",
			category: domain.CategoryWater,
			location: domain.FusedLocation{Address: longAddress},
			expected: "Water Supply/Drainage Issue - Some Extremely Long Residential Address Line Beyond Fifty",
		},
		{
			name:     "long location without comma truncates",
			category: domain.CategorySanitation,
			location: domain.FusedLocation{Address: strings.Repeat("a", 60)},
			expected: "Sanitation/Waste Management Issue - " + strings.Repeat("a", 47) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSubject(tt.category, tt.location)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatLocation(t *testing.T) {
	t.Helper()

	tests := []struct {
		name     string
		location domain.FusedLocation
		expected string
	}{
		{
			name:     "zero value",
			expected: "Not specified",
		},
		{
			name:     "address without provenance",
			location: domain.FusedLocation{Address: "Andheri, Mumbai"},
			expected: "Andheri, Mumbai",
		},
		{
			name: "address with provenance",
			location: domain.FusedLocation{
				Address:    "Andheri, Mumbai",
				Method:     domain.MethodManual,
				Confidence: domain.ConfidenceHigh,
			},
			expected: "Andheri, Mumbai (Detected via: manual, Confidence: high)",
		},
		{
			name: "missing address keeps provenance",
			location: domain.FusedLocation{
				Method:     domain.MethodNone,
				Confidence: domain.ConfidenceLow,
			},
			expected: "Not specified (Detected via: none, Confidence: low)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatLocation(tt.location)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	t.Helper()

	if got := titleCase("food safety"); got != "Food Safety" {
		t.Errorf("expected Food Safety, got %q", got)
	}
	if got := titleCase("high"); got != "High" {
		t.Errorf("expected High, got %q", got)
	}
}

func TestFormatSubmission(t *testing.T) {
	t.Helper()

	c := newTestClassifier(t)

	result := domain.ClassificationResult{
		Category:      domain.CategoryWater,
		Priority:      domain.PriorityHigh,
		Departments:   []string{"Ministry of Jal Shakti", "Water Supply Department"},
		KeywordsFound: []string{"water", "leak"},
	}
	location := domain.FusedLocation{
		Coordinates: &domain.GPSCoordinates{Latitude: 19.1, Longitude: 72.8},
		Address:     "Andheri, Mumbai",
		Confidence:  domain.ConfidenceHigh,
		Method:      domain.MethodManual,
	}

	sub := c.FormatSubmission("Water leaking near pipe", result, location)

	if sub.Subject != "Water Supply/Drainage Issue - Andheri, Mumbai" {
		t.Errorf("unexpected subject: %q", sub.Subject)
	}
	expectedDescription := "Category: Water\n" +
		"Priority Level: High\n" +
		"Location: Andheri, Mumbai\n" +
		"GPS Coordinates: 19.100000, 72.800000\n" +
		"\nComplaint Details:\n" +
		"Water leaking near pipe\n" +
		"\nRelevant Keywords: water, leak"
	if sub.Description != expectedDescription {
		t.Errorf("unexpected description:\n%q\nwant:\n%q", sub.Description, expectedDescription)
	}
	if sub.Category != domain.CategoryWater || sub.Priority != domain.PriorityHigh {
		t.Errorf("unexpected category/priority: %s/%s", sub.Category, sub.Priority)
	}
	if sub.Department != "Ministry of Jal Shakti" {
		t.Errorf("unexpected department: %q", sub.Department)
	}
	if sub.Location != "Andheri, Mumbai (Detected via: manual, Confidence: high)" {
		t.Errorf("unexpected location: %q", sub.Location)
	}
	if !reflect.DeepEqual(sub.Keywords, []string{"water", "leak"}) {
		t.Errorf("unexpected keywords: %v", sub.Keywords)
	}
}

func TestFormatSubmission_Defaults(t *testing.T) {
	t.Helper()

	c := newTestClassifier(t)

	sub := c.FormatSubmission("", domain.ZeroClassification(), domain.FusedLocation{})

	if sub.Subject != "Public Grievance - Unspecified Location" {
		t.Errorf("unexpected subject: %q", sub.Subject)
	}
	if sub.Department != "General Administration" {
		t.Errorf("unexpected department: %q", sub.Department)
	}
	if sub.Location != "Not specified" {
		t.Errorf("unexpected location: %q", sub.Location)
	}
	if !strings.Contains(sub.Description, "Category: Other") {
		t.Errorf("expected titled category in description: %q", sub.Description)
	}
	if strings.Contains(sub.Description, "Relevant Keywords") {
		t.Errorf("expected no keyword section: %q", sub.Description)
	}
}

func TestFormatSubmission_KeywordListCapped(t *testing.T) {
	t.Helper()

	c := newTestClassifier(t)

	keywords := make([]string, 0, 12)
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		keywords = append(keywords, "kw_"+suffix)
	}
	result := domain.ClassificationResult{
		Category:      domain.CategoryRoads,
		Priority:      domain.PriorityHigh,
		KeywordsFound: keywords,
	}

	sub := c.FormatSubmission("some text", result, domain.FusedLocation{})

	// The description shows the first ten; the record keeps all of them.
	if !strings.Contains(sub.Description, "kw_j") {
		t.Errorf("expected tenth keyword in description: %q", sub.Description)
	}
	if strings.Contains(sub.Description, "kw_k") {
		t.Errorf("expected eleventh keyword to be dropped: %q", sub.Description)
	}
	if len(sub.Keywords) != 12 {
		t.Errorf("expected full keyword copy, got %v", sub.Keywords)
	}
}
