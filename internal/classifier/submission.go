// internal/classifier/submission.go
package classifier

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

// Subject line limits. Locations longer than the cap are shortened to
// their first comma-separated part, or hard truncated when there is none.
const (
	subjectLocationMaxRunes = 50
	subjectLocationCutRunes = 47
)

const (
	defaultSubmissionDepartment = "General Administration"
	maxSubmissionKeywords       = 10
)

var subjectPrefixes = map[string]string{
	domain.CategoryRoads:          "Road Infrastructure Issue",
	domain.CategoryWater:          "Water Supply/Drainage Issue",
	domain.CategoryElectricity:    "Power/Electrical Issue",
	domain.CategorySanitation:     "Sanitation/Waste Management Issue",
	domain.CategoryHealthcare:     "Healthcare Service Issue",
	domain.CategoryEducation:      "Education/School Issue",
	domain.CategoryTransport:      "Public Transport Issue",
	domain.CategoryPublicServices: "Government Service Issue",
	domain.CategoryHousing:        "Housing/Building Issue",
	domain.CategoryFoodSafety:     "Food Safety Issue",
}

// FormatSubmission renders a ready-to-file complaint record from the
// classification and fused location. Nothing is transmitted anywhere; the
// output is advisory.
func (c *ComplaintClassifier) FormatSubmission(
	text string,
	result domain.ClassificationResult,
	location domain.FusedLocation,
) domain.Submission {
	department := defaultSubmissionDepartment
	if len(result.Departments) > 0 {
		department = result.Departments[0]
	}

	return domain.Submission{
		Subject:     formatSubject(result.Category, location),
		Description: formatDescription(text, result, location),
		Category:    result.Category,
		Priority:    result.Priority,
		Department:  department,
		Location:    formatLocation(location),
		Keywords:    append([]string(nil), result.KeywordsFound...),
	}
}

func formatSubject(category string, location domain.FusedLocation) string {
	loc := location.Address
	if loc == "" {
		loc = "Unspecified Location"
	}
	if runes := []rune(loc); len(runes) > subjectLocationMaxRunes {
		if idx := strings.Index(loc, ","); idx >= 0 {
			loc = loc[:idx]
		} else {
			loc = string(runes[:subjectLocationCutRunes]) + "..."
		}
	}

	prefix, ok := subjectPrefixes[category]
	if !ok {
		prefix = "Public Grievance"
	}
	return prefix + " - " + loc
}

func formatDescription(text string, result domain.ClassificationResult, location domain.FusedLocation) string {
	parts := make([]string, 0, 7)
	parts = append(parts, "Category: "+titleCase(strings.ReplaceAll(result.Category, "_", " ")))
	parts = append(parts, "Priority Level: "+titleCase(result.Priority))

	if location.Address != "" {
		parts = append(parts, "Location: "+location.Address)
	}
	if location.Coordinates != nil {
		parts = append(parts, fmt.Sprintf("GPS Coordinates: %.6f, %.6f",
			location.Coordinates.Latitude, location.Coordinates.Longitude))
	}

	parts = append(parts, "\nComplaint Details:")
	parts = append(parts, text)

	if len(result.KeywordsFound) > 0 {
		keywords := result.KeywordsFound
		if len(keywords) > maxSubmissionKeywords {
			keywords = keywords[:maxSubmissionKeywords]
		}
		parts = append(parts, "\nRelevant Keywords: "+strings.Join(keywords, ", "))
	}

	return strings.Join(parts, "\n")
}

// formatLocation renders the fused address with its detection provenance.
// A zero-value location reads as "Not specified".
func formatLocation(location domain.FusedLocation) string {
	address := location.Address
	if address == "" {
		address = "Not specified"
	}
	if location.Method != "" {
		address += fmt.Sprintf(" (Detected via: %s, Confidence: %s)", location.Method, location.Confidence)
	}
	return address
}

// titleCase capitalizes each word. Casers are stateful, so one is built
// per call rather than shared.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
