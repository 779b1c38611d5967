// internal/classifier/location.go
package classifier

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// LocationExtractor pulls location evidence out of free-form text, usually
// OCR output from a complaint photo. It never geocodes; see LocationFusion
// for resolution.
type LocationExtractor struct {
	logger logger.Logger
}

// NewLocationExtractor returns a ready extractor.
func NewLocationExtractor(log logger.Logger) *LocationExtractor {
	return &LocationExtractor{logger: log}
}

// Extract finds every location signal in the text: pincode, state, city,
// address keywords, landmarks, and candidate address segments. Text
// without signals yields zero evidence, not an error.
func (e *LocationExtractor) Extract(text string) domain.LocationEvidence {
	evidence := domain.LocationEvidence{}

	if code := findPincode(text); code != "" {
		evidence.Pincode = code
		evidence.Confidence += pincodeConfidence
	}
	if state := statePattern.FindString(text); state != "" {
		evidence.State = state
		evidence.Confidence += stateConfidence
	}
	if city := cityPattern.FindString(text); city != "" {
		evidence.City = city
		evidence.Confidence += cityConfidence
	}
	if keywords := addressKeywordPattern.FindAllString(text, -1); len(keywords) > 0 {
		evidence.AddressKeywords = keywords
		evidence.Confidence += addressConfidence
	}
	if landmarks := landmarkPattern.FindAllString(text, -1); len(landmarks) > 0 {
		if len(landmarks) > maxLandmarks {
			landmarks = landmarks[:maxLandmarks]
		}
		evidence.Landmarks = landmarks
		evidence.Confidence += landmarkConfidence
	}
	if evidence.Confidence > maxEvidenceConfidence {
		evidence.Confidence = maxEvidenceConfidence
	}

	evidence.CandidateAddresses = candidateAddresses(text)

	if e.logger != nil {
		e.logger.Debug("location evidence extracted",
			logger.Int("confidence", evidence.Confidence),
			logger.Int("candidates", len(evidence.CandidateAddresses)))
	}

	return evidence
}

// findPincode returns the first six-digit sequence inside the accepted
// pincode range.
func findPincode(text string) string {
	for _, match := range pincodePattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if n >= pincodeMin && n <= pincodeMax {
			return match
		}
	}
	return ""
}

// candidateAddresses collects text segments that look like full addresses:
// line splits and sentence fragments carrying at least two distinct
// location indicator classes, longest first.
func candidateAddresses(text string) []string {
	seen := make(map[string]bool)
	segments := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !seen[line] {
			seen[line] = true
			segments = append(segments, line)
		}
	}
	for _, fragment := range strings.Split(text, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" && !seen[fragment] {
			seen[fragment] = true
			segments = append(segments, fragment)
		}
	}

	candidates := make([]string, 0, maxCandidateAddresses)
	for _, segment := range segments {
		length := utf8.RuneCountInString(segment)
		if length < minCandidateRunes || length > maxCandidateRunes {
			continue
		}
		if countLocationIndicators(segment) >= minLocationIndicators {
			candidates = append(candidates, segment)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return utf8.RuneCountInString(candidates[i]) > utf8.RuneCountInString(candidates[j])
	})
	if len(candidates) > maxCandidateAddresses {
		candidates = candidates[:maxCandidateAddresses]
	}
	return candidates
}

func countLocationIndicators(segment string) int {
	count := 0
	for _, re := range locationIndicatorPatterns {
		if re.MatchString(segment) {
			count++
		}
	}
	if digitPattern.MatchString(segment) {
		count++
	}
	return count
}
