// internal/classifier/category.go
package classifier

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// Confidence shaping. The winning score is normalized by complaint length
// so a short complaint with one strong keyword is not outranked by a long
// rambling one.
const (
	wordCountFactor     = 0.3
	minWordNormalizer   = 1.0
	confidenceScale     = 100.0
	maxConfidence       = 100.0
	secondaryScoreRatio = 0.3
)

// Vision hint adjustments.
const (
	locationHintBoost  = 15.0
	visualElementBoost = 10.0
)

// ComplaintClassifier scores complaint text against the category profiles.
// Instances are immutable after construction and safe for concurrent use.
type ComplaintClassifier struct {
	index    *KeywordIndex
	profiles []domain.CategoryProfile
	byID     map[string]*domain.CategoryProfile
	phrases  map[string][]*regexp.Regexp
	logger   logger.Logger
}

// NewComplaintClassifier compiles the category phrase patterns and prepares
// the scorer. The keyword index must be built from the same profile table.
func NewComplaintClassifier(index *KeywordIndex, log logger.Logger) (*ComplaintClassifier, error) {
	byID := make(map[string]*domain.CategoryProfile, len(categoryProfiles))
	phrases := make(map[string][]*regexp.Regexp, len(categoryProfiles))

	for i := range categoryProfiles {
		p := &categoryProfiles[i]
		byID[p.ID] = p
		for _, raw := range p.PhrasePatterns {
			re, err := regexp.Compile("(?i)" + raw)
			if err != nil {
				return nil, fmt.Errorf("category %s: compile phrase pattern %q: %w", p.ID, raw, err)
			}
			phrases[p.ID] = append(phrases[p.ID], re)
		}
	}

	return &ComplaintClassifier{
		index:    index,
		profiles: categoryProfiles,
		byID:     byID,
		phrases:  phrases,
		logger:   log,
	}, nil
}

// Classify scores the text against every category and returns the ranked
// result. Empty or whitespace-only text returns the zero result without
// consulting the vision hint.
func (c *ComplaintClassifier) Classify(text string, hint *domain.VisionHint) domain.ClassificationResult {
	result := domain.ZeroClassification()
	if strings.TrimSpace(text) == "" {
		return result
	}

	present := c.index.Scan(text)

	scores := make(map[string]float64, len(c.profiles))
	for i := range c.profiles {
		scores[c.profiles[i].ID] = 0
	}

	keywordsFound := make([]string, 0, len(present))
	for _, kw := range c.index.categoryKeys {
		if !present[kw] {
			continue
		}
		for _, assoc := range c.index.CategoryAssociations(kw) {
			scores[assoc.Category] += assoc.Weight
		}
		keywordsFound = append(keywordsFound, kw)
	}

	for i := range c.profiles {
		id := c.profiles[i].ID
		for _, re := range c.phrases[id] {
			if re.MatchString(text) {
				scores[id] += phraseMatchBonus
			}
		}
	}

	ranked := c.rank(scores)
	if top := ranked[0]; top.score > 0 {
		profile := c.byID[top.category]
		result.Category = top.category
		result.Confidence = lengthNormalizedConfidence(top.score, text)
		result.Priority = profile.Priority
		result.Departments = append([]string(nil), profile.Departments...)
		result.KeywordsFound = keywordsFound

		threshold := top.score * secondaryScoreRatio
		for _, entry := range ranked[1:] {
			if entry.score > threshold && entry.score > 0 {
				result.SecondaryCategories = append(result.SecondaryCategories, domain.SecondaryCategory{
					Category:    entry.category,
					Score:       entry.score,
					Departments: append([]string(nil), c.byID[entry.category].Departments...),
				})
			}
		}
	}
	result.CategoryScores = scores

	c.applyVisionHint(&result, hint)

	if c.logger != nil {
		c.logger.Debug("complaint classified",
			logger.String("category", result.Category),
			logger.Float64("confidence", result.Confidence),
			logger.Int("keywords_found", len(result.KeywordsFound)))
	}

	return result
}

// Categories returns the category profiles in table order.
func (c *ComplaintClassifier) Categories() []domain.CategoryProfile {
	out := make([]domain.CategoryProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

type categoryScore struct {
	category string
	score    float64
}

// rank orders the scores descending. Ties keep table order, so equal
// scores resolve the same way every run.
func (c *ComplaintClassifier) rank(scores map[string]float64) []categoryScore {
	ranked := make([]categoryScore, 0, len(c.profiles))
	for i := range c.profiles {
		id := c.profiles[i].ID
		ranked = append(ranked, categoryScore{category: id, score: scores[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

func lengthNormalizedConfidence(score float64, text string) float64 {
	words := float64(len(strings.Fields(text)))
	normalizer := math.Max(words*wordCountFactor, minWordNormalizer)
	confidence := math.Min(score/normalizer*confidenceScale, maxConfidence)
	return math.Round(confidence*100) / 100
}

// applyVisionHint adjusts the ranked result with signals from an attached
// photo. Location text can confirm roads or healthcare; visual elements
// only lift a result that would otherwise be "other". The adjustment
// touches category and confidence, never priority or departments.
func (c *ComplaintClassifier) applyVisionHint(result *domain.ClassificationResult, hint *domain.VisionHint) {
	if hint == nil {
		return
	}

	if location := strings.ToLower(hint.LocationText); location != "" {
		switch {
		case strings.Contains(location, "highway") || strings.Contains(location, "nh"):
			if result.Category == domain.CategoryOther || result.Category == domain.CategoryRoads {
				result.Category = domain.CategoryRoads
				result.Confidence = math.Min(result.Confidence+locationHintBoost, maxConfidence)
			}
		case strings.Contains(location, "hospital") || strings.Contains(location, "clinic"):
			if result.Category == domain.CategoryOther || result.Category == domain.CategoryHealthcare {
				result.Category = domain.CategoryHealthcare
				result.Confidence = math.Min(result.Confidence+locationHintBoost, maxConfidence)
			}
		}
	}

	for _, element := range hint.VisualElements {
		if result.Category != domain.CategoryOther {
			break
		}
		switch element {
		case "road_sign", "traffic_signal", "vehicle":
			result.Category = domain.CategoryRoads
			result.Confidence = math.Min(result.Confidence+visualElementBoost, maxConfidence)
		case "water_body", "pipe", "tap":
			result.Category = domain.CategoryWater
			result.Confidence = math.Min(result.Confidence+visualElementBoost, maxConfidence)
		}
	}
}
