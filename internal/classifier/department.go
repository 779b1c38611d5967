// internal/classifier/department.go
package classifier

import (
	"math"
	"sort"
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// DepartmentRouter ranks government departments for a complaint and
// assembles submission metadata for the winner. Instances are immutable
// after construction and safe for concurrent use.
type DepartmentRouter struct {
	index    *KeywordIndex
	profiles []domain.DepartmentProfile
	byCode   map[string]*domain.DepartmentProfile
	logger   logger.Logger
}

// NewDepartmentRouter prepares the router. The keyword index must be built
// from the same department table.
func NewDepartmentRouter(index *KeywordIndex, log logger.Logger) *DepartmentRouter {
	byCode := make(map[string]*domain.DepartmentProfile, len(departmentProfiles))
	for i := range departmentProfiles {
		byCode[departmentProfiles[i].Code] = &departmentProfiles[i]
	}
	return &DepartmentRouter{
		index:    index,
		profiles: departmentProfiles,
		byCode:   byCode,
		logger:   log,
	}
}

// Route scores every department against the complaint and returns the top
// three with submission metadata. A complaint that matches nothing routes
// to the general administration fallback.
func (r *DepartmentRouter) Route(text string, hint *domain.VisionHint, location *domain.FusedLocation) domain.DepartmentRanking {
	found := r.matchKeywords(text)
	scores := r.scoreKeywords(found)
	r.applyContextPatterns(scores, text)
	if hint != nil {
		r.applyVisionBoosts(scores, hint)
	}
	if location != nil {
		r.applyLocationBoosts(scores, location.Address)
	}

	evaluated := len(scores)
	ranked := r.rank(scores)
	if len(ranked) == 0 {
		if r.logger != nil {
			r.logger.Debug("no department scored, routing to fallback")
		}
		return fallbackRanking()
	}

	primary := r.byCode[ranked[0].code]
	contact := primary.Contact
	ranking := domain.DepartmentRanking{
		Primary: domain.RankedDepartment{
			Name:        primary.Name,
			Code:        primary.Code,
			Level:       primary.Level,
			Confidence:  math.Min(ranked[0].score, maxRoutingConfidence),
			Endpoint:    primary.Endpoint,
			Description: primary.Description,
			Contact:     &contact,
			Ministry:    primary.Ministry,
		},
		Routing: domain.RoutingInfo{
			APIEndpoint:           cpgramsAPIBase + primary.Endpoint,
			SubmissionMethod:      "POST",
			RequiredFields:        requiredFields(primary.Code),
			EstimatedResponseTime: responseTime(primary),
		},
		KeywordsMatched: found,
		Details: domain.RoutingDetails{
			DepartmentsEvaluated: evaluated,
			MatchingMethod:       domain.MatchingMethodHybrid,
			LocationApplied:      location != nil,
			VisionApplied:        hint != nil,
		},
	}

	for _, alt := range ranked[1:] {
		p := r.byCode[alt.code]
		ranking.Alternatives = append(ranking.Alternatives, domain.RankedDepartment{
			Name:       p.Name,
			Code:       p.Code,
			Level:      p.Level,
			Confidence: math.Min(alt.score, maxRoutingConfidence),
			Endpoint:   p.Endpoint,
		})
	}

	if r.logger != nil {
		r.logger.Debug("department ranking complete",
			logger.String("primary", ranking.Primary.Code),
			logger.Float64("confidence", ranking.Primary.Confidence),
			logger.Int("evaluated", evaluated))
	}

	return ranking
}

// matchKeywords reports every department keyword present in the text, in
// table order, followed by the names of any matching issue patterns.
func (r *DepartmentRouter) matchKeywords(text string) []string {
	present := r.index.Scan(text)

	found := make([]string, 0, len(present))
	for _, kw := range r.index.deptKeys {
		if present[kw] {
			found = append(found, kw)
		}
	}
	for _, ip := range issuePatterns {
		if ip.pattern.MatchString(text) {
			found = append(found, ip.name)
		}
	}
	return found
}

// scoreKeywords accumulates base scores. Issue pattern names carry no
// associations and contribute nothing here.
func (r *DepartmentRouter) scoreKeywords(found []string) map[string]float64 {
	scores := make(map[string]float64, len(r.profiles))
	for _, kw := range found {
		for _, assoc := range r.index.DepartmentAssociations(kw) {
			scores[assoc.Code] += assoc.Weight * keywordScoreMultiplier
		}
	}
	return scores
}

func (r *DepartmentRouter) applyContextPatterns(scores map[string]float64, text string) {
	for _, cp := range contextPatterns {
		if _, ok := scores[cp.code]; !ok {
			scores[cp.code] = 0
		}
		for _, re := range cp.patterns {
			if re.MatchString(text) {
				scores[cp.code] += contextPatternBonus
			}
		}
	}
}

// applyVisionBoosts folds a vision hint into the scores. The hinted
// category vouches for its departments whether or not they already scored;
// a directly suggested department name is worth more.
func (r *DepartmentRouter) applyVisionBoosts(scores map[string]float64, hint *domain.VisionHint) {
	for _, code := range categoryDepartmentBoosts[strings.ToLower(hint.Category)] {
		scores[code] += categoryHintBoost
	}

	suggested := strings.ToLower(strings.TrimSpace(hint.SuggestedDepartment))
	if suggested == "" {
		return
	}
	for i := range r.profiles {
		if strings.Contains(strings.ToLower(r.profiles[i].Name), suggested) {
			scores[r.profiles[i].Code] += departmentHintBoost
		}
	}
}

// applyLocationBoosts nudges departments whose jurisdiction matches the
// fused address. Unlike vision boosts these never create entries, only
// reinforce departments that already scored.
func (r *DepartmentRouter) applyLocationBoosts(scores map[string]float64, address string) {
	lowered := strings.ToLower(address)

	if containsAny(lowered, localLocationTerms) {
		for _, code := range localBoostDepartments {
			if _, ok := scores[code]; ok {
				scores[code] += localContextBoost
			}
		}
	}
	if containsAny(lowered, stateLocationTerms) {
		for _, code := range stateBoostDepartments {
			if _, ok := scores[code]; ok {
				scores[code] += stateContextBoost
			}
		}
	}
	if containsAny(lowered, highwayLocationTerms) {
		if _, ok := scores["MORTH"]; ok {
			scores["MORTH"] += highwayContextBoost
		}
	}
}

type departmentScore struct {
	code  string
	score float64
}

// rank keeps departments that actually scored, ordered descending with
// ties in table order, trimmed to the top three.
func (r *DepartmentRouter) rank(scores map[string]float64) []departmentScore {
	ranked := make([]departmentScore, 0, len(scores))
	for i := range r.profiles {
		code := r.profiles[i].Code
		if score, ok := scores[code]; ok && score > 0 {
			ranked = append(ranked, departmentScore{code: code, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > topDepartmentCount {
		ranked = ranked[:topDepartmentCount]
	}
	return ranked
}

func requiredFields(code string) []string {
	fields := append([]string(nil), baseSubmissionFields...)
	return append(fields, departmentExtraFields[code]...)
}

func responseTime(p *domain.DepartmentProfile) string {
	if emergencyDepartments[p.Code] {
		return emergencyResponseTime
	}
	if rt, ok := levelResponseTimes[p.Level]; ok {
		return rt
	}
	return defaultResponseTime
}

// fallbackRanking routes to general administration when nothing scored.
func fallbackRanking() domain.DepartmentRanking {
	return domain.DepartmentRanking{
		Primary: domain.RankedDepartment{
			Name:        "General Administration Department",
			Code:        "GENERAL",
			Level:       domain.LevelState,
			Confidence:  fallbackConfidence,
			Endpoint:    "/cpgrams/departments/GENERAL/submit",
			Description: "General public grievances and administrative issues",
			Contact: &domain.ContactInfo{
				Helpline: "1076",
				Email:    "grievance@gov.in",
			},
		},
		Routing: domain.RoutingInfo{
			APIEndpoint:           cpgramsAPIBase + "/cpgrams/departments/GENERAL/submit",
			SubmissionMethod:      "POST",
			RequiredFields:        []string{"complaint_description", "complainant_name", "location"},
			EstimatedResponseTime: defaultResponseTime,
		},
		Details: domain.RoutingDetails{
			MatchingMethod: domain.MatchingMethodFallback,
			Note:           "Could not identify specific department, routing to general administration",
		},
	}
}

// Department returns the profile registered under a code.
func (r *DepartmentRouter) Department(code string) (domain.DepartmentProfile, bool) {
	p, ok := r.byCode[code]
	if !ok {
		return domain.DepartmentProfile{}, false
	}
	return *p, true
}

// Departments returns every profile in table order.
func (r *DepartmentRouter) Departments() []domain.DepartmentProfile {
	out := make([]domain.DepartmentProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Directory search scores.
const (
	searchNameScore        = 50.0
	searchKeywordScore     = 10.0
	searchDescriptionScore = 20.0
)

// SearchDepartments matches a free-form query against department names,
// keywords and descriptions. Keyword matching is bidirectional so "water"
// finds "water supply" and vice versa. An empty query matches nothing.
func (r *DepartmentRouter) SearchDepartments(query string) []domain.DepartmentMatch {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return nil
	}

	matches := make([]domain.DepartmentMatch, 0)
	for i := range r.profiles {
		p := &r.profiles[i]
		score := 0.0
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			score += searchNameScore
		}
		for _, kw := range p.Keywords {
			if strings.Contains(kw, lowered) || strings.Contains(lowered, kw) {
				score += searchKeywordScore
			}
		}
		if strings.Contains(strings.ToLower(p.Description), lowered) {
			score += searchDescriptionScore
		}
		if score > 0 {
			matches = append(matches, domain.DepartmentMatch{Code: p.Code, Department: *p, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
