// internal/classifier/department_test.go
//
//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

func newTestRouter(t *testing.T) *DepartmentRouter {
	t.Helper()

	return NewDepartmentRouter(newTestIndex(t), logger.NewNop())
}

func TestRoute_KeywordAndContextScoring(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	// "national highway" scores 8.5*2 and the MORTH context pattern adds 15.
	ranking := r.Route("pothole on national highway", nil, nil)

	if ranking.Primary.Code != "MORTH" {
		t.Fatalf("expected MORTH, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 32.0 {
		t.Errorf("expected confidence 32.0, got %v", ranking.Primary.Confidence)
	}
	if ranking.Primary.Name != "Ministry of Road Transport & Highways" {
		t.Errorf("unexpected primary name: %s", ranking.Primary.Name)
	}
	if ranking.Primary.Contact == nil || ranking.Primary.Contact.Helpline != "1033" {
		t.Errorf("expected primary contact to be populated, got %+v", ranking.Primary.Contact)
	}
	if !reflect.DeepEqual(ranking.KeywordsMatched, []string{"national highway", "road_issues"}) {
		t.Errorf("unexpected matched keywords: %v", ranking.KeywordsMatched)
	}
	if got := ranking.Routing.APIEndpoint; got != "https://api.cpgrams.gov.in/cpgrams/departments/MORTH/submit" {
		t.Errorf("unexpected api endpoint: %s", got)
	}
	if ranking.Routing.SubmissionMethod != "POST" {
		t.Errorf("expected POST, got %s", ranking.Routing.SubmissionMethod)
	}
	if len(ranking.Routing.RequiredFields) != 9 {
		t.Fatalf("expected 9 required fields, got %v", ranking.Routing.RequiredFields)
	}
	if got := ranking.Routing.RequiredFields[7:]; !reflect.DeepEqual(got, []string{"highway_number", "km_post"}) {
		t.Errorf("expected highway extras, got %v", got)
	}
	if ranking.Routing.EstimatedResponseTime != "30-60 days" {
		t.Errorf("expected central response time, got %s", ranking.Routing.EstimatedResponseTime)
	}
	if ranking.Details.DepartmentsEvaluated != 5 {
		t.Errorf("expected 5 departments evaluated, got %d", ranking.Details.DepartmentsEvaluated)
	}
	if ranking.Details.MatchingMethod != domain.MatchingMethodHybrid {
		t.Errorf("expected hybrid method, got %s", ranking.Details.MatchingMethod)
	}
	if ranking.Details.LocationApplied || ranking.Details.VisionApplied {
		t.Error("expected no location or vision factors")
	}
	if len(ranking.Alternatives) != 0 {
		t.Errorf("expected no alternatives, got %v", ranking.Alternatives)
	}
}

func TestRoute_SharedKeywordTiebreak(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	// "water supply" serves MOJS at 9.0*2 and MUNICIPAL at 8.7*2; the
	// MOJS context pattern adds 15 and settles the near-tie.
	ranking := r.Route("No water supply in our area for the last 3 days.", nil, nil)

	if ranking.Primary.Code != "MOJS" {
		t.Fatalf("expected MOJS, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 33.0 {
		t.Errorf("expected confidence 33.0, got %v", ranking.Primary.Confidence)
	}
	if len(ranking.Alternatives) != 1 {
		t.Fatalf("expected one alternative, got %v", ranking.Alternatives)
	}
	if ranking.Alternatives[0].Code != "MUNICIPAL" {
		t.Errorf("expected MUNICIPAL alternative, got %s", ranking.Alternatives[0].Code)
	}
	assert.InDelta(t, 17.4, ranking.Alternatives[0].Confidence, 1e-9)
	if !reflect.DeepEqual(ranking.KeywordsMatched, []string{"water supply", "water_issues"}) {
		t.Errorf("unexpected matched keywords: %v", ranking.KeywordsMatched)
	}
	if got := ranking.Routing.RequiredFields[7:]; !reflect.DeepEqual(got, []string{"water_source_type", "quality_issue"}) {
		t.Errorf("expected water extras, got %v", got)
	}
	if ranking.Details.DepartmentsEvaluated != 5 {
		t.Errorf("expected 5 departments evaluated, got %d", ranking.Details.DepartmentsEvaluated)
	}
}

func TestRoute_FallbackWhenNothingScores(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	ranking := r.Route("completely unrelated text", nil, nil)

	if ranking.Primary.Code != "GENERAL" {
		t.Fatalf("expected GENERAL fallback, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 30.0 {
		t.Errorf("expected fallback confidence 30.0, got %v", ranking.Primary.Confidence)
	}
	if ranking.Primary.Level != domain.LevelState {
		t.Errorf("expected state level, got %s", ranking.Primary.Level)
	}
	if ranking.Primary.Contact == nil || ranking.Primary.Contact.Helpline != "1076" {
		t.Errorf("expected helpline 1076, got %+v", ranking.Primary.Contact)
	}
	if ranking.Details.MatchingMethod != domain.MatchingMethodFallback {
		t.Errorf("expected fallback method, got %s", ranking.Details.MatchingMethod)
	}
	if ranking.Details.Note == "" {
		t.Error("expected explanatory note on fallback")
	}
	if ranking.Details.DepartmentsEvaluated != 0 {
		t.Errorf("expected 0 departments evaluated, got %d", ranking.Details.DepartmentsEvaluated)
	}
	if len(ranking.KeywordsMatched) != 0 {
		t.Errorf("expected no matched keywords, got %v", ranking.KeywordsMatched)
	}
	want := []string{"complaint_description", "complainant_name", "location"}
	if !reflect.DeepEqual(ranking.Routing.RequiredFields, want) {
		t.Errorf("unexpected fallback fields: %v", ranking.Routing.RequiredFields)
	}
	if ranking.Routing.EstimatedResponseTime != "30 days" {
		t.Errorf("expected 30 days, got %s", ranking.Routing.EstimatedResponseTime)
	}
}

func TestRoute_VisionBoosts(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	hint := &domain.VisionHint{
		Category:            "electricity",
		SuggestedDepartment: "Ministry of Power",
	}
	ranking := r.Route("nothing matches at all", hint, nil)

	// Category hint 25 plus suggested-name hit 30, on a department the
	// text alone never scored.
	if ranking.Primary.Code != "MOP" {
		t.Fatalf("expected MOP, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 55.0 {
		t.Errorf("expected confidence 55.0, got %v", ranking.Primary.Confidence)
	}
	if !ranking.Details.VisionApplied {
		t.Error("expected vision factor to be recorded")
	}
	if ranking.Details.LocationApplied {
		t.Error("expected no location factor")
	}
}

func TestRoute_EmptySuggestedDepartmentIsIgnored(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	hint := &domain.VisionHint{SuggestedDepartment: "   "}
	ranking := r.Route("nothing matches at all", hint, nil)

	// A blank suggestion must not boost every department into the ranking.
	if ranking.Primary.Code != "GENERAL" {
		t.Errorf("expected GENERAL fallback, got %s", ranking.Primary.Code)
	}
}

func TestRoute_LocationBoosts(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	location := &domain.FusedLocation{Address: "Gandhi Colony, Ward 5"}
	ranking := r.Route("garbage collection problem in our colony", nil, location)

	// MUNICIPAL: garbage collection 8.7*2, context 15, ward boost 10.
	// MOHUA: garbage 8.2*2, not eligible for the local boost.
	if ranking.Primary.Code != "MUNICIPAL" {
		t.Fatalf("expected MUNICIPAL, got %s", ranking.Primary.Code)
	}
	assert.InDelta(t, 42.4, ranking.Primary.Confidence, 1e-9, "keyword + context + local boost")
	if ranking.Routing.EstimatedResponseTime != "3-7 days" {
		t.Errorf("expected local response time, got %s", ranking.Routing.EstimatedResponseTime)
	}
	if len(ranking.Routing.RequiredFields) != 7 {
		t.Errorf("expected base fields only, got %v", ranking.Routing.RequiredFields)
	}
	if !ranking.Details.LocationApplied {
		t.Error("expected location factor to be recorded")
	}
	if ranking.Details.DepartmentsEvaluated != 6 {
		t.Errorf("expected 6 departments evaluated, got %d", ranking.Details.DepartmentsEvaluated)
	}

	if len(ranking.Alternatives) != 1 {
		t.Fatalf("expected one alternative, got %v", ranking.Alternatives)
	}
	alt := ranking.Alternatives[0]
	if alt.Code != "MOHUA" {
		t.Errorf("expected MOHUA alternative, got %s", alt.Code)
	}
	assert.InDelta(t, 16.4, alt.Confidence, 1e-9)
	if alt.Description != "" || alt.Contact != nil {
		t.Error("alternatives should carry identity fields only")
	}

	want := []string{"garbage", "garbage collection", "garbage_issues"}
	if !reflect.DeepEqual(ranking.KeywordsMatched, want) {
		t.Errorf("unexpected matched keywords: %v", ranking.KeywordsMatched)
	}
}

func TestRoute_LocationBoostOnlyReinforcesExistingEntries(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	// PWD never scored and never entered the table, so the local boost
	// skips it. MUNICIPAL holds a zero context entry and is lifted to 10.
	location := &domain.FusedLocation{Address: "MG Street Colony Ward"}
	ranking := r.Route("random text", nil, location)

	if ranking.Primary.Code != "MUNICIPAL" {
		t.Fatalf("expected MUNICIPAL, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 10.0 {
		t.Errorf("expected confidence 10.0, got %v", ranking.Primary.Confidence)
	}
	for _, alt := range ranking.Alternatives {
		if alt.Code == "PWD" {
			t.Error("PWD must not be created by a location boost")
		}
	}
}

func TestRoute_EmergencyResponseTime(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	ranking := r.Route("theft complaint to police", nil, nil)

	if ranking.Primary.Code != "POLICE" {
		t.Fatalf("expected POLICE, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 57.0 {
		t.Errorf("expected confidence 57.0, got %v", ranking.Primary.Confidence)
	}
	if ranking.Routing.EstimatedResponseTime != "24-48 hours" {
		t.Errorf("expected emergency response time, got %s", ranking.Routing.EstimatedResponseTime)
	}
	if got := ranking.Routing.RequiredFields[7:]; !reflect.DeepEqual(got, []string{"incident_type", "urgency_level"}) {
		t.Errorf("expected police extras, got %v", got)
	}
}

func TestRoute_ConfidenceCappedAt100(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	// Six water keywords and three context matches push MOJS far past the
	// cap; the reported confidence must not follow.
	text := "drinking water supply problem, water quality bad, bore well dry, hand pump broken, water scarcity"
	ranking := r.Route(text, nil, nil)

	if ranking.Primary.Code != "MOJS" {
		t.Fatalf("expected MOJS, got %s", ranking.Primary.Code)
	}
	if ranking.Primary.Confidence != 100.0 {
		t.Errorf("expected capped confidence 100.0, got %v", ranking.Primary.Confidence)
	}
}

func TestRoute_Deterministic(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)
	text := "garbage collection near the national highway and water supply problems"
	location := &domain.FusedLocation{Address: "Shastri Colony, Pune District"}

	first := r.Route(text, nil, location)
	second := r.Route(text, nil, location)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical rankings, got %+v and %+v", first, second)
	}
}

func TestDepartment_Lookup(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	morth, ok := r.Department("MORTH")
	if !ok {
		t.Fatal("expected MORTH to be registered")
	}
	if morth.Name != "Ministry of Road Transport & Highways" {
		t.Errorf("unexpected name: %s", morth.Name)
	}

	if _, ok := r.Department("NOPE"); ok {
		t.Error("expected unknown code to be rejected")
	}
}

func TestDepartments_TableOrder(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	departments := r.Departments()
	if len(departments) != 15 {
		t.Fatalf("expected 15 departments, got %d", len(departments))
	}
	if departments[0].Code != "MORTH" {
		t.Errorf("expected MORTH first, got %s", departments[0].Code)
	}
	if departments[14].Code != "POLLUTION" {
		t.Errorf("expected POLLUTION last, got %s", departments[14].Code)
	}
}

func TestSearchDepartments(t *testing.T) {
	t.Helper()

	r := newTestRouter(t)

	t.Run("empty query matches nothing", func(t *testing.T) {
		if got := r.SearchDepartments("  "); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("keyword and description hits", func(t *testing.T) {
		matches := r.SearchDepartments("water")

		if len(matches) != 3 {
			t.Fatalf("expected 3 matches, got %v", matches)
		}
		// MOJS: nine keyword hits plus the description.
		if matches[0].Code != "MOJS" || matches[0].Score != 110.0 {
			t.Errorf("expected MOJS at 110, got %s at %v", matches[0].Code, matches[0].Score)
		}
		if matches[1].Code != "MUNICIPAL" || matches[1].Score != 30.0 {
			t.Errorf("expected MUNICIPAL at 30, got %s at %v", matches[1].Code, matches[1].Score)
		}
		if matches[2].Code != "POLLUTION" || matches[2].Score != 10.0 {
			t.Errorf("expected POLLUTION at 10, got %s at %v", matches[2].Code, matches[2].Score)
		}
	})

	t.Run("name match outranks keyword match", func(t *testing.T) {
		matches := r.SearchDepartments("police")

		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %v", matches)
		}
		if matches[0].Code != "POLICE" || matches[0].Score != 80.0 {
			t.Errorf("expected POLICE at 80, got %s at %v", matches[0].Code, matches[0].Score)
		}
		if matches[1].Code != "RAILWAYS" || matches[1].Score != 10.0 {
			t.Errorf("expected RAILWAYS at 10, got %s at %v", matches[1].Code, matches[1].Score)
		}
	})
}
