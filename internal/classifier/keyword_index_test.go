// internal/classifier/keyword_index_test.go
//
//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"testing"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

func newTestIndex(t *testing.T) *KeywordIndex {
	t.Helper()

	ix, err := NewKeywordIndex(categoryProfiles, departmentProfiles, logger.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error building index: %v", err)
	}
	return ix
}

func TestNewKeywordIndex_BuildsFromTables(t *testing.T) {
	t.Helper()

	ix := newTestIndex(t)

	if ix.KeywordCount() == 0 {
		t.Fatal("expected a populated index")
	}
	if got := len(ix.categoryKeys); got == 0 {
		t.Errorf("expected category keywords, got %d", got)
	}
	if got := len(ix.deptKeys); got == 0 {
		t.Errorf("expected department keywords, got %d", got)
	}
}

func TestNewKeywordIndex_RejectsDuplicateDepartmentCode(t *testing.T) {
	t.Helper()

	depts := []domain.DepartmentProfile{
		{
			Name: "First", Code: "DUP", Level: domain.LevelState,
			Endpoint: "/cpgrams/departments/DUP/submit",
			Keywords: []string{"one"}, Weight: 1.0,
		},
		{
			Name: "Second", Code: "DUP", Level: domain.LevelState,
			Endpoint: "/cpgrams/departments/DUP/submit",
			Keywords: []string{"two"}, Weight: 1.0,
		},
	}

	_, err := NewKeywordIndex(categoryProfiles, depts, logger.NewNop(), nil)
	if err == nil {
		t.Fatal("expected duplicate code to be rejected")
	}
}

func TestNewKeywordIndex_RejectsMalformedCategory(t *testing.T) {
	t.Helper()

	cats := []domain.CategoryProfile{
		{ID: "broken", Priority: domain.PriorityHigh},
	}

	_, err := NewKeywordIndex(cats, departmentProfiles, logger.NewNop(), nil)
	if err == nil {
		t.Fatal("expected category without primary keywords to be rejected")
	}
}

func TestKeywordIndex_Scan(t *testing.T) {
	t.Helper()

	ix := newTestIndex(t)

	present := ix.Scan("Huge POTHOLE on the road near the hospital")

	for _, want := range []string{"pothole", "road", "hospital"} {
		if !present[want] {
			t.Errorf("expected %q to be present", want)
		}
	}
	if present["water"] {
		t.Error("did not expect water to be present")
	}
}

func TestKeywordIndex_Associations(t *testing.T) {
	t.Helper()

	ix := newTestIndex(t)

	roads := ix.CategoryAssociations("road")
	if len(roads) != 1 || roads[0].Category != domain.CategoryRoads || roads[0].Weight != primaryKeywordWeight {
		t.Errorf("unexpected associations for road: %+v", roads)
	}

	// "smell" sits in the water secondary tier and in both the sanitation
	// secondary and local tiers, so a single occurrence scores all three.
	smell := ix.CategoryAssociations("smell")
	if len(smell) != 3 {
		t.Fatalf("expected 3 associations for smell, got %d: %+v", len(smell), smell)
	}

	hospital := ix.DepartmentAssociations("hospital")
	if len(hospital) != 1 || hospital[0].Code != "MOHFW" {
		t.Errorf("unexpected department associations for hospital: %+v", hospital)
	}

	if got := ix.CategoryAssociations("no-such-keyword"); got != nil {
		t.Errorf("expected nil for unknown keyword, got %+v", got)
	}
}

func TestKeywordIndex_KeywordOrderIsStable(t *testing.T) {
	t.Helper()

	ix := newTestIndex(t)

	if ix.categoryKeys[0] != "road" {
		t.Errorf("expected first category keyword to be road, got %q", ix.categoryKeys[0])
	}
	if ix.deptKeys[0] != "national highway" {
		t.Errorf("expected first department keyword to be national highway, got %q", ix.deptKeys[0])
	}

	seen := make(map[string]int)
	for _, kw := range ix.categoryKeys {
		seen[kw]++
	}
	if seen["hospital"] != 1 {
		t.Errorf("expected hospital to appear once in category keys, got %d", seen["hospital"])
	}
}
