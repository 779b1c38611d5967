// Package classifier implements grievance analysis: complaint
// categorization, department routing, and location extraction and fusion.
// keyword_index.go implements the Aho-Corasick keyword index shared by the
// category and department scorers for O(n+m) presence scanning.
package classifier

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

// CategoryAssociation links a keyword to a category with its tier weight.
type CategoryAssociation struct {
	Category string
	Weight   float64
}

// DepartmentAssociation links a keyword to a department with its base weight.
type DepartmentAssociation struct {
	Code   string
	Weight float64
}

// KeywordIndex is the inverted index over every category and department
// keyword. It is built once at startup from the validated profile tables
// and never mutated afterwards, so scans and lookups need no locking.
// Needles are matched as substrings, so multi-word phrases and Devanagari
// transliterations both work.
type KeywordIndex struct {
	matcher      *ahocorasick.Matcher
	needles      []string
	categories   map[string][]CategoryAssociation
	departments  map[string][]DepartmentAssociation
	categoryKeys []string // category keywords in profile order, deduplicated
	deptKeys     []string // department keywords in profile order, deduplicated
	telemetry    *telemetry.Provider
	logger       logger.Logger
}

// NewKeywordIndex validates the profile tables and builds the automaton.
// A malformed profile or duplicate department code is a startup error.
func NewKeywordIndex(
	categories []domain.CategoryProfile,
	departments []domain.DepartmentProfile,
	log logger.Logger,
	tp *telemetry.Provider,
) (*KeywordIndex, error) {
	for i := range categories {
		if err := categories[i].Validate(); err != nil {
			return nil, fmt.Errorf("category table invalid: %w", err)
		}
	}
	codes := make(map[string]bool, len(departments))
	for i := range departments {
		if err := departments[i].Validate(); err != nil {
			return nil, fmt.Errorf("department table invalid: %w", err)
		}
		if codes[departments[i].Code] {
			return nil, fmt.Errorf("department table invalid: duplicate code %s", departments[i].Code)
		}
		codes[departments[i].Code] = true
	}

	ix := &KeywordIndex{
		categories:  make(map[string][]CategoryAssociation),
		departments: make(map[string][]DepartmentAssociation),
		telemetry:   tp,
		logger:      log,
	}
	ix.buildCategoryIndex(categories)
	ix.buildDepartmentIndex(departments)
	ix.buildNeedles()

	if log != nil {
		log.Info("keyword index initialized",
			logger.Int("categories", len(categories)),
			logger.Int("departments", len(departments)),
			logger.Int("keywords", len(ix.needles)))
	}

	return ix, nil
}

func (ix *KeywordIndex) buildCategoryIndex(categories []domain.CategoryProfile) {
	seen := make(map[string]bool)
	add := func(category string, keywords []string, weight float64) {
		for _, kw := range keywords {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			ix.categories[normalized] = append(ix.categories[normalized], CategoryAssociation{
				Category: category,
				Weight:   weight,
			})
			if !seen[normalized] {
				seen[normalized] = true
				ix.categoryKeys = append(ix.categoryKeys, normalized)
			}
		}
	}

	for i := range categories {
		p := &categories[i]
		add(p.ID, p.Primary, primaryKeywordWeight)
		add(p.ID, p.Secondary, secondaryKeywordWeight)
		add(p.ID, p.Local, localKeywordWeight)
	}
}

func (ix *KeywordIndex) buildDepartmentIndex(departments []domain.DepartmentProfile) {
	seen := make(map[string]bool)
	for i := range departments {
		p := &departments[i]
		for _, kw := range p.Keywords {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			ix.departments[normalized] = append(ix.departments[normalized], DepartmentAssociation{
				Code:   p.Code,
				Weight: p.Weight,
			})
			if !seen[normalized] {
				seen[normalized] = true
				ix.deptKeys = append(ix.deptKeys, normalized)
			}
		}
	}

	// Heavier departments first when one keyword serves several.
	for _, assocs := range ix.departments {
		sort.SliceStable(assocs, func(i, j int) bool {
			return assocs[i].Weight > assocs[j].Weight
		})
	}
}

func (ix *KeywordIndex) buildNeedles() {
	seen := make(map[string]bool, len(ix.categoryKeys)+len(ix.deptKeys))
	ix.needles = make([]string, 0, len(ix.categoryKeys)+len(ix.deptKeys))
	for _, kw := range ix.categoryKeys {
		if !seen[kw] {
			seen[kw] = true
			ix.needles = append(ix.needles, kw)
		}
	}
	for _, kw := range ix.deptKeys {
		if !seen[kw] {
			seen[kw] = true
			ix.needles = append(ix.needles, kw)
		}
	}
	ix.matcher = ahocorasick.NewStringMatcher(ix.needles)
}

// Scan lowercases the text and reports which indexed keywords occur in it
// as substrings. Each keyword is reported at most once regardless of how
// often it occurs.
func (ix *KeywordIndex) Scan(text string) map[string]bool {
	start := time.Now()

	present := make(map[string]bool)
	hits := ix.matcher.Match([]byte(strings.ToLower(text)))
	for _, hit := range hits {
		if hit >= len(ix.needles) {
			continue
		}
		present[ix.needles[hit]] = true
	}

	if ix.telemetry != nil {
		ix.telemetry.RecordKeywordScan(context.Background(), time.Since(start), len(present))
	}

	return present
}

// CategoryAssociations returns the category associations registered for a
// keyword. Unknown keywords return nil, not an error.
func (ix *KeywordIndex) CategoryAssociations(keyword string) []CategoryAssociation {
	return ix.categories[normalizeKeyword(keyword)]
}

// DepartmentAssociations returns the department associations registered
// for a keyword. Unknown keywords return nil, not an error.
func (ix *KeywordIndex) DepartmentAssociations(keyword string) []DepartmentAssociation {
	return ix.departments[normalizeKeyword(keyword)]
}

// KeywordCount returns the number of distinct indexed keywords.
func (ix *KeywordIndex) KeywordCount() int {
	return len(ix.needles)
}

func normalizeKeyword(kw string) string {
	return strings.ToLower(strings.TrimSpace(kw))
}
