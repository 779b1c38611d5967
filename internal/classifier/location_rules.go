// internal/classifier/location_rules.go
package classifier

import (
	"regexp"
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/data"
)

// Evidence confidence contributions, capped at maxEvidenceConfidence.
const (
	pincodeConfidence     = 30
	stateConfidence       = 25
	cityConfidence        = 25
	addressConfidence     = 10
	landmarkConfidence    = 10
	maxEvidenceConfidence = 100
)

// Indian pincode range accepted by the extractor. Six-digit sequences
// outside it are treated as arbitrary numbers, not postal codes.
const (
	pincodeMin = 110001
	pincodeMax = 855126
)

// Candidate address filters.
const (
	maxLandmarks          = 3
	minCandidateRunes     = 10
	maxCandidateRunes     = 200
	minLocationIndicators = 2
	maxCandidateAddresses = 5
)

var pincodePattern = regexp.MustCompile(`\b\d{6}\b`)

var statePattern = compileNamePattern(data.StateNames())

var cityPattern = compileNamePattern(data.CityNames())

// addressKeywordPattern matches address-indicative nouns. Every occurrence
// is kept, duplicates included, so downstream consumers can weigh them.
var addressKeywordPattern = regexp.MustCompile(`(?i)\b(?:` +
	`Road|Street|Lane|Gali|Marg|Path|Cross|Main|Ring|Bypass|Highway|NH|SH|` +
	`Avenue|Park|Garden|Square|Circle|Chowk|Gate|Nagar|Colony|Sector|Block|` +
	`Phase|Plot|House|Building|Apartment|Flat|Society|Complex|Enclave|Layout|` +
	`Extension|Area|Zone|District|Taluka|Mandal|Ward|Village|Town|City|Market|` +
	`Bazaar|Mall|Station|Airport|Port|Bridge|Temple|Mosque|Church|School|` +
	`College|Hospital|Clinic|Bank|Office|Government|Municipal|Corporation|Panchayat` +
	`)\b`)

// landmarkPattern captures "near X" style references up to 50 characters.
var landmarkPattern = regexp.MustCompile(`(?i)\b(?:` +
	`Near|Opp|Opposite|Behind|Front|Adjacent|Next to|Beside|Close to|Around|At|Before|After` +
	`)\s+[\w\s]{1,50}\b`)

var digitPattern = regexp.MustCompile(`\b\d+\b`)

// locationIndicatorPatterns are the pattern classes counted when deciding
// whether a text segment looks like an address. Each class counts once no
// matter how often it matches.
var locationIndicatorPatterns = []*regexp.Regexp{
	pincodePattern,
	statePattern,
	cityPattern,
	addressKeywordPattern,
	landmarkPattern,
}

// compileNamePattern builds a case-insensitive word-bounded alternation
// over place names. The lists contain plain words and spaces only, so no
// escaping is needed.
func compileNamePattern(names []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(names, "|") + `)\b`)
}
