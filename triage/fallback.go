package triage

import (
	"sort"
	"strings"
)

// Result is a complete, non-diagnostic triage outcome. Every field is
// always populated.
type Result struct {
	Conditions      []string `json:"conditions"`
	Recommendations []string `json:"recommendations"`
	Severity        Severity `json:"severity"`
	Advice          string   `json:"advice"`
	Source          string   `json:"source"`
}

const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"

	maxRecommendations = 4
)

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// matchEntry resolves the knowledge-base entry for an input via the
// prioritized rule order: exact key match first, then the longest key
// related to the input by substring in either direction.
func matchEntry(input string) (Entry, bool) {
	if entry, ok := knowledgeBase[input]; ok {
		return entry, true
	}

	var bestKey string
	for key := range knowledgeBase {
		if !strings.Contains(input, key) && !strings.Contains(key, input) {
			continue
		}
		// the most specific match wins; ties break lexicographically
		// so the outcome does not depend on map iteration order
		if len(key) > len(bestKey) || (len(key) == len(bestKey) && key < bestKey) {
			bestKey = key
		}
	}

	if bestKey == "" {
		return Entry{}, false
	}
	return knowledgeBase[bestKey], true
}

// scanSeverity inspects the raw input for severity-indicating keywords.
// It reports found=false when no keyword gives an opinion.
func scanSeverity(input string) (Severity, bool) {
	for _, k := range severeKeywords {
		if strings.Contains(input, k) {
			return SeveritySevere, true
		}
	}
	for _, k := range mildKeywords {
		if strings.Contains(input, k) {
			return SeverityMild, true
		}
	}
	return SeverityModerate, false
}

func categoryLookup(input string) ([]string, bool) {
	for _, c := range categoryConditions {
		if strings.Contains(input, c.keyword) {
			return c.conditions, true
		}
	}
	return nil, false
}

func bucketRecommendations(input string) ([]string, bool) {
	for _, b := range recommendationBuckets {
		if strings.Contains(input, b.keyword) {
			return b.recommendations, true
		}
	}
	return nil, false
}

// Fallback is the deterministic local classifier used when the remote
// inference call is unavailable or unparsable. It never fails: every
// return value carries non-empty conditions, 1-4 recommendations, one
// severity tier and one advice string.
func Fallback(input string) Result {
	normalized := normalize(input)

	scanned, opinionated := scanSeverity(normalized)

	if entry, ok := matchEntry(normalized); ok {
		severity := entry.Severity
		// the keyword scan can escalate but never soften a KB verdict
		if scanned == SeveritySevere {
			severity = SeveritySevere
		}
		return Result{
			Conditions:      capList(entry.Conditions, maxRecommendations),
			Recommendations: capList(entry.Recommendations, maxRecommendations),
			Severity:        severity,
			Advice:          entry.Advice,
			Source:          SourceFallback,
		}
	}

	severity := SeverityModerate
	if opinionated {
		severity = scanned
	}

	conditions, ok := categoryLookup(normalized)
	if !ok {
		conditions = genericConditions
	}

	recommendations, ok := bucketRecommendations(normalized)
	if !ok {
		recommendations = genericRecommendations[severity]
	}

	return Result{
		Conditions:      capList(conditions, maxRecommendations),
		Recommendations: capList(recommendations, maxRecommendations),
		Severity:        severity,
		Advice:          genericAdvice[severity],
		Source:          SourceFallback,
	}
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// KnownSymptoms lists the knowledge-base keys, sorted, for the symptom
// checker's suggestion list.
func KnownSymptoms() []string {
	keys := make([]string, 0, len(knowledgeBase))
	for k := range knowledgeBase {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
