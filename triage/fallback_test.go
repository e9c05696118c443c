package triage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/triage"
)

func TestFallbackExactMatch(t *testing.T) {
	result := triage.Fallback("  Headache ")

	assert.Equal(t, []string{"Tension headache", "Migraine", "Dehydration"}, result.Conditions, "exact match must return the knowledge-base entry verbatim")
	assert.Equal(t, triage.SeverityModerate, result.Severity)
	assert.Contains(t, result.Advice, "two days")
	assert.Equal(t, triage.SourceFallback, result.Source)
}

func TestFallbackSubstringMatch(t *testing.T) {
	result := triage.Fallback("I have had a sore throat since yesterday")

	// "sore throat" is longer than "throat" category keyword and must win
	assert.Equal(t, []string{"Pharyngitis", "Common cold", "Strep throat"}, result.Conditions)
	assert.Equal(t, triage.SeverityMild, result.Severity)
}

func TestFallbackCategoryKeyword(t *testing.T) {
	result := triage.Fallback("weird feeling in my stomach area")

	assert.Contains(t, result.Conditions, "Indigestion")
	assert.NotEmpty(t, result.Recommendations)
}

func TestFallbackUnknownInput(t *testing.T) {
	result := triage.Fallback("xyzzy123")

	assert.Equal(t, []string{"Consult a healthcare provider for proper diagnosis"}, result.Conditions)
	assert.Equal(t, triage.SeverityModerate, result.Severity, "no severity keyword means moderate")
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.Advice)
}

func TestFallbackSeverityScan(t *testing.T) {
	assert.Equal(t, triage.SeveritySevere, triage.Fallback("severe cramps").Severity)
	assert.Equal(t, triage.SeverityMild, triage.Fallback("a slight tingle").Severity)
	assert.Equal(t, triage.SeveritySevere, triage.Fallback("chest pain").Severity)
}

func TestFallbackSeverityEscalatesEntry(t *testing.T) {
	// "cough" is a mild entry but the scan finds "severe" and escalates
	result := triage.Fallback("severe cough")
	assert.Equal(t, triage.SeveritySevere, result.Severity)
	assert.Contains(t, result.Conditions, "Common cold")
}

func TestFallbackRecommendationBucket(t *testing.T) {
	// no KB entry matches, but the "pain" bucket supplies recommendations
	result := triage.Fallback("aching knee pain")
	assert.Contains(t, result.Recommendations, "Rest the affected area")
}

func TestFallbackOutputGuarantees(t *testing.T) {
	inputs := []string{"headache", "xyzzy123", "severe everything", "stomach", "pain"}
	for _, in := range inputs {
		result := triage.Fallback(in)
		assert.NotEmpty(t, result.Conditions, "input %q", in)
		assert.NotEmpty(t, result.Recommendations, "input %q", in)
		assert.True(t, len(result.Recommendations) <= 4, "input %q", in)
		assert.NotEmpty(t, result.Advice, "input %q", in)
		assert.NotEmpty(t, result.Severity, "input %q", in)
	}
}

func TestKnownSymptomsSorted(t *testing.T) {
	keys := triage.KnownSymptoms()
	assert.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.True(t, keys[i-1] < keys[i], "keys must be sorted")
	}
}
