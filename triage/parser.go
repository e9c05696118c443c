package triage

import (
	"strings"
)

// section labels the remote model is prompted to emit.
var sectionLabels = []string{"CONDITIONS:", "RECOMMENDATIONS:", "ADVICE:"}

const maxParsedItems = 3

// parsed holds whatever sections could be extracted from the generated
// text. Missing sections are filled from the fallback classifier.
type parsed struct {
	conditions      []string
	recommendations []string
	advice          string
}

// extractSection returns the text between the given label and the next
// known label (or end of text).
func extractSection(text, label string) (string, bool) {
	upper := strings.ToUpper(text)
	start := strings.Index(upper, label)
	if start < 0 {
		return "", false
	}
	start += len(label)

	end := len(text)
	for _, other := range sectionLabels {
		if other == label {
			continue
		}
		if i := strings.Index(upper[start:], other); i >= 0 && start+i < end {
			end = start + i
		}
	}

	return strings.TrimSpace(text[start:end]), true
}

// splitList breaks a section body on commas and semicolons, dropping
// empties and capping the result.
func splitList(body string) []string {
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ';'
	})

	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(strings.TrimSpace(p), "-* "))
		if p == "" {
			continue
		}
		items = append(items, p)
		if len(items) == maxParsedItems {
			break
		}
	}
	return items
}

// parseGenerated extracts the labeled sections from the remote response.
// It is tolerant: any section may be absent.
func parseGenerated(text string) parsed {
	var p parsed

	if body, ok := extractSection(text, "CONDITIONS:"); ok {
		p.conditions = splitList(body)
	}
	if body, ok := extractSection(text, "RECOMMENDATIONS:"); ok {
		p.recommendations = splitList(body)
	}
	if body, ok := extractSection(text, "ADVICE:"); ok {
		p.advice = body
	}

	return p
}
