// Package triage produces best-effort, non-diagnostic triage results from
// free-text symptom descriptions. It prefers a remote text-generation
// service and falls back to a deterministic keyword classifier whenever
// the remote call fails or returns an unusable shape.
package triage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/caremate/companion-api/external/inference"
)

const logPrefix = "triage"

// ErrEmptyInput marks a symptom text that is empty after trimming. It is
// the only error Check can return; remote-service failures never surface.
var ErrEmptyInput = fmt.Errorf("symptom input is empty")

const promptTemplate = `You are a careful medical triage assistant. A patient reports: "%s".
Reply with exactly three labeled sections:
CONDITIONS: up to three possible conditions, comma separated
RECOMMENDATIONS: up to three self-care recommendations, comma separated
ADVICE: one sentence on when to see a doctor
Do not diagnose. Keep each section on its own line.`

// Engine runs symptom checks.
type Engine struct {
	client inference.Client
}

// NewEngine - new triage Engine on top of the given inference client
func NewEngine(client inference.Client) *Engine {
	return &Engine{
		client: client,
	}
}

// Check classifies the given symptom text. Input must be non-empty after
// trimming; no network call is attempted otherwise.
func (e *Engine) Check(ctx context.Context, input string) (Result, error) {
	if normalize(input) == "" {
		return Result{}, ErrEmptyInput
	}

	text, err := e.client.Generate(ctx, fmt.Sprintf(promptTemplate, input))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("remote triage unavailable, using local classifier")
		return Fallback(input), nil
	}

	return e.merge(input, parseGenerated(text)), nil
}

// merge combines the remote sections with fallback values for anything
// the model left out, preserving the output guarantees. A response that
// contributes no usable section at all is attributed to the local
// classifier, since that is what produced every field.
func (e *Engine) merge(input string, p parsed) Result {
	fallback := Fallback(input)

	result := Result{
		Conditions:      p.conditions,
		Recommendations: p.recommendations,
		Advice:          p.advice,
		Severity:        fallback.Severity,
		Source:          SourceRemote,
	}

	if len(p.conditions) == 0 && len(p.recommendations) == 0 && p.advice == "" {
		result.Source = SourceFallback
	}

	if len(result.Conditions) == 0 {
		result.Conditions = fallback.Conditions
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = fallback.Recommendations
	}
	if result.Advice == "" {
		result.Advice = fallback.Advice
	}

	result.Conditions = capList(result.Conditions, maxRecommendations)
	result.Recommendations = capList(result.Recommendations, maxRecommendations)

	return result
}
