package triage_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/external/inference/mocks"
	"github.com/caremate/companion-api/triage"
)

func TestCheckEmptyInput(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockClient(ctl)
	// no Generate expectation: an empty input must never reach the network

	e := triage.NewEngine(client)
	_, err := e.Check(context.Background(), "   \t ")
	assert.Equal(t, triage.ErrEmptyInput, err)
}

func TestCheckRemoteSuccess(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockClient(ctl)
	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
		"CONDITIONS: common cold, seasonal allergy\nRECOMMENDATIONS: rest, drink fluids; use a humidifier\nADVICE: See a doctor if symptoms last beyond a week.",
		nil,
	).Times(1)

	e := triage.NewEngine(client)
	result, err := e.Check(context.Background(), "sneezing a lot")
	assert.Nil(t, err, "wrong Check")

	assert.Equal(t, []string{"common cold", "seasonal allergy"}, result.Conditions)
	assert.Equal(t, []string{"rest", "drink fluids", "use a humidifier"}, result.Recommendations)
	assert.Equal(t, "See a doctor if symptoms last beyond a week.", result.Advice)
	assert.Equal(t, triage.SourceRemote, result.Source)
}

func TestCheckRemoteSectionCap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockClient(ctl)
	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
		"CONDITIONS: a, b, c, d, e", nil,
	).Times(1)

	e := triage.NewEngine(client)
	result, err := e.Check(context.Background(), "sneezing")
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, result.Conditions, "parsed lists are capped at 3")
	assert.NotEmpty(t, result.Recommendations, "missing sections get filled by the fallback")
	assert.NotEmpty(t, result.Advice)
}

func TestCheckRemoteFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockClient(ctl)
	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
		"", fmt.Errorf("service unavailable"),
	).Times(1)

	e := triage.NewEngine(client)
	result, err := e.Check(context.Background(), "headache")
	assert.Nil(t, err, "remote failures must never surface past the fallback")

	assert.Equal(t, triage.SourceFallback, result.Source)
	assert.Equal(t, []string{"Tension headache", "Migraine", "Dehydration"}, result.Conditions)
}

func TestCheckUnlabeledResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := mocks.NewMockClient(ctl)
	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
		"I am sorry, I cannot help with that.", nil,
	).Times(1)

	e := triage.NewEngine(client)
	result, err := e.Check(context.Background(), "headache")
	assert.Nil(t, err)

	// nothing parsable: every section falls back, and so does the source
	assert.Equal(t, []string{"Tension headache", "Migraine", "Dehydration"}, result.Conditions)
	assert.Equal(t, triage.SeverityModerate, result.Severity)
	assert.Equal(t, triage.SourceFallback, result.Source)
}
