package aqi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/aqi"
	"github.com/caremate/companion-api/schema"
)

func TestSubIndexBoundary(t *testing.T) {
	// exact breakpoint boundary interpolates to the interval endpoint
	index, ok := aqi.SubIndex(aqi.StandardUS, aqi.PM25, 12.0)
	assert.True(t, ok, "boundary concentration must be inside a breakpoint")
	assert.Equal(t, 50, index, "wrong sub-index at US PM2.5 boundary")

	index, ok = aqi.SubIndex(aqi.StandardUS, aqi.PM25, 35.4)
	assert.True(t, ok)
	assert.Equal(t, 100, index)

	index, ok = aqi.SubIndex(aqi.StandardIndia, aqi.PM10, 50)
	assert.True(t, ok)
	assert.Equal(t, 50, index)
}

func TestSubIndexOutsideBreakpoints(t *testing.T) {
	_, ok := aqi.SubIndex(aqi.StandardUS, aqi.PM25, 900)
	assert.False(t, ok, "concentration beyond the table must be excluded, not clamped")

	_, ok = aqi.SubIndex(aqi.StandardUS, aqi.PM25, -1)
	assert.False(t, ok)
}

func TestComputeDominantPollutant(t *testing.T) {
	// PM2.5 of 25.89 µg/m³ interpolates to 80, PM10 of 43.2 µg/m³ to 40
	result, ok := aqi.Compute(schema.AirQualitySample{
		Concentrations: schema.PollutantConcentrations{
			PM25: 25.89,
			PM10: 43.2,
		},
		CountryCode: "US",
	})
	assert.True(t, ok, "wrong Compute")
	assert.Equal(t, 80, result.Index, "overall index must follow the max rule")
	assert.Equal(t, aqi.PM25, result.Dominant, "wrong dominant pollutant")
	assert.Equal(t, 40, result.SubIndices[aqi.PM10])

	band := aqi.BandFor(result.Standard, result.Index)
	assert.Equal(t, "Moderate", band.Label)
	assert.Equal(t, aqi.SeverityModerate, band.Severity)
}

func TestComputeUndefined(t *testing.T) {
	_, ok := aqi.Compute(schema.AirQualitySample{
		Concentrations: schema.PollutantConcentrations{
			PM25: 9999,
			PM10: 9999,
		},
		CountryCode: "US",
	})
	assert.False(t, ok, "no computable sub-index means no overall index")
}

func TestStandardForCountry(t *testing.T) {
	assert.Equal(t, aqi.StandardIndia, aqi.StandardForCountry("IN"))
	assert.Equal(t, aqi.StandardIndia, aqi.StandardForCountry("india"))
	assert.Equal(t, aqi.StandardUS, aqi.StandardForCountry("US"))
	assert.Equal(t, aqi.StandardUS, aqi.StandardForCountry(""))
}

func TestIndiaBands(t *testing.T) {
	cases := []struct {
		index int
		label string
	}{
		{35, "Good"},
		{80, "Satisfactory"},
		{150, "Moderate"},
		{250, "Poor"},
		{380, "Very Poor"},
		{450, "Severe"},
	}

	for _, c := range cases {
		band := aqi.BandFor(aqi.StandardIndia, c.index)
		assert.Equal(t, c.label, band.Label, "wrong band for index %d", c.index)
	}
}
