// Package aqi converts raw pollutant concentrations into a published
// air-quality index and category using piecewise-linear breakpoint
// interpolation. It supports the US EPA and India CPCB standards.
package aqi

import (
	"math"
	"strings"

	"github.com/caremate/companion-api/schema"
)

// Standard selects the national breakpoint tables and category bands.
type Standard string

const (
	StandardUS    Standard = "us"
	StandardIndia Standard = "india"
)

// Pollutant identifies a pollutant with a defined breakpoint table.
type Pollutant string

const (
	PM25 Pollutant = "pm2_5"
	PM10 Pollutant = "pm10"
)

// Severity is the presentation band used to pick a health recommendation.
type Severity string

const (
	SeverityGood      Severity = "good"
	SeverityModerate  Severity = "moderate"
	SeverityUnhealthy Severity = "unhealthy"
	SeverityHazardous Severity = "hazardous"
)

// breakpoint maps a concentration interval onto an index interval.
type breakpoint struct {
	cLow, cHigh float64
	iLow, iHigh float64
}

var breakpointTables = map[Standard]map[Pollutant][]breakpoint{
	StandardUS: {
		PM25: {
			{0, 12.0, 0, 50},
			{12.1, 35.4, 51, 100},
			{35.5, 55.4, 101, 150},
			{55.5, 150.4, 151, 200},
			{150.5, 250.4, 201, 300},
			{250.5, 350.4, 301, 400},
			{350.5, 500.4, 401, 500},
		},
		PM10: {
			{0, 54, 0, 50},
			{55, 154, 51, 100},
			{155, 254, 101, 150},
			{255, 354, 151, 200},
			{355, 424, 201, 300},
			{425, 504, 301, 400},
			{505, 604, 401, 500},
		},
	},
	StandardIndia: {
		PM25: {
			{0, 30, 0, 50},
			{31, 60, 51, 100},
			{61, 90, 101, 200},
			{91, 120, 201, 300},
			{121, 250, 301, 400},
			{251, 500, 401, 500},
		},
		PM10: {
			{0, 50, 0, 50},
			{51, 100, 51, 100},
			{101, 250, 101, 200},
			{251, 350, 201, 300},
			{351, 430, 301, 400},
			{431, 600, 401, 500},
		},
	},
}

// StandardForCountry picks the India tables for Indian samples and the US
// tables for everything else.
func StandardForCountry(code string) Standard {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "in", "ind", "india":
		return StandardIndia
	default:
		return StandardUS
	}
}

// SubIndex interpolates a single pollutant's concentration into its
// sub-index. It returns false when the concentration falls outside every
// defined breakpoint; such readings are excluded, not clamped.
func SubIndex(std Standard, p Pollutant, concentration float64) (int, bool) {
	table, ok := breakpointTables[std][p]
	if !ok {
		return 0, false
	}

	for _, bp := range table {
		if concentration >= bp.cLow && concentration <= bp.cHigh {
			index := (bp.iHigh-bp.iLow)/(bp.cHigh-bp.cLow)*(concentration-bp.cLow) + bp.iLow
			return int(math.Round(index)), true
		}
	}
	return 0, false
}

// Result is a computed overall index with its dominant pollutant.
type Result struct {
	Index      int               `json:"index"`
	Dominant   Pollutant         `json:"dominant_pollutant"`
	SubIndices map[Pollutant]int `json:"sub_indices"`
	Standard   Standard          `json:"standard"`
}

// Compute applies the dominant-pollutant rule: the overall index is the
// maximum of all computable sub-indices. It returns false when no
// sub-index could be computed; callers must render that distinctly from a
// zero index.
func Compute(sample schema.AirQualitySample) (Result, bool) {
	std := StandardForCountry(sample.CountryCode)

	readings := map[Pollutant]float64{
		PM25: sample.Concentrations.PM25,
		PM10: sample.Concentrations.PM10,
	}

	result := Result{
		SubIndices: make(map[Pollutant]int),
		Standard:   std,
	}

	found := false
	for _, p := range []Pollutant{PM25, PM10} {
		sub, ok := SubIndex(std, p, readings[p])
		if !ok {
			continue
		}
		result.SubIndices[p] = sub
		if !found || sub > result.Index {
			result.Index = sub
			result.Dominant = p
		}
		found = true
	}

	return result, found
}
