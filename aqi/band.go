package aqi

// Band is an ordered severity band of the numeric index.
type Band struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

type bandBoundary struct {
	upTo int
	band Band
}

// Bands are ordered; the first boundary at or above the index wins. The
// last entry is open-ended.
var bandTables = map[Standard][]bandBoundary{
	StandardUS: {
		{50, Band{"Good", SeverityGood}},
		{100, Band{"Moderate", SeverityModerate}},
		{150, Band{"Unhealthy for Sensitive Groups", SeverityUnhealthy}},
		{200, Band{"Unhealthy", SeverityUnhealthy}},
		{300, Band{"Very Unhealthy", SeverityHazardous}},
		{-1, Band{"Hazardous", SeverityHazardous}},
	},
	StandardIndia: {
		{50, Band{"Good", SeverityGood}},
		{100, Band{"Satisfactory", SeverityGood}},
		{200, Band{"Moderate", SeverityModerate}},
		{300, Band{"Poor", SeverityUnhealthy}},
		{400, Band{"Very Poor", SeverityHazardous}},
		{-1, Band{"Severe", SeverityHazardous}},
	},
}

// BandFor buckets a computed index into its qualitative band.
func BandFor(std Standard, index int) Band {
	table := bandTables[std]
	for _, b := range table {
		if b.upTo >= 0 && index <= b.upTo {
			return b.band
		}
	}
	return table[len(table)-1].band
}
