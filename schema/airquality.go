package schema

// PollutantConcentrations is a point-in-time pollutant reading in µg/m³.
type PollutantConcentrations struct {
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	O3   float64 `json:"o3"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
}

// AirQualitySample associates a reading with the country whose national
// index standard applies to it.
type AirQualitySample struct {
	Concentrations PollutantConcentrations `json:"concentrations"`
	CountryCode    string                  `json:"country_code"`
}

// Location is a resolved geographic position.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
}
