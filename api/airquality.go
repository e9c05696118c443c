package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/caremate/companion-api/aqi"
	"github.com/caremate/companion-api/external/airquality"
	"github.com/caremate/companion-api/schema"
	"github.com/caremate/companion-api/utils"
)

// fallback advice when the message catalog has no entry for the language
var defaultAdvice = map[aqi.Severity]string{
	aqi.SeverityGood:      "Air quality is good.",
	aqi.SeverityModerate:  "Air quality is acceptable.",
	aqi.SeverityUnhealthy: "Reduce prolonged outdoor exertion.",
	aqi.SeverityHazardous: "Avoid all outdoor activity.",
}

func adviceMessage(localizer *i18n.Localizer, severity aqi.Severity) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "aqi_advice_" + string(severity),
	})
	if err != nil {
		return defaultAdvice[severity]
	}
	return msg
}

// airQualityByLocation serves GET /api/air-quality with either ?city= or
// ?lat=&lng=. Provider failures surface as an explicit error state with a
// manual retry on the client; there is no automatic retry.
func (s *Server) airQualityByLocation(c *gin.Context) {
	ctx := c.Request.Context()

	var location schema.Location
	var err error

	if city := c.Query("city"); city != "" {
		location, err = s.airQuality.Geocode(ctx, city)
	} else {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		location, err = s.airQuality.ReverseGeocode(ctx, lat, lng)
	}

	if err == airquality.ErrEmptyAPIKey {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorMissingAPIKey)
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorLocationNotResolved, err)
		return
	}

	concentrations, err := s.airQuality.Concentrations(ctx, location.Latitude, location.Longitude)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorAirQualityUnavailable, err)
		return
	}

	sample := schema.AirQualitySample{
		Concentrations: concentrations,
		CountryCode:    location.CountryCode,
	}

	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))

	result, ok := aqi.Compute(sample)
	if !ok {
		// an undefined index is distinct from a zero index
		msg, lerr := localizer.Localize(&i18n.LocalizeConfig{MessageID: "aqi_undefined"})
		if lerr != nil {
			msg = "Air quality index is unavailable for this reading."
		}
		c.JSON(http.StatusOK, gin.H{
			"location":       location,
			"concentrations": concentrations,
			"index":          nil,
			"message":        msg,
		})
		return
	}

	band := aqi.BandFor(result.Standard, result.Index)

	c.JSON(http.StatusOK, gin.H{
		"location":       location,
		"concentrations": concentrations,
		"index":          result.Index,
		"dominant":       result.Dominant,
		"standard":       result.Standard,
		"label":          band.Label,
		"severity":       band.Severity,
		"advice":         adviceMessage(localizer, band.Severity),
	})
}
