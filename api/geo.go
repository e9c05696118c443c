package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caremate/companion-api/consts"
	"github.com/caremate/companion-api/geo"
)

// emergencyNumbers resolves the user's country through the resolver chain
// (IP lookup, then geocoding, then the configured default) and returns the
// matching dialing codes.
func (s *Server) emergencyNumbers(c *gin.Context) {
	location, err := geo.ResolveCountry(c.Request.Context())
	if err != nil {
		// the chain ends in a static resolver, so this only happens
		// when the resolver was never initialized
		log.WithError(err).Error("resolve country")
		location.CountryCode = consts.DefaultCountryCode
	}

	numbers, err := consts.EmergencyNumbersForCountry(location.CountryCode)
	if err != nil {
		log.WithError(err).Warn("unknown country, using fallback numbers")
	}

	c.JSON(http.StatusOK, gin.H{
		"country_code": location.CountryCode,
		"numbers":      numbers,
	})
}
