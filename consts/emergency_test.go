package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyNumbersForCountry(t *testing.T) {
	numbers, err := EmergencyNumbersForCountry("IN")
	assert.Nil(t, err)
	assert.Equal(t, "102", numbers.Ambulance)

	numbers, err = EmergencyNumbersForCountry(" us ")
	assert.Nil(t, err, "codes are normalized before lookup")
	assert.Equal(t, "911", numbers.Police)
}

func TestEmergencyNumbersUnknownCountry(t *testing.T) {
	numbers, err := EmergencyNumbersForCountry("XX")
	assert.NotNil(t, err)
	assert.Equal(t, "112", numbers.Ambulance, "unknown countries fall back to 112")
}
