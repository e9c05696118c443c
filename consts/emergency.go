package consts

import (
	"fmt"
	"strings"
)

// EmergencyNumbers holds the dialing codes shown on the emergency card.
type EmergencyNumbers struct {
	Police    string `json:"police"`
	Ambulance string `json:"ambulance"`
	Fire      string `json:"fire"`
}

// DefaultCountryCode is used when every resolver in the chain fails.
const DefaultCountryCode = "US"

var emergencyByCountry map[string]EmergencyNumbers

func init() {
	emergencyByCountry = make(map[string]EmergencyNumbers)

	emergencyByCountry["US"] = EmergencyNumbers{"911", "911", "911"}
	emergencyByCountry["CA"] = EmergencyNumbers{"911", "911", "911"}
	emergencyByCountry["IN"] = EmergencyNumbers{"100", "102", "101"}
	emergencyByCountry["GB"] = EmergencyNumbers{"999", "999", "999"}
	emergencyByCountry["AU"] = EmergencyNumbers{"000", "000", "000"}
	emergencyByCountry["NZ"] = EmergencyNumbers{"111", "111", "111"}
	emergencyByCountry["DE"] = EmergencyNumbers{"110", "112", "112"}
	emergencyByCountry["FR"] = EmergencyNumbers{"17", "15", "18"}
	emergencyByCountry["JP"] = EmergencyNumbers{"110", "119", "119"}
	emergencyByCountry["SG"] = EmergencyNumbers{"999", "995", "995"}
	emergencyByCountry["TW"] = EmergencyNumbers{"110", "119", "119"}
	emergencyByCountry["BR"] = EmergencyNumbers{"190", "192", "193"}
	emergencyByCountry["ZA"] = EmergencyNumbers{"10111", "10177", "10177"}
}

// EmergencyNumbersForCountry - look up the emergency numbers for an ISO
// country code, falling back to the EU-wide 112 for unknown countries.
func EmergencyNumbersForCountry(code string) (EmergencyNumbers, error) {
	numbers, ok := emergencyByCountry[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return EmergencyNumbers{"112", "112", "112"}, fmt.Errorf("no emergency numbers for %q", code)
	}
	return numbers, nil
}
