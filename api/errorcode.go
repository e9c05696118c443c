package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "reminder not found",
		1101: "no reminder is currently alarming",
		1102: "snooze duration must be 5, 10 or 15 minutes",

		1200: "symptom description must not be empty",

		1300: "air quality service is unavailable, try again",
		1301: "air quality api key is not configured",
		1302: "location could not be resolved",

		1400: "unknown first aid topic",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorReminderNotFound      = errorJSON(1100)
	errorNoActiveReminder      = errorJSON(1101)
	errorInvalidSnoozeDuration = errorJSON(1102)

	errorEmptySymptomInput = errorJSON(1200)

	errorAirQualityUnavailable = errorJSON(1300)
	errorMissingAPIKey         = errorJSON(1301)
	errorLocationNotResolved   = errorJSON(1302)

	errorUnknownFirstAidTopic = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
