package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	// DateTimeFormat is how action timestamps appear in responses, in the
	// bakery's local time.
	DateTimeFormat = "2006-01-02 15:04:05"
)
