package response

// Messages and codes for the standard envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
	RequestCancelledCode    = 499
)

// Formats for date-only and datetime JSON fields.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
