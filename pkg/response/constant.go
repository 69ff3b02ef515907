package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"

	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
