package contact

import "errors"

var (
	ErrNotConfigured = errors.New("contact delivery not configured")
	ErrSendFailed    = errors.New("contact message could not be sent")
)
