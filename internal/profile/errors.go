package profile

import "errors"

var (
	ErrNotConfigured      = errors.New("profile username not configured")
	ErrProfileUnavailable = errors.New("profile unavailable")
)
