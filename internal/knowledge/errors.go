package knowledge

import "errors"

var (
	ErrInvalidBank       = errors.New("invalid knowledge bank")
	ErrNoDefaultResponse = errors.New("knowledge bank has no default response")
	ErrNoProfileSource   = errors.New("no profile source configured")
)
