package http

import (
	"errors"
	"net/http"

	"portfolio-assistant/internal/profile"
	pkgErrors "portfolio-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "profile is not configured")
	case errors.Is(err, profile.ErrProfileUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "profile is temporarily unavailable")
	default:
		return pkgErrors.ErrServiceUnavailable
	}
}
