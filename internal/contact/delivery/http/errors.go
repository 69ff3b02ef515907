package http

import (
	"errors"
	"net/http"

	"portfolio-assistant/internal/contact"
	pkgErrors "portfolio-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, contact.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "contact form is not available")
	case errors.Is(err, contact.ErrSendFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "message could not be delivered, please try again later")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
