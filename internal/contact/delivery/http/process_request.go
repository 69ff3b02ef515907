package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "portfolio-assistant/pkg/errors"
)

// processSubmitReq binds and validates the contact form body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "name, a valid email and message are required")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return req, pkgErrors.NewHTTPError(400, "name, a valid email and message are required")
	}
	return req, nil
}
