package http

import (
	"portfolio-assistant/internal/contact"
	"portfolio-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the contact HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contact.UseCase
}

// New creates a new HTTP handler for the contact domain.
func New(l log.Logger, uc contact.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
