package http

import (
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the profile HTTP delivery layer.
type Handler interface {
	GitHub(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates a new HTTP handler for the profile domain.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
