package http

import (
	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Suggestions(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
