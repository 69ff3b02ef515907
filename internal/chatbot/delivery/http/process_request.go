package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-assistant/internal/chatbot"
)

// processChatReq binds the chat body. A missing, blank or undecodable
// message is rejected.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, chatbot.ErrEmptyMessage
	}
	if req.Message == nil || strings.TrimSpace(*req.Message) == "" {
		return req, chatbot.ErrEmptyMessage
	}
	return req, nil
}
