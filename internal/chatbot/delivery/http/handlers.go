package http

import (
	"net/http"

	"portfolio-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

const msgMessageRequired = "Message is required"

// Chat godoc
// @Summary     Ask the portfolio assistant
// @Description Answers with the live AI when available and degrades to the offline knowledge base otherwise. Always 200 for a valid message.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Visitor message"
// @Success     200 {object} chatResp
// @Failure     400 {object} errorResp "Message is required"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: msgMessageRequired})
		return
	}

	res := h.uc.Reply(ctx, req.toInput())
	c.JSON(http.StatusOK, newChatResp(res))
}

// Suggestions godoc
// @Summary     Quick-reply suggestions
// @Description Lists the suggested questions shown under the chat widget.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/chat/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	response.OK(c, newSuggestionsResp(h.uc.Suggestions()))
}
