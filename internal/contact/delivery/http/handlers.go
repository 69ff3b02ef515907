package http

import (
	"portfolio-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Submit godoc
// @Summary     Send a contact message
// @Description Delivers the visitor's message to the site owner by e-mail.
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Contact form"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Delivery failed"
// @Failure     503 {object} response.Resp "Contact delivery not configured"
// @Router      /api/v1/contact [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSubmitResp(output))
}
