package http

import (
	"portfolio-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// GitHub godoc
// @Summary     Live GitHub profile
// @Description Returns the owner's GitHub profile and most recently updated repositories.
// @Tags        Profile
// @Produce     json
// @Success     200 {object} githubResp
// @Failure     503 {object} response.Resp "Profile unavailable"
// @Router      /api/v1/profile/github [GET]
func (h *handler) GitHub(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newGitHubResp(snap))
}
