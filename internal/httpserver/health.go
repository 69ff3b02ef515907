package httpserver

import (
	"github.com/gin-gonic/gin"

	"portfolio-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "portfolio-assistant"
)

// Chat modes reported by /ready.
const (
	chatModeLive         = "live"
	chatModeFallbackOnly = "fallback_only"
)

func (srv *HTTPServer) probe(c *gin.Context, status string, extra gin.H) {
	body := gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
	for k, v := range extra {
		body[k] = v
	}
	response.OK(c, body)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy", nil)
}

// readyCheck reports which optional collaborators are wired. The chat
// endpoint always answers, so the service is ready even with no AI provider.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	mode := chatModeFallbackOnly
	if len(srv.aiProviders) > 0 {
		mode = chatModeLive
	}
	srv.probe(c, "ready", gin.H{
		"chat_mode":    mode,
		"ai_providers": srv.aiProviders,
		"profile":      srv.profileHandler != nil,
		"contact":      srv.contactHandler != nil,
	})
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive", nil)
}
