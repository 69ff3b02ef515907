package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Optional middleware (rate limiting) runs before the chat handler only.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	chat := append(mw, h.Chat)
	rg.POST("", chat...)
	rg.GET("/suggestions", h.Suggestions)
}
