package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Optional middleware (rate limiting) runs before the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	handlers := append(mw, h.Submit)
	rg.POST("", handlers...)
}
