package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "portfolio-assistant/internal/chatbot/delivery/http"
	contactHTTP "portfolio-assistant/internal/contact/delivery/http"
	"portfolio-assistant/internal/middleware"
	"portfolio-assistant/internal/model"
	profileHTTP "portfolio-assistant/internal/profile/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	// Keep gin's debug route dump out of production logs.
	if srv.environment == string(model.EnvironmentProduction) {
		gin.DebugPrintRouteFunc = func(string, string, string, int) {}
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	limit := mw.RateLimit(srv.rateLimitPerMin)

	chatHTTP.RegisterRoutes(srv.gin.Group("/api/chat"), srv.chatHandler, limit)
	srv.l.Infof(ctx, "Chat routes registered at /api/chat (rate limit %d/min)", srv.rateLimitPerMin)

	v1 := srv.gin.Group("/api/v1")

	if srv.profileHandler != nil {
		profileHTTP.RegisterRoutes(v1.Group("/profile"), srv.profileHandler)
		srv.l.Infof(ctx, "Profile routes registered at /api/v1/profile")
	} else {
		srv.l.Infof(ctx, "Profile handler not configured, skipping profile routes")
	}

	if srv.contactHandler != nil {
		contactHTTP.RegisterRoutes(v1.Group("/contact"), srv.contactHandler, mw.RateLimit(srv.rateLimitPerMin))
		srv.l.Infof(ctx, "Contact route registered at POST /api/v1/contact")
	} else {
		srv.l.Infof(ctx, "Contact handler not configured, skipping contact route")
	}
}
