package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "portfolio-assistant/internal/chatbot/delivery/http"
	contactHTTP "portfolio-assistant/internal/contact/delivery/http"
	profileHTTP "portfolio-assistant/internal/profile/delivery/http"
	"portfolio-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Domains
	chatHandler     chatHTTP.Handler
	profileHandler  profileHTTP.Handler
	contactHandler  contactHTTP.Handler
	rateLimitPerMin int
	aiProviders     []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	ChatHandler     chatHTTP.Handler
	ProfileHandler  profileHTTP.Handler
	ContactHandler  contactHTTP.Handler
	RateLimitPerMin int

	// AIProviders lists the live providers in priority order; empty means fallback only.
	AIProviders []string
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		chatHandler:     cfg.ChatHandler,
		profileHandler:  cfg.ProfileHandler,
		contactHandler:  cfg.ContactHandler,
		rateLimitPerMin: cfg.RateLimitPerMin,
		aiProviders:     cfg.AIProviders,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
