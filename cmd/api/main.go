package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"portfolio-assistant/config"
	_ "portfolio-assistant/docs" // Swagger docs
	"portfolio-assistant/internal/chatbot"
	chatHTTP "portfolio-assistant/internal/chatbot/delivery/http"
	chatUC "portfolio-assistant/internal/chatbot/usecase"
	"portfolio-assistant/internal/contact"
	contactHTTP "portfolio-assistant/internal/contact/delivery/http"
	contactUC "portfolio-assistant/internal/contact/usecase"
	"portfolio-assistant/internal/httpserver"
	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/profile"
	profileHTTP "portfolio-assistant/internal/profile/delivery/http"
	profileUC "portfolio-assistant/internal/profile/usecase"
	"portfolio-assistant/pkg/github"
	"portfolio-assistant/pkg/llmprovider"
	"portfolio-assistant/pkg/log"
	"portfolio-assistant/pkg/mailer"
)

// @title       Portfolio Assistant API
// @description Portfolio backend: chatbot with curated fallback, GitHub profile, contact form.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portfolio Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Knowledge bank
	bank, err := loadBank(cfg.Chat.KnowledgePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load knowledge bank: %v", err)
	}

	// 4. Profile domain (optional)
	var (
		profileSource  knowledge.ProfileSource
		profileHandler profileHTTP.Handler
	)
	if cfg.GitHub.Username != "" {
		ghClient, ghErr := github.New(github.Config{
			Token:    cfg.GitHub.Token,
			BaseURL:  cfg.GitHub.BaseURL,
			CacheTTL: cfg.GitHub.CacheTTL,
		})
		if ghErr != nil {
			logger.Fatalf(ctx, "Failed to create GitHub client: %v", ghErr)
		}
		profileUseCase := profileUC.New(logger, ghClient, profile.Config{
			Username:       cfg.GitHub.Username,
			RepoLimit:      cfg.GitHub.RepoLimit,
			RequestTimeout: cfg.GitHub.RequestTimeout,
		})
		profileSource = profileUseCase
		profileHandler = profileHTTP.New(logger, profileUseCase)
		logger.Infof(ctx, "GitHub profile enabled for %s", cfg.GitHub.Username)
	} else {
		logger.Warn(ctx, "github.username not set, live profile disabled")
	}

	selector := knowledge.NewSelector(bank, profileSource, nil, logger)

	// 5. LLM providers (optional)
	var (
		generator   chatbot.Generator
		aiProviders []string
	)
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "No AI provider available, every reply will use the knowledge bank: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, managerConfig(cfg.LLM), logger)
		aiProviders = manager.Providers()
		logger.Infof(ctx, "AI providers: %v", aiProviders)
		generator = manager
	}

	// 6. Chat domain
	chatUseCase := chatUC.New(logger, generator, selector, bank.Quick(), chatbot.Config{
		AITimeout:   cfg.Chat.AITimeout,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 7. Contact domain
	m, err := mailer.New(mailer.Config{APIKey: cfg.Contact.ResendAPIKey})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create mailer: %v", err)
	}
	if cfg.Contact.ResendAPIKey == "" {
		logger.Warn(ctx, "resend_api_key not set, contact form will answer 503")
	}
	contactUseCase := contactUC.New(logger, m, contact.Config{
		From: cfg.Contact.From,
		To:   cfg.Contact.To,
	})
	contactHandler := contactHTTP.New(logger, contactUseCase)

	// 8. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatHandler:     chatHandler,
		ProfileHandler:  profileHandler,
		ContactHandler:  contactHandler,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		AIProviders:     aiProviders,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
		return
	}
	logger.Info(ctx, "Portfolio Assistant stopped")
}

func loadBank(path string) (*knowledge.Bank, error) {
	if path == "" {
		return knowledge.Default()
	}
	return knowledge.LoadFile(path)
}

func managerConfig(cfg config.LLMConfig) *llmprovider.Config {
	out := &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil {
		out.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil {
		out.MaxTotalTimeout = d
	}
	return out
}
