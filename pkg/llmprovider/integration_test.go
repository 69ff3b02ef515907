package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-assistant/config"
	"portfolio-assistant/pkg/llmprovider"
	"portfolio-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", Timeout: "30s"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "qwen", providers[0].Name())
	assert.Equal(t, "gemini", providers[1].Name())

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
	}, log.NewNop())

	assert.Equal(t, []string{"qwen", "gemini"}, manager.Providers())
}

// TestIntegration_ConfigValidation verifies that unusable configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
			}},
		},
		{
			name:    "nil config",
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: false, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Model: "m", Timeout: "soon"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIntegration_ProviderPriorityOrdering verifies that providers
// are ordered correctly by priority
func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
			{Name: "anthropic", Enabled: true, Priority: 5, APIKey: "test-anthropic-key", Model: "claude-3-5-haiku-latest"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "test-deepseek-key", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 3)

	assert.Equal(t, "deepseek", providers[0].Name())
	assert.Equal(t, "anthropic", providers[1].Name())
	assert.Equal(t, "gemini", providers[2].Name())
}

func chatRequest(text string) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: "be brief"}}},
		Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: text}}}},
		Temperature:       0.5,
		MaxTokens:         64,
	}
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"deepseek-chat",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Hi there"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}}`))
	}))
	defer srv.Close()

	a := llmprovider.NewOpenAIAdapter(llmprovider.OpenAIConfig{
		Name: "deepseek", APIKey: "test-key", Model: "deepseek-chat", BaseURL: srv.URL + "/v1",
	})

	resp, err := a.GenerateContent(context.Background(), chatRequest("hello"))
	require.NoError(t, err)
	assert.Equal(t, "Hi there", resp.Text())
	assert.Equal(t, "deepseek", resp.ProviderName)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
}

func TestOpenAIAdapter_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	a := llmprovider.NewOpenAIAdapter(llmprovider.OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})

	_, err := a.GenerateContent(context.Background(), chatRequest("hello"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, llmprovider.ErrProviderRateLimited))

	var perr *llmprovider.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "openai", perr.Provider)
}

func TestAnthropicAdapter_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
			"content":[{"type":"text","text":"Hello from Claude"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":4}}`))
	}))
	defer srv.Close()

	a := llmprovider.NewAnthropicAdapter(llmprovider.AnthropicConfig{
		APIKey: "k", Model: "claude-3-5-haiku-latest", BaseURL: srv.URL,
	})

	resp, err := a.GenerateContent(context.Background(), chatRequest("hello"))
	require.NoError(t, err)
	assert.Equal(t, "Hello from Claude", resp.Text())
	assert.Equal(t, 7, resp.Usage.TotalTokens)
}

func TestAnthropicAdapter_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	a := llmprovider.NewAnthropicAdapter(llmprovider.AnthropicConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	_, err := a.GenerateContent(context.Background(), chatRequest("hello"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, llmprovider.ErrProviderRateLimited))
}
