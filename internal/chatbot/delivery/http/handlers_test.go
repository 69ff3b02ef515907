package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/internal/intent"
	"portfolio-assistant/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	result  chatbot.FallbackResult
	inputs  []chatbot.ChatInput
	suggest []chatbot.Suggestion
}

func (f *fakeUseCase) Reply(ctx context.Context, input chatbot.ChatInput) chatbot.FallbackResult {
	f.inputs = append(f.inputs, input)
	return f.result
}

func (f *fakeUseCase) Suggestions() []chatbot.Suggestion {
	return f.suggest
}

func newRouter(uc chatbot.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/chat"), New(log.NewNop(), uc))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_RejectsMissingMessage(t *testing.T) {
	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, `not json`, ``} {
		uc := &fakeUseCase{}
		w := post(newRouter(uc), body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Message is required"}`, w.Body.String())
		assert.Empty(t, uc.inputs)
	}
}

func TestChat_LiveAnswer(t *testing.T) {
	uc := &fakeUseCase{result: chatbot.FallbackResult{Text: "AI text"}}
	w := post(newRouter(uc), `{"message":"What are your skills?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"AI text","isFromFallback":false}`, w.Body.String())
	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "What are your skills?", uc.inputs[0].Message)
}

func TestChat_FallbackAnswer(t *testing.T) {
	uc := &fakeUseCase{result: chatbot.FallbackResult{
		Text:           "canned",
		IsFromFallback: true,
		Category:       intent.CategorySkills,
		Reason:         chatbot.ReasonQuotaExceeded,
	}}
	w := post(newRouter(uc), `{"message":"What are your skills?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"canned","isFromFallback":true,"category":"skills","reason":"quota_exceeded"}`, w.Body.String())
}

func TestChat_CompleteFailureIsStill200(t *testing.T) {
	uc := &fakeUseCase{result: chatbot.FallbackResult{
		Text:           "Sorry",
		IsFromFallback: true,
		Category:       intent.CategoryError,
		Reason:         chatbot.ReasonCompleteFailure,
	}}
	w := post(newRouter(uc), `{"message":"x"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuggestions(t *testing.T) {
	uc := &fakeUseCase{suggest: []chatbot.Suggestion{{Category: intent.CategorySkills, Text: "Skills?"}}}

	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/suggestions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []suggestionResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []suggestionResp{{Category: "skills", Text: "Skills?"}}, body.Data)
}
