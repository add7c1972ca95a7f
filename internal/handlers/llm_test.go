package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func llmRouter(h *LLMHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/llm/claude", h.Complete)
	return r
}

func TestComplete_MissingCredential(t *testing.T) {
	var upstreamCalls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
	}))
	defer upstream.Close()

	h := NewLLMHandler("")
	h.endpoint = upstream.URL
	r := llmRouter(h)

	w := performRequest(r, http.MethodPost, "/api/llm/claude", map[string]string{"prompt": "hi"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ANTHROPIC_API_KEY not configured")
	assert.Zero(t, atomic.LoadInt32(&upstreamCalls), "no network call without a credential")
}

func TestComplete_RelaysUpstreamStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"prompt": "hi"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer upstream.Close()

	h := NewLLMHandler("test-key")
	h.endpoint = upstream.URL
	r := llmRouter(h)

	w := performRequest(r, http.MethodPost, "/api/llm/claude", map[string]string{"prompt": "hi"})

	// Upstream status and body come back unchanged, including errors.
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error": "rate limited"}`, w.Body.String())
}

func TestComplete_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	h := NewLLMHandler("test-key")
	h.endpoint = upstream.URL
	r := llmRouter(h)

	w := performRequest(r, http.MethodPost, "/api/llm/claude", map[string]string{"prompt": "hi"})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to contact Anthropic API")
	assert.Contains(t, w.Body.String(), "details")
}
