package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// anthropicEndpoint is the upstream completion API.
const anthropicEndpoint = "https://api.anthropic.com/v1/complete"

// LLMHandler forwards completion requests to the Anthropic API with the
// server-side credential injected. Payloads are relayed verbatim in both
// directions and never retried.
type LLMHandler struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewLLMHandler creates a new proxy handler. The client timeout bounds
// the single outbound call.
func NewLLMHandler(apiKey string) *LLMHandler {
	return &LLMHandler{
		apiKey:   apiKey,
		endpoint: anthropicEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete proxies the request body to the completion API.
func (h *LLMHandler) Complete(c *gin.Context) {
	if h.apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ANTHROPIC_API_KEY not configured on server environment"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build upstream request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("anthropic proxy request failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to contact Anthropic API",
			"details": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to contact Anthropic API",
			"details": err.Error(),
		})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, respBody)
}
