package llm

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI-compatible client for the remote model.
// The API key may be empty for unauthenticated local endpoints.
func NewClient(apiKey, url, timeout string) *openai.Client {
	if apiKey == "" {
		apiKey = "sk-xxx"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = url

	dur, err := time.ParseDuration(timeout)
	if err != nil {
		dur = 150 * time.Second
	}
	config.HTTPClient = &http.Client{
		Timeout: dur,
	}
	return openai.NewClientWithConfig(config)
}
