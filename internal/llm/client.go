// Package llm builds OpenAI clients from config and turns their errors into user-facing text.
package llm

import (
	"errors"
	"net/http"
	"strings"

	"alcyxob/workout-tracker/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingCredential is returned when no API key is configured.
var ErrMissingCredential = errors.New("server is missing OPENAI_API_KEY env var")

// NewClient returns a client for cfg, or ErrMissingCredential.
func NewClient(cfg config.OpenAIConfig) (*openai.Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingCredential
	}
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		c.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(c), nil
}

// ErrorMessage extracts the most specific message available from err:
// the API's structured error message, then the transport error, then
// err itself, and finally fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.Err != nil && reqErr.Err.Error() != "" {
		return reqErr.Err.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
