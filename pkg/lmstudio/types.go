package lmstudio

import (
	"fmt"
	"time"
)

// Config configures a client for one OpenAI-compatible backend.
type Config struct {
	BaseURL string        // e.g. "http://localhost:1234/v1"
	Model   string        // defaults to DefaultModel
	APIKey  string        // optional; sent as Bearer token when set
	Timeout time.Duration // per-request cap on the underlying HTTP client
}

// ChatMessage is one message in the OpenAI-compatible wire format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for POST /chat/completions.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// Usage tracks token consumption reported by the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type choiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type choice struct {
	Message choiceMessage `json:"message"`
}

// chatResponse accepts the three reply shapes seen from LM Studio-compatible
// backends: OpenAI "choices", Ollama-style "message", and bare "content".
type chatResponse struct {
	Choices []choice       `json:"choices"`
	Message *choiceMessage `json:"message"`
	Content string         `json:"content"`
	Usage   *Usage         `json:"usage"`
}

// Reply is the extracted model answer plus usage metadata when reported.
type Reply struct {
	Content string
	Usage   *Usage
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the status is worth retrying.
func (e *APIError) Transient() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// FormatError is a 2xx response body that matches none of the known shapes.
type FormatError struct {
	Body string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %s", e.Body)
}
