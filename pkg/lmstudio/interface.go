package lmstudio

import "context"

// ILMStudio defines the interface for one LM Studio-compatible backend.
type ILMStudio interface {
	// Chat issues one chat-completion attempt. It never retries.
	Chat(ctx context.Context, messages []ChatMessage) (*Reply, error)

	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
}
