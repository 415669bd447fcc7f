package task

import (
	"context"

	"agent-swarm-orchestrator/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Submit routes one message: PM targets run the full decompose-and-dispatch
	// flow, worker targets are addressed directly.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// Reset clears one agent's conversation history for a session. Histories
	// are never cleared implicitly; this is the only way to drop one.
	Reset(ctx context.Context, target model.Identity, sessionID string) error
}
