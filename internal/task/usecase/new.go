package usecase

import (
	"context"

	"agent-swarm-orchestrator/internal/model"
	pkgLog "agent-swarm-orchestrator/pkg/log"
)

// Orchestrator is the dispatch engine consumed by the use case.
// Satisfied by *orchestrator.Orchestrator.
type Orchestrator interface {
	Execute(ctx context.Context, taskID, sessionID, taskText string) (model.TaskResult, error)
	Direct(ctx context.Context, taskID, sessionID string, id model.Identity, message string) (model.TaskResult, error)
}

// SessionResetter clears one agent's session history.
// Satisfied by *session.Store.
type SessionResetter interface {
	Reset(id model.Identity, sessionID string)
}

type implUseCase struct {
	l        pkgLog.Logger
	orch     Orchestrator
	sessions SessionResetter
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, orch Orchestrator, sessions SessionResetter) *implUseCase {
	return &implUseCase{
		l:        l,
		orch:     orch,
		sessions: sessions,
	}
}
