package decomposer

import (
	"context"
	"errors"

	"agent-swarm-orchestrator/internal/agent/session"
	"agent-swarm-orchestrator/internal/endpoint"
	"agent-swarm-orchestrator/internal/model"
	pkgLog "agent-swarm-orchestrator/pkg/log"
)

// ErrDecompositionFailed means the PM's response could not be parsed into
// at least one valid subtask. The task aborts before any worker is
// contacted.
var ErrDecompositionFailed = errors.New("decomposition failed")

// Sender issues one orchestrated endpoint call. Satisfied by
// *endpoint.Client; narrowed to an interface for testability.
type Sender interface {
	Send(ctx context.Context, id model.Identity, turns []model.Turn, message string) (*endpoint.Reply, error)
}

// Decomposer asks the PM to split a task into assigned subtasks.
type Decomposer struct {
	l      pkgLog.Logger
	sender Sender
	store  *session.Store
}

// New creates a Decomposer.
func New(l pkgLog.Logger, sender Sender, store *session.Store) *Decomposer {
	return &Decomposer{
		l:      l,
		sender: sender,
		store:  store,
	}
}
