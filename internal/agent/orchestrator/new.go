package orchestrator

import (
	"context"

	"agent-swarm-orchestrator/internal/agent/session"
	"agent-swarm-orchestrator/internal/convlog"
	"agent-swarm-orchestrator/internal/endpoint"
	"agent-swarm-orchestrator/internal/model"
	pkgLog "agent-swarm-orchestrator/pkg/log"
)

// Sender issues one retried endpoint call. Satisfied by *endpoint.Client.
type Sender interface {
	Send(ctx context.Context, id model.Identity, turns []model.Turn, message string) (*endpoint.Reply, error)
}

// Decomposer produces the ordered subtask sequence for a PM task.
// Satisfied by *decomposer.Decomposer.
type Decomposer interface {
	Decompose(ctx context.Context, sessionID, taskText string) ([]model.Subtask, error)
}

// TranscriptSink receives append-only conversation records in arrival
// order. Satisfied by *convlog.Logger.
type TranscriptSink interface {
	Append(ctx context.Context, rec convlog.Record) error
}

// Orchestrator drives the sequential dispatch loop: decompose once, then
// hand each subtask to its worker in strict ordinal order, feeding each
// response forward as context for the next.
type Orchestrator struct {
	l          pkgLog.Logger
	sender     Sender
	store      *session.Store
	decomposer Decomposer
	transcript TranscriptSink
	carry      CarryForward
}

// New creates an Orchestrator.
func New(l pkgLog.Logger, sender Sender, store *session.Store, dec Decomposer, transcript TranscriptSink, carry CarryForward) *Orchestrator {
	if carry.Mode == "" {
		carry.Mode = CarryFull
	}
	return &Orchestrator{
		l:          l,
		sender:     sender,
		store:      store,
		decomposer: dec,
		transcript: transcript,
		carry:      carry,
	}
}
