package http

import (
	"agent-swarm-orchestrator/internal/task"
	"agent-swarm-orchestrator/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Chat(c interface{})
	Assign(c interface{})
	ResetSession(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
