package task

import (
	"agent-swarm-orchestrator/internal/model"
)

// SubmitInput is one incoming message addressed to an agent.
type SubmitInput struct {
	Target    model.Identity
	SessionID string
	Message   string
}

// SubmitOutput wraps the terminal result of one task.
type SubmitOutput struct {
	Result model.TaskResult
}
