package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task"
)

const logPrefixSubmit = "task.usecase.Submit"

// Submit assigns the task a fresh ID and routes it: the PM target runs the
// full decomposition flow, worker targets bypass the PM entirely.
func (uc *implUseCase) Submit(ctx context.Context, input task.SubmitInput) (task.SubmitOutput, error) {
	if err := validateSubmit(input); err != nil {
		return task.SubmitOutput{}, err
	}

	taskID := uuid.NewString()
	uc.l.Infof(ctx, "%s: task=%s target=%s session=%s", logPrefixSubmit, taskID, input.Target, input.SessionID)

	var (
		result model.TaskResult
		err    error
	)
	if input.Target == model.IdentityPM {
		result, err = uc.orch.Execute(ctx, taskID, input.SessionID, input.Message)
	} else {
		result, err = uc.orch.Direct(ctx, taskID, input.SessionID, input.Target, input.Message)
	}
	if err != nil {
		uc.l.Warnf(ctx, "%s: task=%s failed: %v", logPrefixSubmit, taskID, err)
	}

	// A failed task still carries a terminal result for the caller.
	return task.SubmitOutput{Result: result}, nil
}

// Reset drops one agent's history for a session and re-seeds its system
// prompt on next use.
func (uc *implUseCase) Reset(ctx context.Context, target model.Identity, sessionID string) error {
	if _, err := model.ParseIdentity(string(target)); err != nil {
		return task.ErrUnknownAgent
	}
	if strings.TrimSpace(sessionID) == "" {
		return task.ErrEmptySessionID
	}

	uc.l.Infof(ctx, "task.usecase.Reset: target=%s session=%s", target, sessionID)
	uc.sessions.Reset(target, sessionID)
	return nil
}

func validateSubmit(input task.SubmitInput) error {
	if _, err := model.ParseIdentity(string(input.Target)); err != nil {
		return task.ErrUnknownAgent
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return task.ErrEmptySessionID
	}
	if strings.TrimSpace(input.Message) == "" {
		return task.ErrEmptyMessage
	}
	return nil
}
