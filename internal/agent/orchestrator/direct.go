package orchestrator

import (
	"context"

	"agent-swarm-orchestrator/internal/model"
)

// Direct is the single-subtask bypass: the caller addresses one worker
// straight away, skipping decomposition and forward-context chaining.
func (o *Orchestrator) Direct(ctx context.Context, taskID, sessionID string, id model.Identity, message string) (model.TaskResult, error) {
	o.l.Infof(ctx, "%s: task=%s agent=%s", LogPrefixDirect, taskID, id)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return o.fail(ctx, taskID, nil, 1, ctxErr), ctxErr
	}

	st := model.Subtask{
		Position:    1,
		Agent:       id,
		Instruction: message,
	}

	output, err := o.dispatch(ctx, taskID, sessionID, st)
	if err != nil {
		return o.fail(ctx, taskID, nil, 1, err), err
	}

	return model.TaskResult{
		TaskID: taskID,
		Status: model.TaskCompleted,
		Outputs: []model.SubtaskOutput{
			{Position: 1, Agent: id, Output: output},
		},
	}, nil
}
