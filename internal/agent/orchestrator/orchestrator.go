package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agent-swarm-orchestrator/internal/agent/decomposer"
	"agent-swarm-orchestrator/internal/convlog"
	"agent-swarm-orchestrator/internal/endpoint"
	"agent-swarm-orchestrator/internal/model"
)

// Execute runs the full PM flow for one task: Idle → Decomposing →
// Dispatching(1..N) → Completed | Failed. Retry lives in the transport
// layer; the orchestrator never retries across subtasks, and a terminal
// subtask failure halts the loop with the failing ordinal recorded.
func (o *Orchestrator) Execute(ctx context.Context, taskID, sessionID, taskText string) (model.TaskResult, error) {
	state := StateDecomposing
	o.l.Infof(ctx, "%s: task=%s state=%s", LogPrefixExecute, taskID, state)

	subtasks, err := o.decomposer.Decompose(ctx, sessionID, taskText)
	if err != nil {
		o.record(ctx, convlog.Record{
			TaskID:  taskID,
			Ordinal: 0,
			Agent:   model.IdentityPM,
			Request: taskText,
			Error:   err.Error(),
		})
		return o.fail(ctx, taskID, nil, 0, err), err
	}

	outputs := make([]model.SubtaskOutput, 0, len(subtasks))
	carried := ""

	for _, st := range subtasks {
		// Cancellation check at the transition into Dispatching(i).
		if ctxErr := ctx.Err(); ctxErr != nil {
			return o.fail(ctx, taskID, outputs, st.Position, ctxErr), ctxErr
		}

		state = StateDispatching
		o.l.Infof(ctx, "%s: task=%s state=%s ordinal=%d agent=%s", LogPrefixExecute, taskID, state, st.Position, st.Agent)

		st.Context = carried
		output, dispatchErr := o.dispatch(ctx, taskID, sessionID, st)
		if dispatchErr != nil {
			return o.fail(ctx, taskID, outputs, st.Position, dispatchErr), dispatchErr
		}

		outputs = append(outputs, model.SubtaskOutput{
			Position: st.Position,
			Agent:    st.Agent,
			Output:   output,
		})
		carried = o.carry.Apply(output)
	}

	state = StateCompleted
	o.l.Infof(ctx, "%s: task=%s state=%s subtasks=%d", LogPrefixExecute, taskID, state, len(outputs))

	return model.TaskResult{
		TaskID:  taskID,
		Status:  model.TaskCompleted,
		Outputs: outputs,
	}, nil
}

// dispatch sends one subtask to its worker while holding that worker's
// session slot, so the send and the append are one atomic conversation
// step. A blank reply gets one self-summary re-ask before it is accepted.
func (o *Orchestrator) dispatch(ctx context.Context, taskID, sessionID string, st model.Subtask) (string, error) {
	message := st.Instruction
	if st.Context != "" {
		message = fmt.Sprintf("%s\n\n%s\n%s", st.Instruction, ContextPreamble, st.Context)
	}

	unlock := o.store.Lock(st.Agent, sessionID)
	defer unlock()

	turns := o.store.Snapshot(st.Agent, sessionID)
	reply, err := o.sender.Send(ctx, st.Agent, turns, message)
	if err != nil {
		o.record(ctx, convlog.Record{
			TaskID:  taskID,
			Ordinal: st.Position,
			Agent:   st.Agent,
			Request: message,
			Error:   err.Error(),
		})
		return "", err
	}

	content := reply.Content
	if strings.TrimSpace(content) == "" {
		o.l.Warnf(ctx, "%s: empty reply from %s, requesting self-summary", LogPrefixExecute, st.Agent)

		retryTurns := append(turns,
			model.NewTurn(model.RoleUser, message),
			model.NewTurn(model.RoleAssistant, content),
		)
		retry, retryErr := o.sender.Send(ctx, st.Agent, retryTurns, EmptyReplyNudge)
		if retryErr != nil {
			o.record(ctx, convlog.Record{
				TaskID:  taskID,
				Ordinal: st.Position,
				Agent:   st.Agent,
				Request: message,
				Error:   retryErr.Error(),
			})
			return "", retryErr
		}

		o.store.Append(st.Agent, sessionID,
			model.NewTurn(model.RoleUser, message),
			model.NewTurn(model.RoleAssistant, content),
			model.NewTurn(model.RoleUser, EmptyReplyNudge),
			model.NewTurn(model.RoleAssistant, retry.Content),
		)
		content = retry.Content
	} else {
		o.store.Append(st.Agent, sessionID,
			model.NewTurn(model.RoleUser, message),
			model.NewTurn(model.RoleAssistant, content),
		)
	}

	o.record(ctx, convlog.Record{
		TaskID:   taskID,
		Ordinal:  st.Position,
		Agent:    st.Agent,
		Request:  message,
		Response: content,
	})

	return content, nil
}

// fail assembles the Failed terminal result, keeping outputs already
// produced before the failing ordinal.
func (o *Orchestrator) fail(ctx context.Context, taskID string, outputs []model.SubtaskOutput, ordinal int, err error) model.TaskResult {
	kind := kindOf(err)
	o.l.Warnf(ctx, "%s: task=%s state=%s ordinal=%d kind=%s: %v", LogPrefixExecute, taskID, StateFailed, ordinal, kind, err)

	return model.TaskResult{
		TaskID:        taskID,
		Status:        model.TaskFailed,
		Outputs:       outputs,
		FailedOrdinal: ordinal,
		ErrorKind:     kind,
		ErrorMessage:  err.Error(),
	}
}

// kindOf maps an error to the task-level error taxonomy.
func kindOf(err error) model.ErrorKind {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return model.ErrKindCancelled
	case errors.Is(err, decomposer.ErrDecompositionFailed):
		return model.ErrKindDecompositionFailed
	case errors.Is(err, endpoint.ErrAuthRejected):
		return model.ErrKindAuthRejected
	case errors.Is(err, endpoint.ErrMalformedResponse):
		return model.ErrKindMalformedResponse
	default:
		return model.ErrKindEndpointUnreachable
	}
}

// record writes a transcript entry; transcript failures are logged, never
// allowed to fail the task.
func (o *Orchestrator) record(ctx context.Context, rec convlog.Record) {
	if o.transcript == nil {
		return
	}
	if err := o.transcript.Append(ctx, rec); err != nil {
		o.l.Errorf(ctx, "conversation log append failed: %v", err)
	}
}
