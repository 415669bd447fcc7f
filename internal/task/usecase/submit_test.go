package usecase

import (
	"context"
	"errors"
	"testing"

	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockOrchestrator struct {
	executeCalls int
	directCalls  int
	directID     model.Identity
	result       model.TaskResult
	err          error
}

func (m *mockOrchestrator) Execute(ctx context.Context, taskID, sessionID, taskText string) (model.TaskResult, error) {
	m.executeCalls++
	res := m.result
	res.TaskID = taskID
	return res, m.err
}

func (m *mockOrchestrator) Direct(ctx context.Context, taskID, sessionID string, id model.Identity, message string) (model.TaskResult, error) {
	m.directCalls++
	m.directID = id
	res := m.result
	res.TaskID = taskID
	return res, m.err
}

type mockResetter struct {
	id        model.Identity
	sessionID string
	calls     int
}

func (m *mockResetter) Reset(id model.Identity, sessionID string) {
	m.calls++
	m.id = id
	m.sessionID = sessionID
}

func TestSubmit_PMTargetRunsFullFlow(t *testing.T) {
	orch := &mockOrchestrator{result: model.TaskResult{Status: model.TaskCompleted}}
	uc := New(&mockLogger{}, orch, &mockResetter{})

	out, err := uc.Submit(context.Background(), task.SubmitInput{
		Target:    model.IdentityPM,
		SessionID: "s1",
		Message:   "plan the release",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if orch.executeCalls != 1 || orch.directCalls != 0 {
		t.Errorf("expected 1 execute and 0 direct, got %d/%d", orch.executeCalls, orch.directCalls)
	}
	if out.Result.TaskID == "" {
		t.Error("expected generated task ID")
	}
	if out.Result.Status != model.TaskCompleted {
		t.Errorf("expected completed, got %s", out.Result.Status)
	}
}

func TestSubmit_WorkerTargetBypassesPM(t *testing.T) {
	orch := &mockOrchestrator{result: model.TaskResult{Status: model.TaskCompleted}}
	uc := New(&mockLogger{}, orch, &mockResetter{})

	_, err := uc.Submit(context.Background(), task.SubmitInput{
		Target:    model.IdentityB,
		SessionID: "s1",
		Message:   "quick question",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if orch.directCalls != 1 || orch.executeCalls != 0 {
		t.Errorf("expected 1 direct and 0 execute, got %d/%d", orch.directCalls, orch.executeCalls)
	}
	if orch.directID != model.IdentityB {
		t.Errorf("expected direct call to B, got %s", orch.directID)
	}
}

func TestSubmit_FailedTaskStillReturnsResult(t *testing.T) {
	orch := &mockOrchestrator{
		result: model.TaskResult{
			Status:        model.TaskFailed,
			FailedOrdinal: 2,
			ErrorKind:     model.ErrKindEndpointUnreachable,
		},
		err: errors.New("endpoint unreachable after 3 attempts"),
	}
	uc := New(&mockLogger{}, orch, &mockResetter{})

	out, err := uc.Submit(context.Background(), task.SubmitInput{
		Target:    model.IdentityPM,
		SessionID: "s1",
		Message:   "doomed task",
	})
	if err != nil {
		t.Fatalf("terminal result must be returned, not an error: %v", err)
	}
	if out.Result.Status != model.TaskFailed || out.Result.FailedOrdinal != 2 {
		t.Errorf("unexpected result: %+v", out.Result)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input task.SubmitInput
		want  error
	}{
		{"unknown target", task.SubmitInput{Target: "D", SessionID: "s1", Message: "hi"}, task.ErrUnknownAgent},
		{"empty session", task.SubmitInput{Target: model.IdentityPM, SessionID: "  ", Message: "hi"}, task.ErrEmptySessionID},
		{"empty message", task.SubmitInput{Target: model.IdentityA, SessionID: "s1", Message: ""}, task.ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orch := &mockOrchestrator{}
			uc := New(&mockLogger{}, orch, &mockResetter{})

			_, err := uc.Submit(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if orch.executeCalls+orch.directCalls != 0 {
				t.Error("invalid input must not reach the orchestrator")
			}
		})
	}
}

func TestReset(t *testing.T) {
	resetter := &mockResetter{}
	uc := New(&mockLogger{}, &mockOrchestrator{}, resetter)

	if err := uc.Reset(context.Background(), model.IdentityA, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resetter.calls != 1 || resetter.id != model.IdentityA || resetter.sessionID != "s1" {
		t.Errorf("unexpected reset call: %+v", resetter)
	}

	if err := uc.Reset(context.Background(), "D", "s1"); !errors.Is(err, task.ErrUnknownAgent) {
		t.Errorf("expected ErrUnknownAgent, got %v", err)
	}
	if err := uc.Reset(context.Background(), model.IdentityA, ""); !errors.Is(err, task.ErrEmptySessionID) {
		t.Errorf("expected ErrEmptySessionID, got %v", err)
	}
}
