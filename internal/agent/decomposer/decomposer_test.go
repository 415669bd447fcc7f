package decomposer

import (
	"context"
	"errors"
	"testing"

	"agent-swarm-orchestrator/internal/agent/session"
	"agent-swarm-orchestrator/internal/endpoint"
	"agent-swarm-orchestrator/internal/model"
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

type mockSender struct {
	reply    string
	err      error
	calls    int
	gotTurns []model.Turn
}

func (m *mockSender) Send(ctx context.Context, id model.Identity, turns []model.Turn, message string) (*endpoint.Reply, error) {
	m.calls++
	m.gotTurns = turns
	if m.err != nil {
		return nil, m.err
	}
	return &endpoint.Reply{Content: m.reply, Attempts: 1}, nil
}

func newDecomposer(sender *mockSender) (*Decomposer, *session.Store) {
	store := session.New(map[model.Identity]string{model.IdentityPM: "you are the PM"})
	return New(&mockLogger{}, sender, store), store
}

func TestDecompose_ValidResponse(t *testing.T) {
	sender := &mockSender{reply: `[
		{"position": 1, "agent": "A", "instruction": "write haiku"},
		{"position": 2, "agent": "B", "instruction": "review haiku"}
	]`}
	d, store := newDecomposer(sender)

	subtasks, err := d.Decompose(context.Background(), "s1", "Write and review a haiku")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(subtasks) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(subtasks))
	}
	if subtasks[0].Agent != model.IdentityA || subtasks[0].Instruction != "write haiku" {
		t.Errorf("unexpected first subtask: %+v", subtasks[0])
	}
	if subtasks[1].Position != 2 || subtasks[1].Agent != model.IdentityB {
		t.Errorf("unexpected second subtask: %+v", subtasks[1])
	}

	// PM session records the exchange: system seed + prompt + reply.
	if got := store.Len(model.IdentityPM, "s1"); got != 3 {
		t.Errorf("expected 3 PM turns, got %d", got)
	}
}

func TestDecompose_StripsMarkdownFences(t *testing.T) {
	sender := &mockSender{reply: "```json\n[{\"position\": 1, \"agent\": \"C\", \"instruction\": \"do it\"}]\n```"}
	d, _ := newDecomposer(sender)

	subtasks, err := d.Decompose(context.Background(), "s1", "one step task")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subtasks) != 1 || subtasks[0].Agent != model.IdentityC {
		t.Errorf("unexpected subtasks: %+v", subtasks)
	}
}

func TestDecompose_SendsPMHistory(t *testing.T) {
	sender := &mockSender{reply: `[{"position": 1, "agent": "A", "instruction": "x"}]`}
	d, _ := newDecomposer(sender)

	if _, err := d.Decompose(context.Background(), "s1", "task"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.gotTurns) != 1 || sender.gotTurns[0].Role != model.RoleSystem {
		t.Errorf("expected seeded PM history, got %+v", sender.gotTurns)
	}
}

func TestDecompose_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "I think we should split this task into two parts."},
		{"empty array", "[]"},
		{"position gap", `[{"position": 1, "agent": "A", "instruction": "x"}, {"position": 3, "agent": "B", "instruction": "y"}]`},
		{"position not starting at 1", `[{"position": 2, "agent": "A", "instruction": "x"}]`},
		{"unknown agent", `[{"position": 1, "agent": "D", "instruction": "x"}]`},
		{"pm assigned to itself", `[{"position": 1, "agent": "pm", "instruction": "x"}]`},
		{"empty instruction", `[{"position": 1, "agent": "A", "instruction": "  "}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDecomposer(&mockSender{reply: tt.reply})

			_, err := d.Decompose(context.Background(), "s1", "task")
			if !errors.Is(err, ErrDecompositionFailed) {
				t.Errorf("expected ErrDecompositionFailed, got %v", err)
			}
		})
	}
}

func TestDecompose_PMCallError(t *testing.T) {
	sender := &mockSender{err: endpoint.ErrEndpointUnreachable}
	d, store := newDecomposer(sender)

	_, err := d.Decompose(context.Background(), "s1", "task")
	if !errors.Is(err, endpoint.ErrEndpointUnreachable) {
		t.Fatalf("expected wrapped endpoint error, got %v", err)
	}

	// Failed calls leave the PM history untouched apart from the seed.
	if got := store.Len(model.IdentityPM, "s1"); got != 1 {
		t.Errorf("expected only the seed turn, got %d", got)
	}
}

func TestDecompose_EmptyTask(t *testing.T) {
	sender := &mockSender{reply: "[]"}
	d, _ := newDecomposer(sender)

	_, err := d.Decompose(context.Background(), "s1", "   ")
	if !errors.Is(err, ErrDecompositionFailed) {
		t.Fatalf("expected ErrDecompositionFailed, got %v", err)
	}
	if sender.calls != 0 {
		t.Errorf("PM must not be called for empty task text, got %d calls", sender.calls)
	}
}
