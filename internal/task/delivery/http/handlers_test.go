package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

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

type mockUseCase struct {
	submitInput task.SubmitInput
	submitOut   task.SubmitOutput
	submitErr   error

	resetTarget  model.Identity
	resetSession string
	resetErr     error
}

func (m *mockUseCase) Submit(ctx context.Context, input task.SubmitInput) (task.SubmitOutput, error) {
	m.submitInput = input
	return m.submitOut, m.submitErr
}

func (m *mockUseCase) Reset(ctx context.Context, target model.Identity, sessionID string) error {
	m.resetTarget = target
	m.resetSession = sessionID
	return m.resetErr
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/chat", h.Chat)
	v1.POST("/assign", h.Assign)
	v1.POST("/sessions/reset", h.ResetSession)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_OK(t *testing.T) {
	uc := &mockUseCase{
		submitOut: task.SubmitOutput{
			Result: model.TaskResult{
				TaskID: "t-1",
				Status: model.TaskCompleted,
				Outputs: []model.SubtaskOutput{
					{Position: 1, Agent: model.IdentityA, Output: "haiku text"},
				},
			},
		},
	}
	r := newTestRouter(uc)

	w := postJSON(r, "/api/v1/chat", gin.H{
		"session_id": "s1",
		"target":     "pm",
		"message":    "write a haiku",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.submitInput.Target != model.IdentityPM {
		t.Errorf("expected pm target, got %s", uc.submitInput.Target)
	}

	var resp struct {
		Data chatResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.TaskID != "t-1" || resp.Data.Status != string(model.TaskCompleted) {
		t.Errorf("unexpected body: %+v", resp.Data)
	}
	if len(resp.Data.Outputs) != 1 || resp.Data.Outputs[0].Output != "haiku text" {
		t.Errorf("unexpected outputs: %+v", resp.Data.Outputs)
	}
}

func TestChat_FailedResultStillOK(t *testing.T) {
	uc := &mockUseCase{
		submitOut: task.SubmitOutput{
			Result: model.TaskResult{
				TaskID:        "t-2",
				Status:        model.TaskFailed,
				FailedOrdinal: 2,
				ErrorKind:     model.ErrKindEndpointUnreachable,
				ErrorMessage:  "endpoint unreachable after 3 attempts",
			},
		},
	}
	r := newTestRouter(uc)

	w := postJSON(r, "/api/v1/chat", gin.H{
		"session_id": "s1",
		"target":     "pm",
		"message":    "doomed",
	})

	// A terminal failed result is still a well-formed answer.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data chatResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.ErrorKind != string(model.ErrKindEndpointUnreachable) || resp.Data.FailedOrdinal != 2 {
		t.Errorf("unexpected body: %+v", resp.Data)
	}
}

func TestChat_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"unknown target", gin.H{"session_id": "s1", "target": "D", "message": "hi"}},
		{"missing message", gin.H{"session_id": "s1", "target": "pm"}},
		{"missing session", gin.H{"target": "pm", "message": "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{})
			w := postJSON(r, "/api/v1/chat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestChat_CaseInsensitivePMTarget(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := postJSON(r, "/api/v1/chat", gin.H{
		"session_id": "s1",
		"target":     "PM",
		"message":    "hi",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.submitInput.Target != model.IdentityPM {
		t.Errorf("expected pm, got %s", uc.submitInput.Target)
	}
}

func TestAssign_NotImplemented(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := postJSON(r, "/api/v1/assign", gin.H{"anything": true})
	if w.Code != http.StatusNotImplemented {
		t.Errorf("expected 501, got %d", w.Code)
	}
}

func TestResetSession(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := postJSON(r, "/api/v1/sessions/reset", gin.H{
		"session_id": "s1",
		"target":     "A",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.resetTarget != model.IdentityA || uc.resetSession != "s1" {
		t.Errorf("unexpected reset call: %s/%s", uc.resetTarget, uc.resetSession)
	}
}
