package http

import (
	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Target    string `json:"target"     binding:"required"`
	Message   string `json:"message"    binding:"required"`

	target model.Identity `json:"-"` // populated by processChatReq
}

func (r chatReq) toInput() task.SubmitInput {
	return task.SubmitInput{
		Target:    r.target,
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

type resetReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Target    string `json:"target"     binding:"required"`

	target model.Identity `json:"-"` // populated by processResetReq
}

// --- Response DTOs ---

type subtaskOutputResp struct {
	Position int    `json:"position"`
	Agent    string `json:"agent"`
	Output   string `json:"output"`
}

type chatResp struct {
	TaskID        string              `json:"task_id"`
	Status        string              `json:"status"`
	Outputs       []subtaskOutputResp `json:"outputs"`
	FailedOrdinal int                 `json:"failed_ordinal,omitempty"`
	ErrorKind     string              `json:"error_kind,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
}

func (h *handler) newChatResp(out task.SubmitOutput) chatResp {
	res := out.Result
	outputs := make([]subtaskOutputResp, len(res.Outputs))
	for i, o := range res.Outputs {
		outputs[i] = subtaskOutputResp{
			Position: o.Position,
			Agent:    string(o.Agent),
			Output:   o.Output,
		}
	}
	return chatResp{
		TaskID:        res.TaskID,
		Status:        string(res.Status),
		Outputs:       outputs,
		FailedOrdinal: res.FailedOrdinal,
		ErrorKind:     string(res.ErrorKind),
		ErrorMessage:  res.ErrorMessage,
	}
}
