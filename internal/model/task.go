package model

// Subtask is one unit of decomposed work. Produced once by the decomposer,
// consumed in strict ordinal order, never mutated after creation.
type Subtask struct {
	Position    int      // 1-based ordinal, strictly increasing with no gaps
	Agent       Identity // assigned worker (A, B or C)
	Instruction string
	Context     string // carried-forward output of the previous subtask, may be empty
}

// TaskStatus is the terminal state of a task.
type TaskStatus string

const (
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// ErrorKind classifies why a task failed.
type ErrorKind string

const (
	ErrKindDecompositionFailed ErrorKind = "decomposition_failed"
	ErrKindEndpointUnreachable ErrorKind = "endpoint_unreachable"
	ErrKindAuthRejected        ErrorKind = "auth_rejected"
	ErrKindMalformedResponse   ErrorKind = "malformed_response"
	ErrKindCancelled           ErrorKind = "cancelled"
)

// SubtaskOutput is the result of one dispatched subtask.
type SubtaskOutput struct {
	Position int      `json:"position"`
	Agent    Identity `json:"agent"`
	Output   string   `json:"output"`
}

// TaskResult is the terminal artifact of one task: every subtask output in
// ordinal order plus the overall status. On failure it records which ordinal
// failed and why; outputs produced before the failure are preserved.
type TaskResult struct {
	TaskID        string          `json:"task_id"`
	Status        TaskStatus      `json:"status"`
	Outputs       []SubtaskOutput `json:"outputs"`
	FailedOrdinal int             `json:"failed_ordinal,omitempty"`
	ErrorKind     ErrorKind       `json:"error_kind,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
}
