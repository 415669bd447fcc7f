package orchestrator

// State enumerates the per-task lifecycle. Completed and Failed are final;
// a new task always starts at Idle.
type State string

const (
	StateIdle        State = "idle"
	StateDecomposing State = "decomposing"
	StateDispatching State = "dispatching"
	StateCompleted   State = "completed"
	StateFailed      State = "failed"
)

// CarryForwardMode selects how much of a subtask's output is carried into
// the next subtask's context.
type CarryForwardMode string

const (
	CarryFull      CarryForwardMode = "full"
	CarryTruncated CarryForwardMode = "truncated"
)

// CarryForward is the configurable forward-context policy.
type CarryForward struct {
	Mode     CarryForwardMode
	MaxChars int // used when Mode is CarryTruncated
}

// Apply shapes a subtask output for the next subtask's context.
func (cf CarryForward) Apply(output string) string {
	if cf.Mode != CarryTruncated || cf.MaxChars <= 0 {
		return output
	}
	runes := []rune(output)
	if len(runes) <= cf.MaxChars {
		return output
	}
	return string(runes[:cf.MaxChars])
}
