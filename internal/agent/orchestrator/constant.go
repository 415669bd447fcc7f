package orchestrator

// Log prefixes
const (
	LogPrefixExecute = "internal.agent.orchestrator.Execute"
	LogPrefixDirect  = "internal.agent.orchestrator.Direct"
)

// ContextPreamble introduces carried-forward output inside the next
// subtask's instruction.
const ContextPreamble = "[Context from previous subtask]"

// EmptyReplyNudge is re-sent when a worker returns a blank reply, asking
// for a usable answer before the subtask is accepted.
const EmptyReplyNudge = "The previous reply was empty or off-topic. Provide a concise self-summary of the intended answer."
