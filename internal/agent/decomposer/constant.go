package decomposer

// Prompt template sent to the PM. The response must be a JSON array so it
// survives round-trips through small local models; markdown fences are
// tolerated and stripped before parsing.
const (
	DecomposePromptTemplate = `Break the following task into an ordered sequence of subtasks for the worker agents A, B and C. Assign each subtask to exactly one worker.

Task: %s

Respond with ONLY a JSON array, no prose, in this exact shape:
[{"position": 1, "agent": "A", "instruction": "..."}, {"position": 2, "agent": "B", "instruction": "..."}]

Rules:
- positions start at 1 and increase by exactly 1
- agent must be one of "A", "B", "C"
- instruction must be a complete, self-contained work order`
)

// Log prefixes
const (
	LogPrefixDecompose = "internal.agent.decomposer.Decompose"
)
