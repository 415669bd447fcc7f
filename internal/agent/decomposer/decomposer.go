package decomposer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agent-swarm-orchestrator/internal/model"
)

// rawSubtask is the wire shape the PM is asked to produce.
type rawSubtask struct {
	Position    int    `json:"position"`
	Agent       string `json:"agent"`
	Instruction string `json:"instruction"`
}

// Decompose sends the decomposition prompt through the PM's own endpoint,
// scoped to the PM's session, and parses the structured response. Whichever
// worker the PM names per subtask is kept as-is; availability is the
// orchestrator's problem.
func (d *Decomposer) Decompose(ctx context.Context, sessionID, taskText string) ([]model.Subtask, error) {
	if strings.TrimSpace(taskText) == "" {
		return nil, fmt.Errorf("%w: empty task text", ErrDecompositionFailed)
	}

	prompt := fmt.Sprintf(DecomposePromptTemplate, taskText)

	unlock := d.store.Lock(model.IdentityPM, sessionID)
	defer unlock()

	turns := d.store.Snapshot(model.IdentityPM, sessionID)
	reply, err := d.sender.Send(ctx, model.IdentityPM, turns, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: PM call failed: %w", LogPrefixDecompose, err)
	}

	d.store.Append(model.IdentityPM, sessionID,
		model.NewTurn(model.RoleUser, prompt),
		model.NewTurn(model.RoleAssistant, reply.Content),
	)

	subtasks, err := parseSubtasks(reply.Content)
	if err != nil {
		d.l.Warnf(ctx, "%s: unusable PM response: %v", LogPrefixDecompose, err)
		return nil, err
	}

	d.l.Infof(ctx, "%s: PM produced %d subtasks", LogPrefixDecompose, len(subtasks))
	return subtasks, nil
}

// parseSubtasks extracts and validates the subtask sequence from the PM's
// text. Any violation yields ErrDecompositionFailed: partial decompositions
// are never executed.
func parseSubtasks(text string) ([]model.Subtask, error) {
	cleaned := stripCodeFences(text)

	var raw []rawSubtask
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON array: %v", ErrDecompositionFailed, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no subtasks in response", ErrDecompositionFailed)
	}

	subtasks := make([]model.Subtask, 0, len(raw))
	for i, r := range raw {
		if r.Position != i+1 {
			return nil, fmt.Errorf("%w: position %d at index %d breaks the 1..N sequence", ErrDecompositionFailed, r.Position, i)
		}

		id, err := model.ParseIdentity(r.Agent)
		if err != nil || !id.IsWorker() {
			return nil, fmt.Errorf("%w: subtask %d assigned to invalid agent %q", ErrDecompositionFailed, r.Position, r.Agent)
		}

		if strings.TrimSpace(r.Instruction) == "" {
			return nil, fmt.Errorf("%w: subtask %d has an empty instruction", ErrDecompositionFailed, r.Position)
		}

		subtasks = append(subtasks, model.Subtask{
			Position:    r.Position,
			Agent:       id,
			Instruction: r.Instruction,
		})
	}

	return subtasks, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
