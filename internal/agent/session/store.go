package session

import (
	"sync"

	"agent-swarm-orchestrator/internal/model"
)

// Store maps (identity, session id) to an isolated conversation history.
// Sessions are created lazily, seeded with the agent's system prompt, and
// cleared only by explicit Reset — never implicitly.
type Store struct {
	mu       sync.Mutex
	sessions map[key]*entry
	prompts  map[model.Identity]string
}

// New creates a store. systemPrompts seeds each agent's first turn on
// session creation; agents without a prompt start empty.
func New(systemPrompts map[model.Identity]string) *Store {
	prompts := make(map[model.Identity]string, len(systemPrompts))
	for id, p := range systemPrompts {
		prompts[id] = p
	}
	return &Store{
		sessions: make(map[key]*entry),
		prompts:  prompts,
	}
}

// getOrCreate returns the entry for the key, creating and seeding it on
// first use.
func (s *Store) getOrCreate(id model.Identity, sessionID string) *entry {
	k := key{identity: id, sessionID: sessionID}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[k]
	if !ok {
		e = &entry{}
		if prompt, has := s.prompts[id]; has && prompt != "" {
			e.turns = append(e.turns, model.NewTurn(model.RoleSystem, prompt))
		}
		s.sessions[k] = e
	}
	return e
}

// Snapshot returns a copy of the session's ordered turn sequence. The copy
// never aliases live history, so callers can serialize it while writers
// append.
func (s *Store) Snapshot(id model.Identity, sessionID string) []model.Turn {
	e := s.getOrCreate(id, sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()

	turns := make([]model.Turn, len(e.turns))
	copy(turns, e.turns)
	return turns
}

// Append adds turns to the session in order. It is the only mutator and is
// atomic with respect to concurrent callers on the same session.
func (s *Store) Append(id model.Identity, sessionID string, turns ...model.Turn) {
	e := s.getOrCreate(id, sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.turns = append(e.turns, turns...)
}

// Reset clears the session history and re-seeds the system prompt. Used
// only on explicit operator action.
func (s *Store) Reset(id model.Identity, sessionID string) {
	e := s.getOrCreate(id, sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.turns = nil
	if prompt, has := s.prompts[id]; has && prompt != "" {
		e.turns = append(e.turns, model.NewTurn(model.RoleSystem, prompt))
	}
}

// Lock acquires the session's in-flight slot and returns the release func.
// Two tasks needing the same agent session serialize here instead of
// interleaving writes.
func (s *Store) Lock(id model.Identity, sessionID string) func() {
	e := s.getOrCreate(id, sessionID)
	e.inflight.Lock()
	return e.inflight.Unlock
}

// Len reports the number of turns currently in the session.
func (s *Store) Len(id model.Identity, sessionID string) int {
	e := s.getOrCreate(id, sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.turns)
}
