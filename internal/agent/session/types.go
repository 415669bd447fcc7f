package session

import (
	"sync"

	"agent-swarm-orchestrator/internal/model"
)

// key scopes one conversation: histories are isolated per agent identity
// and per caller-provided session id.
type key struct {
	identity  model.Identity
	sessionID string
}

// entry holds one session's history. mu guards turns; inflight is the
// single-writer-at-a-time discipline the orchestrator holds across a full
// send+append cycle, so at most one request is in flight per session.
type entry struct {
	mu       sync.Mutex
	inflight sync.Mutex
	turns    []model.Turn
}
