package model

import (
	"fmt"
	"strings"
	"time"
)

// Identity identifies one agent in the fixed roster.
type Identity string

const (
	IdentityPM Identity = "pm"
	IdentityA  Identity = "A"
	IdentityB  Identity = "B"
	IdentityC  Identity = "C"
)

// Roster returns every agent identity, PM first.
func Roster() []Identity {
	return []Identity{IdentityPM, IdentityA, IdentityB, IdentityC}
}

// Workers returns the worker identities in dispatch order.
func Workers() []Identity {
	return []Identity{IdentityA, IdentityB, IdentityC}
}

// ParseIdentity maps a request string ("pm", "A", "B", "C") to an Identity.
// The PM target is matched case-insensitively; worker letters are exact.
func ParseIdentity(s string) (Identity, error) {
	switch {
	case strings.EqualFold(s, string(IdentityPM)):
		return IdentityPM, nil
	case s == string(IdentityA):
		return IdentityA, nil
	case s == string(IdentityB):
		return IdentityB, nil
	case s == string(IdentityC):
		return IdentityC, nil
	}
	return "", fmt.Errorf("unknown agent target: %q", s)
}

// IsWorker reports whether the identity is one of the three workers.
func (i Identity) IsWorker() bool {
	return i == IdentityA || i == IdentityB || i == IdentityC
}

// Conversation roles, matching the OpenAI-compatible wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one immutable message in an agent's conversation history.
// Insertion order is the conversation order and is replayed verbatim.
type Turn struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// NewTurn creates a turn stamped with the current time.
func NewTurn(role, content string) Turn {
	return Turn{Role: role, Content: content, Timestamp: time.Now()}
}
