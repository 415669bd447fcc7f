package endpoint

import (
	"context"
	"time"

	"agent-swarm-orchestrator/internal/model"
	pkgLog "agent-swarm-orchestrator/pkg/log"
	"agent-swarm-orchestrator/pkg/lmstudio"
)

// Backend issues single inference attempts against one configured endpoint.
type Backend interface {
	Chat(ctx context.Context, messages []lmstudio.ChatMessage) (*lmstudio.Reply, error)
	Ping(ctx context.Context) error
}

type registeredBackend struct {
	backend Backend
	timeout time.Duration
}

// Client resolves an agent identity to its backend and applies the retry
// policy around single-attempt calls. It never touches session state.
type Client struct {
	l        pkgLog.Logger
	policy   RetryPolicy
	backends map[model.Identity]registeredBackend

	// sleep is injectable so tests can record backoff waits instead of
	// actually waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an endpoint client with no registered backends.
func New(l pkgLog.Logger, policy RetryPolicy) *Client {
	return &Client{
		l:        l,
		policy:   policy.normalize(),
		backends: make(map[model.Identity]registeredBackend),
		sleep:    sleepCtx,
	}
}

// Register binds an identity to its backend and per-attempt timeout.
func (c *Client) Register(id model.Identity, b Backend, timeout time.Duration) {
	if timeout <= 0 {
		timeout = lmstudio.DefaultTimeout
	}
	c.backends[id] = registeredBackend{backend: b, timeout: timeout}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
