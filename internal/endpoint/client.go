package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/pkg/lmstudio"
)

// Send serializes the session's ordered turn sequence plus the new message
// and issues the call with bounded retry. Transient failures (connection
// errors, per-attempt timeouts, 5xx, 429) are retried with exponential
// backoff; auth and validation failures return immediately. Each retry is a
// fresh request.
func (c *Client) Send(ctx context.Context, id model.Identity, turns []model.Turn, message string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	reg, ok := c.backends[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}

	messages := make([]lmstudio.ChatMessage, 0, len(turns)+1)
	for _, turn := range turns {
		messages = append(messages, lmstudio.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, lmstudio.ChatMessage{Role: model.RoleUser, Content: message})

	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.policy.jittered(c.policy.Delay(attempt - 1))
			c.l.Debugf(ctx, "endpoint %s: retrying in %s (attempt %d/%d)", id, delay, attempt, c.policy.MaxAttempts)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		reply, err := c.attempt(ctx, reg, messages)
		if err == nil {
			return &Reply{Content: reply.Content, Usage: reply.Usage, Attempts: attempt}, nil
		}

		// A cancelled parent context aborts the remaining attempts.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if terminal := classifyTerminal(err); terminal != nil {
			c.l.Warnf(ctx, "endpoint %s: terminal failure on attempt %d: %v", id, attempt, err)
			return nil, terminal
		}

		c.l.Warnf(ctx, "endpoint %s: transient failure on attempt %d/%d: %v", id, attempt, c.policy.MaxAttempts, err)
		lastErr = err
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrEndpointUnreachable, c.policy.MaxAttempts, lastErr)
}

// attempt runs one request under the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, reg registeredBackend, messages []lmstudio.ChatMessage) (*lmstudio.Reply, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, reg.timeout)
	defer cancel()
	return reg.backend.Chat(attemptCtx, messages)
}

// classifyTerminal maps an attempt error to its terminal class, or nil when
// the error is transient. 401/403 are auth rejections; other 4xx and
// unparseable bodies cannot succeed on retry.
func classifyTerminal(err error) error {
	var apiErr *lmstudio.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Transient() {
			return nil
		}
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: %v", ErrAuthRejected, err)
		}
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var formatErr *lmstudio.FormatError
	if errors.As(err, &formatErr) {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Connection errors and attempt timeouts are transient.
	return nil
}

// Ping reports whether the identity's endpoint is reachable.
func (c *Client) Ping(ctx context.Context, id model.Identity) error {
	reg, ok := c.backends[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	pingCtx, cancel := context.WithTimeout(ctx, reg.timeout)
	defer cancel()
	return reg.backend.Ping(pingCtx)
}
