package endpoint

import (
	"math/rand"
	"time"

	"agent-swarm-orchestrator/pkg/lmstudio"
)

// RetryPolicy bounds retries for transient failures: the delay before
// attempt n+1 is BaseDelay * Multiplier^(n-1), capped at MaxDelay, with
// optional uniform jitter.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	Jitter      bool
}

// DefaultRetryPolicy mirrors the backend defaults: 3 attempts, doubling
// from 1s, capped at 30s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2.0,
		MaxDelay:    30 * time.Second,
		Jitter:      true,
	}
}

// normalize fills in unusable zero values so a partially configured policy
// still behaves.
func (p RetryPolicy) normalize() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = time.Second
	}
	if p.Multiplier < 1 {
		p.Multiplier = 2.0
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 30 * time.Second
	}
	return p
}

// Delay returns the wait before the retry that follows attempt n (1-based),
// before jitter.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= p.Multiplier
		if time.Duration(d) >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if time.Duration(d) > p.MaxDelay {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// jittered applies up to ±25% uniform jitter when enabled.
func (p RetryPolicy) jittered(d time.Duration) time.Duration {
	if !p.Jitter || d <= 0 {
		return d
	}
	delta := time.Duration(rand.Int63n(int64(d)/2+1)) - d/4
	return d + delta
}

// Reply is a successful endpoint response: the model's text, usage metadata
// when reported, and how many attempts the call took.
type Reply struct {
	Content  string
	Usage    *lmstudio.Usage
	Attempts int
}
