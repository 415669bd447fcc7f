package middleware

import (
	"agent-swarm-orchestrator/config"
	"agent-swarm-orchestrator/pkg/log"
)

type Middleware struct {
	l        log.Logger
	security config.SecurityConfig
	limiter  *rateLimiter
}

func New(l log.Logger, security config.SecurityConfig) Middleware {
	return Middleware{
		l:        l,
		security: security,
		limiter:  newRateLimiter(security.RateLimitPerMin),
	}
}
