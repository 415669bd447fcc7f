package middleware

import (
	"crypto/subtle"
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/pkg/response"
)

// Auth verifies the bearer token against the value of the configured
// environment variable. Enabled with the variable unset is a server
// misconfiguration, not a client fault, and answers 500.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.security.Enabled {
			c.Next()
			return
		}

		expected := os.Getenv(m.security.TokenEnv)
		if expected == "" {
			m.l.Errorf(c.Request.Context(), "auth enabled but %s is not set", m.security.TokenEnv)
			response.InternalError(c, errors.New("auth token not configured"))
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
