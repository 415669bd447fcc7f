package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/internal/task"
	"agent-swarm-orchestrator/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrUnknownAgent),
		errors.Is(err, task.ErrEmptyMessage),
		errors.Is(err, task.ErrEmptySessionID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
