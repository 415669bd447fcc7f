package http

import (
	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	target, err := model.ParseIdentity(req.Target)
	if err != nil {
		return req, task.ErrUnknownAgent
	}
	req.target = target
	return req, nil
}

// processResetReq binds and validates the session reset request body.
func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	target, err := model.ParseIdentity(req.Target)
	if err != nil {
		return req, task.ErrUnknownAgent
	}
	req.target = target
	return req, nil
}
