package http

import (
	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/pkg/response"
)

// Chat godoc
// @Summary     Submit a message to an agent
// @Description Sends a message to the PM (full decompose-and-dispatch flow) or directly to one worker (A/B/C).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message data"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Assign godoc
// @Summary     Assign a task (not implemented)
// @Description Placeholder for a future push-style assignment channel.
// @Tags        Task
// @Produce     json
// @Failure     501 {object} response.Resp "Not Implemented"
// @Router      /api/v1/assign [POST]
func (h *handler) Assign(c *gin.Context) {
	response.NotImplemented(c, "assignment channel is not implemented")
}

// ResetSession godoc
// @Summary     Reset an agent's session
// @Description Clears one agent's conversation history for a session. The system prompt is re-seeded on next use.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Target and session"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/sessions/reset [POST]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Reset(ctx, req.target, req.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
