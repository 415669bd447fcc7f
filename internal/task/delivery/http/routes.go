package http

import (
	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), h.Chat)
	rg.POST("/assign", mw.Auth(), h.Assign)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("/reset", mw.Auth(), h.ResetSession)
	}
}
