package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "agent-swarm-orchestrator"
)

// healthCheck reports whether the PM endpoint answers. The PM is the front
// door for every task, so an unreachable PM means the service is degraded
// even though the process itself is up.
// @Summary Health Check
// @Description Check if the API and the PM inference endpoint are healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Failure 503 {object} response.Resp "PM endpoint unreachable"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	if srv.pinger != nil {
		if err := srv.pinger.Ping(c.Request.Context(), model.IdentityPM); err != nil {
			srv.l.Warnf(c.Request.Context(), "health: pm endpoint unreachable: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "pm endpoint unreachable",
				Data: gin.H{
					"status":  "degraded",
					"version": HealthVersion,
					"service": ServiceName,
				},
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
