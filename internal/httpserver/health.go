package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"erp-lookup/internal/lookup/repository/upstream"
	"erp-lookup/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "ERP lookup cache"
	HealthVersion = "1.0.0"
	ServiceName   = "erp-lookup"
)

// BreakerReporter exposes the upstream circuit state of a collection.
type BreakerReporter interface {
	BreakerState(collection string) upstream.BreakerState
}

func identity(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, identity("healthy"))
}

// readyCheck is not ready when every entity's upstream breaker is open.
// @Summary Readiness Check
// @Description Reports the configured entities and the collections whose ERP breaker is open
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "ERP unreachable for all entities"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	entities := srv.lookupUC.Entities()

	open := []string{}
	if srv.breakers != nil {
		for _, e := range entities {
			if srv.breakers.BreakerState(e.Collection) == upstream.BreakerStateOpen {
				open = append(open, e.Name)
			}
		}
	}

	body := identity("ready")
	body["entities"] = len(entities)
	body["open_breakers"] = open

	if len(entities) > 0 && len(open) == len(entities) {
		body["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "ERP unreachable",
			Data:      body,
		})
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, identity("alive"))
}
