package handler

import (
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and storage reachability
type HealthHandler struct {
	BaseHandler
	appName string
	ping    func() error
}

// NewHealthHandler creates a new HealthHandler. ping may be nil when the
// storage driver has no connection to check.
func NewHealthHandler(appName string, ping func() error) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		ping:    ping,
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health answers the health probe
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"service": h.appName,
		"status":  "ok",
	}

	if h.ping != nil {
		if err := h.ping(); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			c.JSON(503, status)
			return
		}
		status["database"] = "ok"
	}

	c.JSON(200, status)
}
