// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DependencyCheck reports whether one backing service is reachable.
type DependencyCheck func() bool

// HealthController reports the liveness of the API and its backing services.
type HealthController struct {
	checkDatabase DependencyCheck
	checkRedis    DependencyCheck
}

// HealthStatus is the GET /health payload. Redis only backs the login rate
// limiter, which fails open, so a redis outage is reported but does not
// degrade the overall status; a database outage does.
type HealthStatus struct {
	Status    string `json:"status"` // "ok" or "degraded"
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checkDatabase, checkRedis DependencyCheck) *HealthController {
	return &HealthController{
		checkDatabase: checkDatabase,
		checkRedis:    checkRedis,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	databaseUp := h.checkDatabase != nil && h.checkDatabase()
	redisUp := h.checkRedis != nil && h.checkRedis()

	status := "ok"
	if !databaseUp {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:    status,
		Database:  dependencyLabel(databaseUp),
		Redis:     dependencyLabel(redisUp),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func dependencyLabel(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
