// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness and the state of the database link.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health. The endpoint always answers 200; an unreachable
// database shows up in the payload rather than the status code, so probes can
// tell a degraded process from a dead one.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		database = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
