package handler

import (
	"net/http"

	"github.com/edificio/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports process liveness and database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
