package handler

import (
	propertyapp "github.com/edificio/backend/internal/application/property"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ResidentHandler handles resident account endpoints
type ResidentHandler struct {
	BaseHandler
	residentService *propertyapp.ResidentService
}

// NewResidentHandler creates a new ResidentHandler
func NewResidentHandler(residentService *propertyapp.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

// Create registers a resident account
func (h *ResidentHandler) Create(c *gin.Context) {
	var req propertyapp.CreateResidentRequest
	if !bindJSON(c, &req) {
		return
	}

	resident, err := h.residentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resident)
}

// Get returns a single resident. Residents may only read their own record.
func (h *ResidentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	resident, err := h.residentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resident)
}

// List returns all residents
func (h *ResidentHandler) List(c *gin.Context) {
	residents, err := h.residentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, residents)
}

// Update applies a partial resident update
func (h *ResidentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req propertyapp.UpdateResidentRequest
	if !bindJSON(c, &req) {
		return
	}

	resident, err := h.residentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resident)
}

// Delete removes a resident account and vacates their apartment
func (h *ResidentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.residentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers resident routes
func (h *ResidentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	residents := rg.Group("/residents")
	{
		residents.GET("/:id", h.Get)
	}

	admin := rg.Group("/residents", middleware.AdminOnly())
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
