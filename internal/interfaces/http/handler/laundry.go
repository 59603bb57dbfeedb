package handler

import (
	billingapp "github.com/edificio/backend/internal/application/billing"
	"github.com/edificio/backend/internal/interfaces/http/dto"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// LaundryHandler handles laundry-room log endpoints
type LaundryHandler struct {
	BaseHandler
	laundryService *billingapp.LaundryService
}

// NewLaundryHandler creates a new LaundryHandler
func NewLaundryHandler(laundryService *billingapp.LaundryService) *LaundryHandler {
	return &LaundryHandler{laundryService: laundryService}
}

// Log records a laundry-room visit. Residents may only log against
// their own account.
func (h *LaundryHandler) Log(c *gin.Context) {
	var req billingapp.LogLaundryRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.requireSelfOrAdmin(c, req.ResidentID) {
		return
	}

	entry, err := h.laundryService.Log(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

// ListByMonth returns the whole building's entries for a month
func (h *LaundryHandler) ListByMonth(c *gin.Context) {
	var req dto.MonthRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entries, err := h.laundryService.ListByMonth(c.Request.Context(), req.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// ListByResident returns one resident's entries for the month given in
// the query string
func (h *LaundryHandler) ListByResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	entries, err := h.laundryService.ListByResident(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// Usage returns a resident's priced aggregate for a month
func (h *LaundryHandler) Usage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	usage, err := h.laundryService.Usage(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, usage)
}

// Delete removes one log entry
func (h *LaundryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.laundryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers laundry routes
func (h *LaundryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	laundry := rg.Group("/laundry")
	{
		laundry.POST("", h.Log)
	}

	admin := rg.Group("/laundry", middleware.AdminOnly())
	{
		admin.GET("/month/:month", h.ListByMonth)
		admin.DELETE("/:id", h.Delete)
	}

	residents := rg.Group("/residents/:id")
	{
		residents.GET("/laundry", h.ListByResident)
		residents.GET("/laundry/usage", h.Usage)
	}
}
