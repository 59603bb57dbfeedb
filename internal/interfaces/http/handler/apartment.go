package handler

import (
	propertyapp "github.com/edificio/backend/internal/application/property"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApartmentHandler handles apartment management endpoints
type ApartmentHandler struct {
	BaseHandler
	apartmentService *propertyapp.ApartmentService
}

// NewApartmentHandler creates a new ApartmentHandler
func NewApartmentHandler(apartmentService *propertyapp.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

// Create creates an apartment
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req propertyapp.CreateApartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	apartment, err := h.apartmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, apartment)
}

// Get returns a single apartment
func (h *ApartmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	apartment, err := h.apartmentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// List returns all apartments
func (h *ApartmentHandler) List(c *gin.Context) {
	apartments, err := h.apartmentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartments)
}

// Update applies a partial apartment update
func (h *ApartmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req propertyapp.UpdateApartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	apartment, err := h.apartmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// AssignResident moves a resident into an apartment
func (h *ApartmentHandler) AssignResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	residentID, err := uuid.Parse(c.Param("residentId"))
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	apartment, err := h.apartmentService.AssignResident(c.Request.Context(), id, residentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// Vacate removes the current resident from an apartment
func (h *ApartmentHandler) Vacate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	apartment, err := h.apartmentService.Vacate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// Delete removes an apartment
func (h *ApartmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.apartmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers apartment routes
func (h *ApartmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apartments := rg.Group("/apartments")
	{
		apartments.GET("", h.List)
		apartments.GET("/:id", h.Get)
	}

	admin := rg.Group("/apartments", middleware.AdminOnly())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/:id/resident/:residentId", h.AssignResident)
		admin.DELETE("/:id/resident", h.Vacate)
	}
}
