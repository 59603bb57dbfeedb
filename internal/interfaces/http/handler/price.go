package handler

import (
	propertyapp "github.com/edificio/backend/internal/application/property"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PriceHandler handles the building-wide service price sheet
type PriceHandler struct {
	BaseHandler
	priceService *propertyapp.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *propertyapp.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// Get returns the current price sheet
func (h *PriceHandler) Get(c *gin.Context) {
	prices, err := h.priceService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, prices)
}

// Update replaces the price sheet
func (h *PriceHandler) Update(c *gin.Context) {
	var req propertyapp.UpdatePricesRequest
	if !bindJSON(c, &req) {
		return
	}

	prices, err := h.priceService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, prices)
}

// RegisterRoutes registers price sheet routes
func (h *PriceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/prices", h.Get)
	rg.PUT("/prices", middleware.AdminOnly(), h.Update)
}
