package handler

import (
	billingapp "github.com/edificio/backend/internal/application/billing"
	"github.com/edificio/backend/internal/interfaces/http/dto"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt endpoints
type ReceiptHandler struct {
	BaseHandler
	receiptService *billingapp.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *billingapp.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Generate runs monthly receipt generation for every occupied apartment
func (h *ReceiptHandler) Generate(c *gin.Context) {
	var req billingapp.GenerateReceiptsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.receiptService.GenerateMonth(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns a single receipt with its derived payment state
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if !h.requireSelfOrAdmin(c, receipt.ResidentID) {
		return
	}
	h.Success(c, receipt)
}

// ListByMonth returns every receipt generated for a month
func (h *ReceiptHandler) ListByMonth(c *gin.Context) {
	var req dto.MonthRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipts, err := h.receiptService.ListByMonth(c.Request.Context(), req.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}

// ListByResident returns a resident's receipt history
func (h *ReceiptHandler) ListByResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	receipts, err := h.receiptService.ListByResident(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}

// ListPayable returns a resident's receipts still open for payment
func (h *ReceiptHandler) ListPayable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	receipts, err := h.receiptService.ListPayable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}

// Delete removes a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers receipt routes
func (h *ReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	receipts := rg.Group("/receipts")
	{
		receipts.GET("/:id", h.Get)
	}

	admin := rg.Group("/receipts", middleware.AdminOnly())
	{
		admin.POST("/generate", h.Generate)
		admin.GET("/month/:month", h.ListByMonth)
		admin.DELETE("/:id", h.Delete)
	}

	residents := rg.Group("/residents/:id")
	{
		residents.GET("/receipts", h.ListByResident)
		residents.GET("/receipts/payable", h.ListPayable)
	}
}
