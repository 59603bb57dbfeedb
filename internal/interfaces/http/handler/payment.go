package handler

import (
	"io"

	paymentapp "github.com/edificio/backend/internal/application/payment"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment and voucher endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *paymentapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *paymentapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// SubmitVoucher registers a transfer voucher upload against a receipt
// month. The request is multipart: resident_id, month and amount_paid
// form fields plus a "voucher" file part.
func (h *PaymentHandler) SubmitVoucher(c *gin.Context) {
	residentID, err := uuid.Parse(c.PostForm("resident_id"))
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}
	if !h.requireSelfOrAdmin(c, residentID) {
		return
	}

	amountPaid, err := decimal.NewFromString(c.PostForm("amount_paid"))
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}

	fileHeader, err := c.FormFile("voucher")
	if err != nil {
		h.BadRequest(c, "Voucher file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read voucher file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read voucher file")
		return
	}

	req := paymentapp.SubmitVoucherRequest{
		ResidentID:  residentID,
		Month:       c.PostForm("month"),
		AmountPaid:  amountPaid,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	payment, err := h.paymentService.SubmitVoucher(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// RecordManual records a payment received outside the voucher flow
func (h *PaymentHandler) RecordManual(c *gin.Context) {
	var req paymentapp.ManualPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.RecordManual(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// Approve approves a pending payment
func (h *PaymentHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req paymentapp.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Approve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// Decline declines a pending payment
func (h *PaymentHandler) Decline(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req paymentapp.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Decline(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// BulkApprove approves a batch of pending payments
func (h *PaymentHandler) BulkApprove(c *gin.Context) {
	var req paymentapp.BulkApproveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.paymentService.BulkApprove(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Get returns a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if !h.requireSelfOrAdmin(c, payment.ResidentID) {
		return
	}
	h.Success(c, payment)
}

// List returns payments matching the query filters
func (h *PaymentHandler) List(c *gin.Context) {
	var req paymentapp.ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// VoucherURL returns a short-lived download link for the uploaded voucher
func (h *PaymentHandler) VoucherURL(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !h.requireSelfOrAdmin(c, payment.ResidentID) {
		return
	}

	url, err := h.paymentService.VoucherURL(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, url)
}

// Delete removes a payment and its stored voucher
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByResident returns a resident's payment history
func (h *PaymentHandler) ListByResident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	payments, err := h.paymentService.ListByResident(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// Debt returns a resident's current outstanding balance
func (h *PaymentHandler) Debt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if !h.requireSelfOrAdmin(c, id) {
		return
	}

	debt, err := h.paymentService.Debt(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, debt)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("/voucher", h.SubmitVoucher)
		payments.GET("/:id", h.Get)
		payments.GET("/:id/voucher", h.VoucherURL)
	}

	admin := rg.Group("/payments", middleware.AdminOnly())
	{
		admin.GET("", h.List)
		admin.POST("/manual", h.RecordManual)
		admin.POST("/bulk-approve", h.BulkApprove)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/decline", h.Decline)
		admin.DELETE("/:id", h.Delete)
	}

	residents := rg.Group("/residents/:id")
	{
		residents.GET("/payments", h.ListByResident)
		residents.GET("/debt", h.Debt)
	}
}
