package handler

import (
	notificationapp "github.com/edificio/backend/internal/application/notification"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// MailHandler handles outbound email endpoints. All routes require the
// administrator role.
type MailHandler struct {
	BaseHandler
	emailService *notificationapp.EmailService
}

// NewMailHandler creates a new MailHandler
func NewMailHandler(emailService *notificationapp.EmailService) *MailHandler {
	return &MailHandler{emailService: emailService}
}

// SendReceipt emails one resident their receipt for a month
func (h *MailHandler) SendReceipt(c *gin.Context) {
	var req notificationapp.SendReceiptEmailRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.emailService.SendReceipt(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SendReminders emails unpaid-receipt reminders to the given residents
func (h *MailHandler) SendReminders(c *gin.Context) {
	var req notificationapp.SendRemindersRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.emailService.SendReminders(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers mail routes
func (h *MailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mail := rg.Group("/email", middleware.AdminOnly())
	{
		mail.POST("/receipt", h.SendReceipt)
		mail.POST("/reminder", h.SendReminders)
	}
}
