package notification

import (
	"github.com/google/uuid"
)

// SendReceiptEmailRequest emails one resident their receipt for a month
type SendReceiptEmailRequest struct {
	ResidentID uuid.UUID `json:"resident_id" binding:"required"`
	Month      string    `json:"month" binding:"required,monthkey"`
}

// SendRemindersRequest emails unpaid-receipt reminders to the given residents
type SendRemindersRequest struct {
	Emails []string `json:"emails" binding:"required,min=1,dive,email"`
}

// SendRemindersResponse summarizes a reminder run
type SendRemindersResponse struct {
	Sent    int      `json:"sent"`
	Skipped []string `json:"skipped,omitempty"` // emails with nothing due
	Failed  []string `json:"failed,omitempty"`
}
