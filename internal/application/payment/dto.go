package payment

import (
	"time"

	"github.com/edificio/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitVoucherRequest registers a resident's transfer voucher against one
// receipt month. The file content arrives as a multipart upload.
type SubmitVoucherRequest struct {
	ResidentID  uuid.UUID
	Month       string
	AmountPaid  decimal.Decimal
	Filename    string
	ContentType string
	Data        []byte
}

// ManualPaymentRequest records a payment an administrator received outside
// the voucher flow, cash or a direct transfer
type ManualPaymentRequest struct {
	ResidentID uuid.UUID       `json:"resident_id" binding:"required"`
	Month      string          `json:"month" binding:"required,monthkey"`
	AmountPaid decimal.Decimal `json:"amount_paid" binding:"required"`
	Notes      string          `json:"notes" binding:"max=500"`
}

// ReviewRequest carries the reviewer's notes for an approve or decline
type ReviewRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// BulkApproveRequest approves a batch of pending payments in one call
type BulkApproveRequest struct {
	PaymentIDs []uuid.UUID `json:"payment_ids" binding:"required,min=1"`
	Notes      string      `json:"notes" binding:"max=500"`
}

// BulkApproveResponse summarizes a batch approval
type BulkApproveResponse struct {
	Approved int         `json:"approved"`
	Failed   []uuid.UUID `json:"failed,omitempty"`
}

// ListPaymentsRequest narrows the admin review queue
type ListPaymentsRequest struct {
	ResidentID *uuid.UUID `form:"resident_id"`
	Month      *string    `form:"month" binding:"omitempty,monthkey"`
	Status     *string    `form:"status" binding:"omitempty,oneof=PENDING APPROVED DECLINED"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	ResidentID  uuid.UUID       `json:"resident_id"`
	Month       string          `json:"month"`
	AmountOwed  decimal.Decimal `json:"amount_owed"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Status      string          `json:"status"`
	ReviewNotes string          `json:"review_notes,omitempty"`
	VoucherKey  string          `json:"voucher_key,omitempty"`
	ReviewedAt  *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// VoucherURLResponse carries a presigned link to the uploaded voucher
type VoucherURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DebtResponse is a resident's current outstanding balance
type DebtResponse struct {
	ResidentID uuid.UUID       `json:"resident_id"`
	Debt       decimal.Decimal `json:"debt"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		ResidentID:  p.ResidentID,
		Month:       p.ReceiptMonth.String(),
		AmountOwed:  p.AmountOwed,
		AmountPaid:  p.AmountPaid,
		Status:      string(p.Status),
		ReviewNotes: p.ReviewNotes,
		VoucherKey:  p.VoucherKey,
		ReviewedAt:  p.ReviewedAt,
		CreatedAt:   p.CreatedAt,
	}
}
