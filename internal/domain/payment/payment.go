package payment

import (
	"time"

	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the approval state of a payment
type Status string

const (
	StatusPending  Status = "PENDING"  // Submitted by a resident, awaiting admin review
	StatusApproved Status = "APPROVED" // Counts toward paid totals and debt
	StatusDeclined Status = "DECLINED" // Rejected by an admin
)

// IsValid checks if the status is a known one
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true once the payment has been reviewed. The only exit
// from a terminal state is deletion of the record.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDeclined
}

// Payment is one remittance against a specific receipt, submitted by a
// resident as a voucher upload or recorded directly by an administrator.
type Payment struct {
	shared.BaseAggregateRoot
	ResidentID   uuid.UUID            `json:"resident_id"`
	ReceiptMonth valueobject.MonthKey `json:"receipt_month"`
	AmountOwed   decimal.Decimal      `json:"amount_owed"` // copied from the receipt at submission time
	AmountPaid   decimal.Decimal      `json:"amount_paid"`
	Status       Status               `json:"status"`
	ReviewNotes  string               `json:"review_notes,omitempty"`
	VoucherKey   string               `json:"voucher_key,omitempty"` // object-store key of the uploaded voucher
	ReviewedAt   *time.Time           `json:"reviewed_at,omitempty"`
}

func newPayment(residentID uuid.UUID, month valueobject.MonthKey, owed, paid decimal.Decimal, status Status) (*Payment, error) {
	if residentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RESIDENT", "Resident ID cannot be empty")
	}
	if month.IsZero() {
		return nil, shared.NewDomainError("INVALID_MONTH", "Receipt month is required")
	}
	if paid.IsNegative() || paid.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount must be positive")
	}
	if owed.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Owed amount cannot be negative")
	}
	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ResidentID:        residentID,
		ReceiptMonth:      month,
		AmountOwed:        owed,
		AmountPaid:        paid,
		Status:            status,
	}, nil
}

// NewVoucherPayment creates a pending payment from a resident voucher upload
func NewVoucherPayment(residentID uuid.UUID, month valueobject.MonthKey, owed, paid decimal.Decimal, voucherKey string) (*Payment, error) {
	p, err := newPayment(residentID, month, owed, paid, StatusPending)
	if err != nil {
		return nil, err
	}
	p.VoucherKey = voucherKey
	return p, nil
}

// NewManualPayment creates a payment recorded directly by an administrator.
// It is approved immediately, there is nothing to review.
func NewManualPayment(residentID uuid.UUID, month valueobject.MonthKey, owed, paid decimal.Decimal, notes string) (*Payment, error) {
	p, err := newPayment(residentID, month, owed, paid, StatusApproved)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.ReviewNotes = notes
	p.ReviewedAt = &now
	return p, nil
}

// Approve transitions a pending payment to APPROVED
func (p *Payment) Approve(notes string) error {
	if p.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending payments can be approved")
	}
	now := time.Now()
	p.Status = StatusApproved
	p.ReviewNotes = notes
	p.ReviewedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}

// Decline transitions a pending payment to DECLINED
func (p *Payment) Decline(notes string) error {
	if p.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending payments can be declined")
	}
	now := time.Now()
	p.Status = StatusDeclined
	p.ReviewNotes = notes
	p.ReviewedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}

// IsApproved returns true for approved payments
func (p *Payment) IsApproved() bool {
	return p.Status == StatusApproved
}

// IsPending returns true for payments awaiting review
func (p *Payment) IsPending() bool {
	return p.Status == StatusPending
}

// CoversOwed reports whether the paid amount covers the owed amount
func (p *Payment) CoversOwed() bool {
	return p.AmountPaid.GreaterThanOrEqual(p.AmountOwed)
}
