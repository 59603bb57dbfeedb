package models

import (
	"time"

	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment aggregate root.
type PaymentModel struct {
	AggregateModel
	ResidentID   uuid.UUID            `gorm:"type:uuid;not null;index:idx_payment_resident_month,priority:1"`
	ReceiptMonth valueobject.MonthKey `gorm:"type:varchar(7);not null;index:idx_payment_resident_month,priority:2"`
	AmountOwed   decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	AmountPaid   decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Status       payment.Status       `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ReviewNotes  string               `gorm:"type:text"`
	VoucherKey   string               `gorm:"type:varchar(500)"`
	ReviewedAt   *time.Time
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *payment.Payment {
	p := &payment.Payment{
		ResidentID:   m.ResidentID,
		ReceiptMonth: m.ReceiptMonth,
		AmountOwed:   m.AmountOwed,
		AmountPaid:   m.AmountPaid,
		Status:       m.Status,
		ReviewNotes:  m.ReviewNotes,
		VoucherKey:   m.VoucherKey,
		ReviewedAt:   m.ReviewedAt,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.ResidentID = p.ResidentID
	m.ReceiptMonth = p.ReceiptMonth
	m.AmountOwed = p.AmountOwed
	m.AmountPaid = p.AmountPaid
	m.Status = p.Status
	m.ReviewNotes = p.ReviewNotes
	m.VoucherKey = p.VoucherKey
	m.ReviewedAt = p.ReviewedAt
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
