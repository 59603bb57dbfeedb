package models

import (
	"time"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptModel is the persistence model for the Receipt aggregate root.
type ReceiptModel struct {
	AggregateModel
	ResidentID    uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_resident_month,priority:1"`
	ApartmentID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	ResidentName  string               `gorm:"type:varchar(200);not null"`
	ApartmentName string               `gorm:"type:varchar(100);not null"`
	Month         valueobject.MonthKey `gorm:"type:varchar(7);not null;uniqueIndex:idx_receipt_resident_month,priority:2;index"`
	Lines         billing.LineItems    `gorm:"type:jsonb;not null;default:'[]'"`
	Total         decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	SubTotal      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Paid          bool                 `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *billing.Receipt {
	r := &billing.Receipt{
		ResidentID:    m.ResidentID,
		ApartmentID:   m.ApartmentID,
		ResidentName:  m.ResidentName,
		ApartmentName: m.ApartmentName,
		Month:         m.Month,
		Lines:         m.Lines,
		Total:         m.Total,
		SubTotal:      m.SubTotal,
		Paid:          m.Paid,
	}
	m.PopulateAggregateRoot(&r.BaseAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *billing.Receipt) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.ResidentID = r.ResidentID
	m.ApartmentID = r.ApartmentID
	m.ResidentName = r.ResidentName
	m.ApartmentName = r.ApartmentName
	m.Month = r.Month
	m.Lines = r.Lines
	m.Total = r.Total
	m.SubTotal = r.SubTotal
	m.Paid = r.Paid
}

// ReceiptModelFromDomain creates a new persistence model from a domain Receipt.
func ReceiptModelFromDomain(r *billing.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomain(r)
	return m
}

// LaundryEntryModel is the persistence model for one laundry log entry.
type LaundryEntryModel struct {
	BaseModel
	ResidentID uuid.UUID            `gorm:"type:uuid;not null;index:idx_laundry_resident_month,priority:1"`
	Month      valueobject.MonthKey `gorm:"type:varchar(7);not null;index:idx_laundry_resident_month,priority:2"`
	Wash       int                  `gorm:"not null;default:0"`
	Dry        int                  `gorm:"not null;default:0"`
	LoggedAt   time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LaundryEntryModel) TableName() string {
	return "laundry_entries"
}

// ToDomain converts the persistence model to a domain LaundryEntry entity.
func (m *LaundryEntryModel) ToDomain() *billing.LaundryEntry {
	return &billing.LaundryEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		ResidentID: m.ResidentID,
		Month:      m.Month,
		Wash:       m.Wash,
		Dry:        m.Dry,
		LoggedAt:   m.LoggedAt,
	}
}

// FromDomain populates the persistence model from a domain LaundryEntry entity.
func (m *LaundryEntryModel) FromDomain(e *billing.LaundryEntry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ResidentID = e.ResidentID
	m.Month = e.Month
	m.Wash = e.Wash
	m.Dry = e.Dry
	m.LoggedAt = e.LoggedAt
}

// LaundryEntryModelFromDomain creates a new persistence model from a domain LaundryEntry.
func LaundryEntryModelFromDomain(e *billing.LaundryEntry) *LaundryEntryModel {
	m := &LaundryEntryModel{}
	m.FromDomain(e)
	return m
}
