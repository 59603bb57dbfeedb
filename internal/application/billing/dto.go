package billing

import (
	"time"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenerateReceiptsRequest represents a monthly bulk generation run. The bill
// totals are optional: when a utility bill was not recorded for the month the
// corresponding line is omitted from every receipt.
type GenerateReceiptsRequest struct {
	Month            string           `json:"month" binding:"required,monthkey"`
	WaterBillTotal   *decimal.Decimal `json:"water_bill_total"`
	ElectricityTotal *decimal.Decimal `json:"electricity_total"`
}

// GenerateReceiptsResponse summarizes a bulk generation run
type GenerateReceiptsResponse struct {
	Month           string   `json:"month"`
	Generated       int      `json:"generated"`
	SkippedVacant   int      `json:"skipped_vacant"`
	SkippedExisting int      `json:"skipped_existing"`
	Failed          []string `json:"failed,omitempty"` // apartment names
}

// LineItemResponse is one charge on a receipt
type LineItemResponse struct {
	Kind   string          `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ReceiptResponse represents a receipt in API responses. PaymentState is
// derived from the receipt's payments at read time, never stored.
type ReceiptResponse struct {
	ID            uuid.UUID          `json:"id"`
	ResidentID    uuid.UUID          `json:"resident_id"`
	ApartmentID   uuid.UUID          `json:"apartment_id"`
	ResidentName  string             `json:"resident_name"`
	ApartmentName string             `json:"apartment_name"`
	Month         string             `json:"month"`
	Lines         []LineItemResponse `json:"lines"`
	Total         decimal.Decimal    `json:"total"`
	SubTotal      decimal.Decimal    `json:"sub_total"`
	PaymentState  string             `json:"payment_state"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToReceiptResponse converts a domain receipt, deriving its payment state
// from the given payments
func ToReceiptResponse(r *billing.Receipt, payments []payment.Payment) *ReceiptResponse {
	lines := make([]LineItemResponse, len(r.Lines))
	for i, item := range r.Lines {
		lines[i] = LineItemResponse{
			Kind:   string(item.Kind),
			Label:  item.Label,
			Amount: item.Amount,
		}
	}
	return &ReceiptResponse{
		ID:            r.ID,
		ResidentID:    r.ResidentID,
		ApartmentID:   r.ApartmentID,
		ResidentName:  r.ResidentName,
		ApartmentName: r.ApartmentName,
		Month:         r.Month.String(),
		Lines:         lines,
		Total:         r.Total,
		SubTotal:      r.SubTotal,
		PaymentState:  string(billing.ReceiptPaymentStatus(r, payments)),
		CreatedAt:     r.CreatedAt,
	}
}

// LogLaundryRequest records a laundry-room visit
type LogLaundryRequest struct {
	ResidentID uuid.UUID `json:"resident_id" binding:"required"`
	Month      string    `json:"month" binding:"required,monthkey"`
	Wash       int       `json:"wash" binding:"min=0"`
	Dry        int       `json:"dry" binding:"min=0"`
}

// LaundryEntryResponse represents one logged visit
type LaundryEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	ResidentID uuid.UUID `json:"resident_id"`
	Month      string    `json:"month"`
	Wash       int       `json:"wash"`
	Dry        int       `json:"dry"`
	LoggedAt   time.Time `json:"logged_at"`
}

// LaundryUsageResponse is a resident's priced monthly aggregate
type LaundryUsageResponse struct {
	ResidentID uuid.UUID       `json:"resident_id"`
	Month      string          `json:"month"`
	Wash       int             `json:"wash"`
	Dry        int             `json:"dry"`
	WashTotal  decimal.Decimal `json:"wash_total"`
	DryTotal   decimal.Decimal `json:"dry_total"`
	Total      decimal.Decimal `json:"total"`
}

// ToLaundryEntryResponse converts a domain laundry entry
func ToLaundryEntryResponse(e *billing.LaundryEntry) *LaundryEntryResponse {
	return &LaundryEntryResponse{
		ID:         e.ID,
		ResidentID: e.ResidentID,
		Month:      e.Month.String(),
		Wash:       e.Wash,
		Dry:        e.Dry,
		LoggedAt:   e.LoggedAt,
	}
}
