package billing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineKind identifies a receipt charge
type LineKind string

const (
	LineRent           LineKind = "rent"
	LineDebt           LineKind = "debt"
	LineMaintenance    LineKind = "maintenance"
	LineAdministration LineKind = "administration"
	LineMunicipality   LineKind = "municipality"
	LineWater          LineKind = "water"
	LineElectricity    LineKind = "electricity"
	LineInternet       LineKind = "internet"
	LineCable          LineKind = "cable"
	LineLaundry        LineKind = "laundry"
)

// LineItem is one charge on a receipt. A receipt carries only the charges
// that actually applied that month; there are no zero-filled placeholder
// lines for services the resident does not have.
type LineItem struct {
	Kind   LineKind        `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// LineItems is an ordered list of charges, stored as JSONB
type LineItems []LineItem

// Sum returns the receipt total: every line amount rounded to the nearest
// whole unit, then summed. Rendering and totalling operate on the same list,
// so the total always reflects exactly the lines shown.
func (l LineItems) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l {
		total = total.Add(item.Amount.Round(0))
	}
	return total
}

// Find returns the line of the given kind, if present
func (l LineItems) Find(kind LineKind) (LineItem, bool) {
	for _, item := range l {
		if item.Kind == kind {
			return item, true
		}
	}
	return LineItem{}, false
}

// Value implements driver.Valuer for JSONB storage
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan LineItems: unsupported type")
	}
	if len(bytes) == 0 {
		*l = LineItems{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Receipt is one resident's itemized bill for one calendar month. It is
// created in bulk by the monthly generation run and immutable afterwards
// except for the legacy paid flag and administrative edits.
type Receipt struct {
	shared.BaseAggregateRoot
	ResidentID    uuid.UUID            `json:"resident_id"`
	ApartmentID   uuid.UUID            `json:"apartment_id"`
	ResidentName  string               `json:"resident_name"`
	ApartmentName string               `json:"apartment_name"`
	Month         valueobject.MonthKey `json:"month"`
	Lines         LineItems            `json:"lines"`
	Total         decimal.Decimal      `json:"total"`
	SubTotal      decimal.Decimal      `json:"sub_total"` // total minus rent
	Paid          bool                 `json:"paid"`      // legacy flag, authoritative only before the cutoff
}

// newReceipt assembles a receipt from its line items and derives the totals
func newReceipt(residentID, apartmentID uuid.UUID, residentName, apartmentName string, month valueobject.MonthKey, lines LineItems) *Receipt {
	total := lines.Sum()
	rent := decimal.Zero
	if item, ok := lines.Find(LineRent); ok {
		rent = item.Amount.Round(0)
	}
	return &Receipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ResidentID:        residentID,
		ApartmentID:       apartmentID,
		ResidentName:      residentName,
		ApartmentName:     apartmentName,
		Month:             month,
		Lines:             lines,
		Total:             total,
		SubTotal:          total.Sub(rent),
	}
}

// Eligible reports whether this receipt participates in dynamic payment
// tracking (month on or after the cutoff)
func (r *Receipt) Eligible() bool {
	return r.Month.Eligible()
}

// MarkPaid sets the legacy paid flag
func (r *Receipt) MarkPaid() {
	r.Paid = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// MarkUnpaid clears the legacy paid flag, used when a covering payment is deleted
func (r *Receipt) MarkUnpaid() {
	r.Paid = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
