package billing

import (
	"context"
	"time"

	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Per-use laundry prices. Fixed rates, not configurable.
var (
	washPrice = decimal.NewFromInt(6)
	dryPrice  = decimal.NewFromInt(3)
)

// LaundryEntry is one logged laundry-room visit
type LaundryEntry struct {
	shared.BaseEntity
	ResidentID uuid.UUID            `json:"resident_id"`
	Month      valueobject.MonthKey `json:"month"`
	Wash       int                  `json:"wash"`
	Dry        int                  `json:"dry"`
	LoggedAt   time.Time            `json:"logged_at"`
}

// NewLaundryEntry records a laundry-room visit
func NewLaundryEntry(residentID uuid.UUID, month valueobject.MonthKey, wash, dry int) (*LaundryEntry, error) {
	if residentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RESIDENT", "Resident ID cannot be empty")
	}
	if month.IsZero() {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month is required")
	}
	if wash < 0 || dry < 0 {
		return nil, shared.NewDomainError("INVALID_USAGE", "Usage counts cannot be negative")
	}
	if wash == 0 && dry == 0 {
		return nil, shared.NewDomainError("INVALID_USAGE", "At least one wash or dry is required")
	}
	return &LaundryEntry{
		BaseEntity: shared.NewBaseEntity(),
		ResidentID: residentID,
		Month:      month,
		Wash:       wash,
		Dry:        dry,
		LoggedAt:   time.Now(),
	}, nil
}

// LaundryUsage is a resident's aggregated laundry use for one month, priced
// at the fixed per-use rates
type LaundryUsage struct {
	Wash      int             `json:"wash"`
	Dry       int             `json:"dry"`
	WashTotal decimal.Decimal `json:"wash_total"`
	DryTotal  decimal.Decimal `json:"dry_total"`
	Total     decimal.Decimal `json:"total"`
}

// CalculateLaundryUsage reduces a month's log entries into priced totals.
// Returns nil when there are no entries: no usage means no laundry line on
// the receipt, which is different from a zero-amount line.
func CalculateLaundryUsage(entries []LaundryEntry, month valueobject.MonthKey) *LaundryUsage {
	wash, dry := 0, 0
	found := false
	for _, e := range entries {
		if !e.Month.Equal(month) {
			continue
		}
		found = true
		wash += e.Wash
		dry += e.Dry
	}
	if !found {
		return nil
	}

	washTotal := washPrice.Mul(decimal.NewFromInt(int64(wash)))
	dryTotal := dryPrice.Mul(decimal.NewFromInt(int64(dry)))
	return &LaundryUsage{
		Wash:      wash,
		Dry:       dry,
		WashTotal: washTotal,
		DryTotal:  dryTotal,
		Total:     washTotal.Add(dryTotal),
	}
}

// LaundryRepository defines persistence operations for the laundry log
type LaundryRepository interface {
	FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) ([]LaundryEntry, error)
	FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]LaundryEntry, error)
	Save(ctx context.Context, entry *LaundryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
