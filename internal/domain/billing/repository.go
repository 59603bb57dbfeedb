package billing

import (
	"context"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ReceiptRepository defines persistence operations for receipts
type ReceiptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Receipt, error)
	FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) (*Receipt, error)
	FindByResident(ctx context.Context, residentID uuid.UUID) ([]Receipt, error)
	FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]Receipt, error)
	ExistsByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) (bool, error)
	Save(ctx context.Context, receipt *Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
}
