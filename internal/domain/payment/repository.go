package payment

import (
	"context"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Filter narrows payment queries
type Filter struct {
	ResidentID *uuid.UUID
	Month      *valueobject.MonthKey
	Status     *Status
}

// Repository defines persistence operations for payments
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByResident(ctx context.Context, residentID uuid.UUID) ([]Payment, error)
	FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) ([]Payment, error)
	FindAll(ctx context.Context, filter Filter) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
