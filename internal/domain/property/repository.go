package property

import (
	"context"

	"github.com/google/uuid"
)

// ApartmentRepository defines persistence operations for apartments
type ApartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error)
	FindAll(ctx context.Context) ([]Apartment, error)
	FindByResident(ctx context.Context, residentID uuid.UUID) (*Apartment, error)
	Save(ctx context.Context, apartment *Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResidentRepository defines persistence operations for resident accounts
type ResidentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Resident, error)
	FindByEmail(ctx context.Context, email string) (*Resident, error)
	FindAll(ctx context.Context) ([]Resident, error)
	Save(ctx context.Context, resident *Resident) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceSheetRepository persists the single shared service price record
type PriceSheetRepository interface {
	Get(ctx context.Context) (*ServicePriceSheet, error)
	Save(ctx context.Context, sheet *ServicePriceSheet) error
}
