package property

import (
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Apartment represents one billable unit of the building. Garages are
// apartments with the garage flag set; they are exempt from maintenance and
// administration charges.
type Apartment struct {
	shared.BaseAggregateRoot
	Name                  string           `json:"name"`
	Rent                  decimal.Decimal  `json:"rent"`
	WaterPercentage       decimal.Decimal  `json:"water_percentage"`       // share of the building water bill, 0-100
	ElectricityPercentage decimal.Decimal  `json:"electricity_percentage"` // share of the building electricity bill, 0-100
	Municipality          decimal.Decimal  `json:"municipality"`           // municipal tax for this unit
	CustomMaintenance     *decimal.Decimal `json:"custom_maintenance,omitempty"`
	IsGarage              bool             `json:"is_garage"`
	ResidentID            *uuid.UUID       `json:"resident_id,omitempty"` // current resident, nil when vacant
}

// NewApartment creates a new apartment
func NewApartment(name string, rent decimal.Decimal) (*Apartment, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_APARTMENT_NAME", "Apartment name cannot be empty")
	}
	if rent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RENT", "Rent cannot be negative")
	}
	return &Apartment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Rent:              rent,
	}, nil
}

// IsVacant returns true when no resident is assigned
func (a *Apartment) IsVacant() bool {
	return a.ResidentID == nil
}

// AssignResident sets the current resident
func (a *Apartment) AssignResident(residentID uuid.UUID) error {
	if residentID == uuid.Nil {
		return shared.NewDomainError("INVALID_RESIDENT", "Resident ID cannot be empty")
	}
	if a.ResidentID != nil && *a.ResidentID != residentID {
		return shared.NewDomainError("APARTMENT_OCCUPIED", "Apartment already has a resident")
	}
	a.ResidentID = &residentID
	a.IncrementVersion()
	return nil
}

// ClearResident marks the apartment as vacant
func (a *Apartment) ClearResident() {
	a.ResidentID = nil
	a.IncrementVersion()
}

// SetAllocations updates the metered-utility percentages
func (a *Apartment) SetAllocations(water, electricity decimal.Decimal) error {
	hundred := decimal.NewFromInt(100)
	if water.IsNegative() || water.GreaterThan(hundred) {
		return shared.NewDomainError("INVALID_ALLOCATION", "Water percentage must be between 0 and 100")
	}
	if electricity.IsNegative() || electricity.GreaterThan(hundred) {
		return shared.NewDomainError("INVALID_ALLOCATION", "Electricity percentage must be between 0 and 100")
	}
	a.WaterPercentage = water
	a.ElectricityPercentage = electricity
	a.IncrementVersion()
	return nil
}

// SetCustomMaintenance overrides the shared maintenance price for this unit
func (a *Apartment) SetCustomMaintenance(amount *decimal.Decimal) {
	a.CustomMaintenance = amount
	a.IncrementVersion()
}
