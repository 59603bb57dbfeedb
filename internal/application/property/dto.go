package property

import (
	"time"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateApartmentRequest represents a request to create an apartment
type CreateApartmentRequest struct {
	Name                  string           `json:"name" binding:"required,min=1,max=100"`
	Rent                  decimal.Decimal  `json:"rent" binding:"required"`
	WaterPercentage       decimal.Decimal  `json:"water_percentage"`
	ElectricityPercentage decimal.Decimal  `json:"electricity_percentage"`
	Municipality          decimal.Decimal  `json:"municipality"`
	CustomMaintenance     *decimal.Decimal `json:"custom_maintenance"`
	IsGarage              bool             `json:"is_garage"`
	ResidentID            *uuid.UUID       `json:"resident_id"`
}

// UpdateApartmentRequest represents a partial apartment update
type UpdateApartmentRequest struct {
	Name                  *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Rent                  *decimal.Decimal `json:"rent"`
	WaterPercentage       *decimal.Decimal `json:"water_percentage"`
	ElectricityPercentage *decimal.Decimal `json:"electricity_percentage"`
	Municipality          *decimal.Decimal `json:"municipality"`
	CustomMaintenance     *decimal.Decimal `json:"custom_maintenance"`
	ClearCustomMaintenance bool            `json:"clear_custom_maintenance"`
	IsGarage              *bool            `json:"is_garage"`
}

// ApartmentResponse represents an apartment in API responses
type ApartmentResponse struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	Rent                  decimal.Decimal  `json:"rent"`
	WaterPercentage       decimal.Decimal  `json:"water_percentage"`
	ElectricityPercentage decimal.Decimal  `json:"electricity_percentage"`
	Municipality          decimal.Decimal  `json:"municipality"`
	CustomMaintenance     *decimal.Decimal `json:"custom_maintenance,omitempty"`
	IsGarage              bool             `json:"is_garage"`
	ResidentID            *uuid.UUID       `json:"resident_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ToApartmentResponse converts a domain apartment to a response DTO
func ToApartmentResponse(a *property.Apartment) *ApartmentResponse {
	return &ApartmentResponse{
		ID:                    a.ID,
		Name:                  a.Name,
		Rent:                  a.Rent,
		WaterPercentage:       a.WaterPercentage,
		ElectricityPercentage: a.ElectricityPercentage,
		Municipality:          a.Municipality,
		CustomMaintenance:     a.CustomMaintenance,
		IsGarage:              a.IsGarage,
		ResidentID:            a.ResidentID,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// CreateResidentRequest represents a request to create a resident account
type CreateResidentRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=200"`
	Email    string   `json:"email" binding:"required,email,max=320"`
	Password string   `json:"password" binding:"required,min=8,max=72"`
	Role     string   `json:"role" binding:"omitempty,oneof=RESIDENT ADMIN"`
	Services []string `json:"services"`
}

// UpdateResidentRequest represents a partial resident update
type UpdateResidentRequest struct {
	Name     *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string   `json:"email" binding:"omitempty,email,max=320"`
	Services *[]string `json:"services"`
}

// ResidentResponse represents a resident in API responses
type ResidentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Services  []string        `json:"services"`
	Debt      decimal.Decimal `json:"debt"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToResidentResponse converts a domain resident to a response DTO
func ToResidentResponse(r *property.Resident) *ResidentResponse {
	services := make([]string, len(r.Services))
	for i, s := range r.Services {
		services[i] = string(s)
	}
	return &ResidentResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      string(r.Role),
		Services:  services,
		Debt:      r.Debt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// UpdatePricesRequest replaces the building's shared service prices
type UpdatePricesRequest struct {
	Maintenance    decimal.Decimal `json:"maintenance"`
	Administration decimal.Decimal `json:"administration"`
	Internet       decimal.Decimal `json:"internet"`
	Cable          decimal.Decimal `json:"cable"`
	Municipality   decimal.Decimal `json:"municipality"`
}

// PricesResponse represents the price sheet in API responses
type PricesResponse struct {
	Maintenance    decimal.Decimal `json:"maintenance"`
	Administration decimal.Decimal `json:"administration"`
	Internet       decimal.Decimal `json:"internet"`
	Cable          decimal.Decimal `json:"cable"`
	Municipality   decimal.Decimal `json:"municipality"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToPricesResponse converts a domain price sheet to a response DTO
func ToPricesResponse(p *property.ServicePriceSheet) *PricesResponse {
	return &PricesResponse{
		Maintenance:    p.Maintenance,
		Administration: p.Administration,
		Internet:       p.Internet,
		Cable:          p.Cable,
		Municipality:   p.Municipality,
		UpdatedAt:      p.UpdatedAt,
	}
}

// UploadTaxDocumentRequest stores a tax document for a resident. The file
// content arrives as a multipart upload.
type UploadTaxDocumentRequest struct {
	ResidentID  uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// TaxDocumentResponse identifies one stored tax document
type TaxDocumentResponse struct {
	ResidentID uuid.UUID `json:"resident_id"`
	Filename   string    `json:"filename"`
}

// TaxDocumentURLResponse carries a presigned link to a stored document
type TaxDocumentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
