package property

import (
	"context"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApartmentService handles apartment management operations
type ApartmentService struct {
	apartmentRepo property.ApartmentRepository
	residentRepo  property.ResidentRepository
}

// NewApartmentService creates a new ApartmentService
func NewApartmentService(apartmentRepo property.ApartmentRepository, residentRepo property.ResidentRepository) *ApartmentService {
	return &ApartmentService{
		apartmentRepo: apartmentRepo,
		residentRepo:  residentRepo,
	}
}

// Create creates a new apartment
func (s *ApartmentService) Create(ctx context.Context, req CreateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := property.NewApartment(req.Name, req.Rent)
	if err != nil {
		return nil, err
	}

	if err := apartment.SetAllocations(req.WaterPercentage, req.ElectricityPercentage); err != nil {
		return nil, err
	}
	apartment.Municipality = req.Municipality
	apartment.IsGarage = req.IsGarage
	if req.CustomMaintenance != nil {
		apartment.SetCustomMaintenance(req.CustomMaintenance)
	}

	if req.ResidentID != nil {
		if _, err := s.residentRepo.FindByID(ctx, *req.ResidentID); err != nil {
			return nil, err
		}
		if err := apartment.AssignResident(*req.ResidentID); err != nil {
			return nil, err
		}
	}

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}
	return ToApartmentResponse(apartment), nil
}

// Get returns one apartment
func (s *ApartmentService) Get(ctx context.Context, id uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToApartmentResponse(apartment), nil
}

// List returns all apartments
func (s *ApartmentService) List(ctx context.Context) ([]ApartmentResponse, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ApartmentResponse, len(apartments))
	for i := range apartments {
		responses[i] = *ToApartmentResponse(&apartments[i])
	}
	return responses, nil
}

// Update applies a partial update to an apartment
func (s *ApartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_APARTMENT_NAME", "Apartment name cannot be empty")
		}
		apartment.Name = *req.Name
	}
	if req.Rent != nil {
		if req.Rent.IsNegative() {
			return nil, shared.NewDomainError("INVALID_RENT", "Rent cannot be negative")
		}
		apartment.Rent = *req.Rent
	}
	if req.WaterPercentage != nil || req.ElectricityPercentage != nil {
		water := apartment.WaterPercentage
		electricity := apartment.ElectricityPercentage
		if req.WaterPercentage != nil {
			water = *req.WaterPercentage
		}
		if req.ElectricityPercentage != nil {
			electricity = *req.ElectricityPercentage
		}
		if err := apartment.SetAllocations(water, electricity); err != nil {
			return nil, err
		}
	}
	if req.Municipality != nil {
		apartment.Municipality = *req.Municipality
	}
	if req.ClearCustomMaintenance {
		apartment.SetCustomMaintenance(nil)
	} else if req.CustomMaintenance != nil {
		apartment.SetCustomMaintenance(req.CustomMaintenance)
	}
	if req.IsGarage != nil {
		apartment.IsGarage = *req.IsGarage
	}
	apartment.IncrementVersion()

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}
	return ToApartmentResponse(apartment), nil
}

// AssignResident moves a resident into an apartment
func (s *ApartmentService) AssignResident(ctx context.Context, apartmentID, residentID uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.residentRepo.FindByID(ctx, residentID); err != nil {
		return nil, err
	}

	if err := apartment.AssignResident(residentID); err != nil {
		return nil, err
	}
	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}
	return ToApartmentResponse(apartment), nil
}

// Vacate clears the apartment's resident
func (s *ApartmentService) Vacate(ctx context.Context, apartmentID uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}

	apartment.ClearResident()
	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}
	return ToApartmentResponse(apartment), nil
}

// Delete removes an apartment
func (s *ApartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.apartmentRepo.Delete(ctx, id)
}
