package property

import (
	"context"
	"errors"
	"strings"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ResidentService handles resident account management
type ResidentService struct {
	residentRepo  property.ResidentRepository
	apartmentRepo property.ApartmentRepository
}

// NewResidentService creates a new ResidentService
func NewResidentService(residentRepo property.ResidentRepository, apartmentRepo property.ApartmentRepository) *ResidentService {
	return &ResidentService{
		residentRepo:  residentRepo,
		apartmentRepo: apartmentRepo,
	}
}

// Create creates a new resident account
func (s *ResidentService) Create(ctx context.Context, req CreateResidentRequest) (*ResidentResponse, error) {
	if _, err := s.residentRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A resident with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	role := property.RoleResident
	if req.Role != "" {
		role = property.Role(req.Role)
	}

	resident, err := property.NewResident(req.Name, req.Email, role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	resident.PasswordHash = string(hash)

	if len(req.Services) > 0 {
		if err := resident.SetServices(toServices(req.Services)); err != nil {
			return nil, err
		}
	}

	if err := s.residentRepo.Save(ctx, resident); err != nil {
		return nil, err
	}
	return ToResidentResponse(resident), nil
}

// Get returns one resident
func (s *ResidentService) Get(ctx context.Context, id uuid.UUID) (*ResidentResponse, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToResidentResponse(resident), nil
}

// List returns all residents
func (s *ResidentService) List(ctx context.Context) ([]ResidentResponse, error) {
	residents, err := s.residentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ResidentResponse, len(residents))
	for i := range residents {
		responses[i] = *ToResidentResponse(&residents[i])
	}
	return responses, nil
}

// Update applies a partial update to a resident
func (s *ResidentService) Update(ctx context.Context, id uuid.UUID, req UpdateResidentRequest) (*ResidentResponse, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_RESIDENT_NAME", "Resident name cannot be empty")
		}
		resident.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != resident.Email {
			if _, err := s.residentRepo.FindByEmail(ctx, email); err == nil {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "A resident with this email already exists")
			} else if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			resident.Email = email
		}
	}
	if req.Services != nil {
		if err := resident.SetServices(toServices(*req.Services)); err != nil {
			return nil, err
		}
	}
	resident.IncrementVersion()

	if err := s.residentRepo.Save(ctx, resident); err != nil {
		return nil, err
	}
	return ToResidentResponse(resident), nil
}

// Delete removes a resident account and vacates their apartment
func (s *ResidentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.residentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	apartment, err := s.apartmentRepo.FindByResident(ctx, id)
	if err == nil {
		apartment.ClearResident()
		if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
			return err
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	return s.residentRepo.Delete(ctx, id)
}

func toServices(names []string) property.Services {
	services := make(property.Services, len(names))
	for i, n := range names {
		services[i] = property.Service(n)
	}
	return services
}
