package billing

import (
	"context"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// LaundryService manages the laundry-room usage log
type LaundryService struct {
	laundryRepo  billing.LaundryRepository
	residentRepo property.ResidentRepository
}

// NewLaundryService creates a new LaundryService
func NewLaundryService(laundryRepo billing.LaundryRepository, residentRepo property.ResidentRepository) *LaundryService {
	return &LaundryService{
		laundryRepo:  laundryRepo,
		residentRepo: residentRepo,
	}
}

// Log appends a laundry-room visit to the month's log
func (s *LaundryService) Log(ctx context.Context, req LogLaundryRequest) (*LaundryEntryResponse, error) {
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	if _, err := s.residentRepo.FindByID(ctx, req.ResidentID); err != nil {
		return nil, err
	}

	entry, err := billing.NewLaundryEntry(req.ResidentID, month, req.Wash, req.Dry)
	if err != nil {
		return nil, err
	}
	if err := s.laundryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return ToLaundryEntryResponse(entry), nil
}

// ListByResident returns one resident's entries for a month
func (s *LaundryService) ListByResident(ctx context.Context, residentID uuid.UUID, monthKey string) ([]LaundryEntryResponse, error) {
	month, err := valueobject.ParseMonthKey(monthKey)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	entries, err := s.laundryRepo.FindByResidentAndMonth(ctx, residentID, month)
	if err != nil {
		return nil, err
	}
	return toLaundryEntryResponses(entries), nil
}

// ListByMonth returns the whole building's entries for a month
func (s *LaundryService) ListByMonth(ctx context.Context, monthKey string) ([]LaundryEntryResponse, error) {
	month, err := valueobject.ParseMonthKey(monthKey)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	entries, err := s.laundryRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return toLaundryEntryResponses(entries), nil
}

// Usage returns a resident's priced aggregate for a month, or nil amounts
// when nothing was logged
func (s *LaundryService) Usage(ctx context.Context, residentID uuid.UUID, monthKey string) (*LaundryUsageResponse, error) {
	month, err := valueobject.ParseMonthKey(monthKey)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	entries, err := s.laundryRepo.FindByResidentAndMonth(ctx, residentID, month)
	if err != nil {
		return nil, err
	}

	resp := &LaundryUsageResponse{ResidentID: residentID, Month: month.String()}
	if usage := billing.CalculateLaundryUsage(entries, month); usage != nil {
		resp.Wash = usage.Wash
		resp.Dry = usage.Dry
		resp.WashTotal = usage.WashTotal
		resp.DryTotal = usage.DryTotal
		resp.Total = usage.Total
	}
	return resp, nil
}

// Delete removes one log entry
func (s *LaundryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.laundryRepo.Delete(ctx, id)
}

func toLaundryEntryResponses(entries []billing.LaundryEntry) []LaundryEntryResponse {
	responses := make([]LaundryEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *ToLaundryEntryResponse(&entries[i])
	}
	return responses
}
