package property

import (
	"context"

	"github.com/edificio/backend/internal/domain/property"
)

// PriceService manages the building-wide service price sheet
type PriceService struct {
	priceSheetRepo property.PriceSheetRepository
}

// NewPriceService creates a new PriceService
func NewPriceService(priceSheetRepo property.PriceSheetRepository) *PriceService {
	return &PriceService{priceSheetRepo: priceSheetRepo}
}

// Get returns the current price sheet
func (s *PriceService) Get(ctx context.Context) (*PricesResponse, error) {
	sheet, err := s.priceSheetRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ToPricesResponse(sheet), nil
}

// Update replaces the price sheet values
func (s *PriceService) Update(ctx context.Context, req UpdatePricesRequest) (*PricesResponse, error) {
	sheet, err := s.priceSheetRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := sheet.Update(req.Maintenance, req.Administration, req.Internet, req.Cable, req.Municipality); err != nil {
		return nil, err
	}
	if err := s.priceSheetRepo.Save(ctx, sheet); err != nil {
		return nil, err
	}
	return ToPricesResponse(sheet), nil
}
