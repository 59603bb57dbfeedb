package billing

import (
	"context"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptService handles receipt generation and retrieval
type ReceiptService struct {
	receiptRepo    billing.ReceiptRepository
	laundryRepo    billing.LaundryRepository
	paymentRepo    payment.Repository
	apartmentRepo  property.ApartmentRepository
	residentRepo   property.ResidentRepository
	priceSheetRepo property.PriceSheetRepository
	logger         *zap.Logger
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	receiptRepo billing.ReceiptRepository,
	laundryRepo billing.LaundryRepository,
	paymentRepo payment.Repository,
	apartmentRepo property.ApartmentRepository,
	residentRepo property.ResidentRepository,
	priceSheetRepo property.PriceSheetRepository,
	logger *zap.Logger,
) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{
		receiptRepo:    receiptRepo,
		laundryRepo:    laundryRepo,
		paymentRepo:    paymentRepo,
		apartmentRepo:  apartmentRepo,
		residentRepo:   residentRepo,
		priceSheetRepo: priceSheetRepo,
		logger:         logger,
	}
}

// GenerateMonth runs receipt generation for every apartment in the building.
// Vacant apartments and residents who already have a receipt for the month
// are skipped; individual failures do not abort the run.
func (s *ReceiptService) GenerateMonth(ctx context.Context, req GenerateReceiptsRequest) (*GenerateReceiptsResponse, error) {
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}

	prices, err := s.priceSheetRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	apartments, err := s.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &GenerateReceiptsResponse{Month: month.String()}
	for i := range apartments {
		apartment := &apartments[i]
		if apartment.IsVacant() {
			summary.SkippedVacant++
			continue
		}

		exists, err := s.receiptRepo.ExistsByResidentAndMonth(ctx, *apartment.ResidentID, month)
		if err != nil {
			s.logger.Error("Receipt existence check failed",
				zap.String("apartment", apartment.Name), zap.Error(err))
			summary.Failed = append(summary.Failed, apartment.Name)
			continue
		}
		if exists {
			summary.SkippedExisting++
			continue
		}

		if err := s.generateOne(ctx, apartment, prices, month, req); err != nil {
			s.logger.Error("Receipt generation failed",
				zap.String("apartment", apartment.Name),
				zap.String("month", month.String()),
				zap.Error(err))
			summary.Failed = append(summary.Failed, apartment.Name)
			continue
		}
		summary.Generated++
	}

	s.logger.Info("Receipt generation run finished",
		zap.String("month", month.String()),
		zap.Int("generated", summary.Generated),
		zap.Int("skipped_vacant", summary.SkippedVacant),
		zap.Int("skipped_existing", summary.SkippedExisting),
		zap.Int("failed", len(summary.Failed)))
	return summary, nil
}

func (s *ReceiptService) generateOne(ctx context.Context, apartment *property.Apartment, prices *property.ServicePriceSheet, month valueobject.MonthKey, req GenerateReceiptsRequest) error {
	resident, err := s.residentRepo.FindByID(ctx, *apartment.ResidentID)
	if err != nil {
		return err
	}

	entries, err := s.laundryRepo.FindByResidentAndMonth(ctx, resident.ID, month)
	if err != nil {
		return err
	}

	receipt, err := billing.GenerateReceipt(apartment, resident, prices, billing.BillInput{
		Month:            month,
		WaterBillTotal:   req.WaterBillTotal,
		ElectricityTotal: req.ElectricityTotal,
		Laundry:          billing.CalculateLaundryUsage(entries, month),
	})
	if err != nil {
		return err
	}
	if receipt == nil {
		return nil
	}
	return s.receiptRepo.Save(ctx, receipt)
}

// Get returns one receipt with its derived payment state
func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByResidentAndMonth(ctx, receipt.ResidentID, receipt.Month)
	if err != nil {
		return nil, err
	}
	return ToReceiptResponse(receipt, payments), nil
}

// ListByResident returns a resident's receipts, newest month first
func (s *ReceiptService) ListByResident(ctx context.Context, residentID uuid.UUID) ([]ReceiptResponse, error) {
	receipts, err := s.receiptRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts, payments), nil
}

// ListByMonth returns every receipt generated for a month
func (s *ReceiptService) ListByMonth(ctx context.Context, monthKey string) ([]ReceiptResponse, error) {
	month, err := valueobject.ParseMonthKey(monthKey)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	receipts, err := s.receiptRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	responses := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		payments, err := s.paymentRepo.FindByResidentAndMonth(ctx, receipts[i].ResidentID, month)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *ToReceiptResponse(&receipts[i], payments))
	}
	return responses, nil
}

// ListPayable returns the resident's receipts still awaiting a covering
// payment: eligible months only, excluding paid and pending ones
func (s *ReceiptService) ListPayable(ctx context.Context, residentID uuid.UUID) ([]ReceiptResponse, error) {
	receipts, err := s.receiptRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(billing.UnpaidEligibleReceipts(receipts, payments), payments), nil
}

// Delete removes a receipt
func (s *ReceiptService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.receiptRepo.Delete(ctx, id)
}

func toReceiptResponses(receipts []billing.Receipt, payments []payment.Payment) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = *ToReceiptResponse(&receipts[i], payments)
	}
	return responses
}
