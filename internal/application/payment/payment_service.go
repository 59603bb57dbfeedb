package payment

import (
	"context"
	"time"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/edificio/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ObjectStorageService defines the storage operations this service needs.
// Implemented by the infrastructure layer.
type ObjectStorageService interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
}

// DebtCache is a transient cache for derived debt values. The database stays
// authoritative; implementations may lose entries at any time.
type DebtCache interface {
	Get(ctx context.Context, residentID uuid.UUID) (decimal.Decimal, bool, error)
	Set(ctx context.Context, residentID uuid.UUID, debt decimal.Decimal) error
	Invalidate(ctx context.Context, residentID uuid.UUID) error
}

const voucherURLExpiry = 15 * time.Minute

// PaymentService handles voucher submission, review and derived debt
type PaymentService struct {
	paymentRepo  payment.Repository
	receiptRepo  billing.ReceiptRepository
	residentRepo property.ResidentRepository
	objectStore  ObjectStorageService
	debtCache    DebtCache
	logger       *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo payment.Repository,
	receiptRepo billing.ReceiptRepository,
	residentRepo property.ResidentRepository,
	objectStore ObjectStorageService,
	debtCache DebtCache,
	logger *zap.Logger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		paymentRepo:  paymentRepo,
		receiptRepo:  receiptRepo,
		residentRepo: residentRepo,
		objectStore:  objectStore,
		debtCache:    debtCache,
		logger:       logger,
	}
}

// SubmitVoucher registers a pending payment from a resident's voucher upload.
// The target receipt must exist, be cutoff-eligible and still awaiting
// payment; the owed amount is copied from the receipt at submission time.
func (s *PaymentService) SubmitVoucher(ctx context.Context, req SubmitVoucherRequest) (*PaymentResponse, error) {
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	if len(req.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_VOUCHER", "Voucher file is required")
	}

	receipt, err := s.receiptRepo.FindByResidentAndMonth(ctx, req.ResidentID, month)
	if err != nil {
		return nil, err
	}
	if !receipt.Eligible() {
		return nil, shared.NewDomainError("RECEIPT_NOT_PAYABLE", "Receipts before the tracking cutoff cannot be paid")
	}

	existing, err := s.paymentRepo.FindByResidentAndMonth(ctx, req.ResidentID, month)
	if err != nil {
		return nil, err
	}
	switch billing.ReceiptPaymentStatus(receipt, existing) {
	case billing.StatePaid:
		return nil, shared.NewDomainError("RECEIPT_NOT_PAYABLE", "Receipt is already paid")
	case billing.StatePending:
		return nil, shared.NewDomainError("RECEIPT_NOT_PAYABLE", "A payment for this receipt is already awaiting review")
	}

	voucherKey := storage.VoucherKey(req.ResidentID, month, req.Filename)
	if err := s.objectStore.Upload(ctx, voucherKey, req.Data, req.ContentType); err != nil {
		return nil, err
	}

	p, err := payment.NewVoucherPayment(req.ResidentID, month, receipt.Total, req.AmountPaid, voucherKey)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Voucher payment submitted",
		zap.String("resident_id", req.ResidentID.String()),
		zap.String("month", month.String()),
		zap.String("amount", req.AmountPaid.String()))
	return ToPaymentResponse(p), nil
}

// RecordManual records an administrator-entered payment, approved on the spot
func (s *PaymentService) RecordManual(ctx context.Context, req ManualPaymentRequest) (*PaymentResponse, error) {
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}
	receipt, err := s.receiptRepo.FindByResidentAndMonth(ctx, req.ResidentID, month)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewManualPayment(req.ResidentID, month, receipt.Total, req.AmountPaid, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, req.ResidentID, month); err != nil {
		return nil, err
	}
	return ToPaymentResponse(p), nil
}

// Approve transitions a pending payment to APPROVED and recomputes the
// resident's derived debt
func (s *PaymentService) Approve(ctx context.Context, id uuid.UUID, req ReviewRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Approve(req.Notes); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, p.ResidentID, p.ReceiptMonth); err != nil {
		return nil, err
	}
	return ToPaymentResponse(p), nil
}

// Decline transitions a pending payment to DECLINED. The debt is unchanged
// since pending amounts never counted as credit, but the cache is dropped so
// readers see the fresh state.
func (s *PaymentService) Decline(ctx context.Context, id uuid.UUID, req ReviewRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Decline(req.Notes); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	if s.debtCache != nil {
		if err := s.debtCache.Invalidate(ctx, p.ResidentID); err != nil {
			s.logger.Warn("Debt cache invalidation failed", zap.Error(err))
		}
	}
	return ToPaymentResponse(p), nil
}

// BulkApprove approves a batch of pending payments. Individual failures do
// not abort the batch.
func (s *PaymentService) BulkApprove(ctx context.Context, req BulkApproveRequest) (*BulkApproveResponse, error) {
	result := &BulkApproveResponse{}
	for _, id := range req.PaymentIDs {
		if _, err := s.Approve(ctx, id, ReviewRequest{Notes: req.Notes}); err != nil {
			s.logger.Warn("Bulk approval item failed",
				zap.String("payment_id", id.String()), zap.Error(err))
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Approved++
	}
	return result, nil
}

// Delete removes a payment record. Deletion is the only exit from a terminal
// review status; the resident's debt and the receipt's paid flag are
// recomputed as if the payment never existed.
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if p.VoucherKey != "" {
		if err := s.objectStore.DeleteObject(ctx, p.VoucherKey); err != nil {
			s.logger.Warn("Voucher object cleanup failed",
				zap.String("key", p.VoucherKey), zap.Error(err))
		}
	}
	return s.reconcile(ctx, p.ResidentID, p.ReceiptMonth)
}

// Get returns one payment
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponse(p), nil
}

// List returns payments matching the filter, for the admin review queue
func (s *PaymentService) List(ctx context.Context, req ListPaymentsRequest) ([]PaymentResponse, error) {
	filter := payment.Filter{ResidentID: req.ResidentID}
	if req.Month != nil {
		month, err := valueobject.ParseMonthKey(*req.Month)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
		}
		filter.Month = &month
	}
	if req.Status != nil {
		status := payment.Status(*req.Status)
		filter.Status = &status
	}

	payments, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *ToPaymentResponse(&payments[i])
	}
	return responses, nil
}

// ListByResident returns a resident's own payment history
func (s *PaymentService) ListByResident(ctx context.Context, residentID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *ToPaymentResponse(&payments[i])
	}
	return responses, nil
}

// VoucherURL returns a presigned download link for a payment's voucher
func (s *PaymentService) VoucherURL(ctx context.Context, id uuid.UUID) (*VoucherURLResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.VoucherKey == "" {
		return nil, shared.NewDomainError("NO_VOUCHER", "Payment has no voucher attached")
	}
	url, expiresAt, err := s.objectStore.GenerateDownloadURL(ctx, p.VoucherKey, voucherURLExpiry)
	if err != nil {
		return nil, err
	}
	return &VoucherURLResponse{URL: url, ExpiresAt: expiresAt}, nil
}

// Debt returns a resident's outstanding balance, from the cache when warm
func (s *PaymentService) Debt(ctx context.Context, residentID uuid.UUID) (*DebtResponse, error) {
	if s.debtCache != nil {
		if debt, ok, err := s.debtCache.Get(ctx, residentID); err == nil && ok {
			return &DebtResponse{ResidentID: residentID, Debt: debt}, nil
		}
	}

	debt, err := s.computeDebt(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if s.debtCache != nil {
		if err := s.debtCache.Set(ctx, residentID, debt); err != nil {
			s.logger.Warn("Debt cache write failed", zap.Error(err))
		}
	}
	return &DebtResponse{ResidentID: residentID, Debt: debt}, nil
}

// reconcile recomputes the resident's derived debt and the affected
// receipt's paid flag after a payment mutation. Last writer wins; there is
// no cross-record transaction around this by accepted tradeoff.
func (s *PaymentService) reconcile(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) error {
	receipts, err := s.receiptRepo.FindByResident(ctx, residentID)
	if err != nil {
		return err
	}
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return err
	}

	resident, err := s.residentRepo.FindByID(ctx, residentID)
	if err != nil {
		return err
	}
	resident.SetDebt(billing.ComputeDebt(receipts, payments))
	if err := s.residentRepo.Save(ctx, resident); err != nil {
		return err
	}

	for i := range receipts {
		r := &receipts[i]
		if !r.Month.Equal(month) {
			continue
		}
		paid := billing.ReceiptPaymentStatus(r, payments).IsPaid()
		if paid == r.Paid {
			break
		}
		if paid {
			r.MarkPaid()
		} else {
			r.MarkUnpaid()
		}
		if err := s.receiptRepo.Save(ctx, r); err != nil {
			return err
		}
		break
	}

	if s.debtCache != nil {
		if err := s.debtCache.Invalidate(ctx, residentID); err != nil {
			s.logger.Warn("Debt cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func (s *PaymentService) computeDebt(ctx context.Context, residentID uuid.UUID) (decimal.Decimal, error) {
	receipts, err := s.receiptRepo.FindByResident(ctx, residentID)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return decimal.Zero, err
	}
	return billing.ComputeDebt(receipts, payments), nil
}
