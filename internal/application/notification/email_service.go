package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/edificio/backend/internal/infrastructure/mail"
	"github.com/edificio/backend/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ObjectStorageService defines the storage operations this service needs
type ObjectStorageService interface {
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

const receiptLinkExpiry = 72 * time.Hour

// EmailService sends receipt and reminder emails through the mail relay
type EmailService struct {
	residentRepo property.ResidentRepository
	receiptRepo  billing.ReceiptRepository
	paymentRepo  payment.Repository
	objectStore  ObjectStorageService
	sender       mail.Sender
	logger       *zap.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(
	residentRepo property.ResidentRepository,
	receiptRepo billing.ReceiptRepository,
	paymentRepo payment.Repository,
	objectStore ObjectStorageService,
	sender mail.Sender,
	logger *zap.Logger,
) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{
		residentRepo: residentRepo,
		receiptRepo:  receiptRepo,
		paymentRepo:  paymentRepo,
		objectStore:  objectStore,
		sender:       sender,
		logger:       logger,
	}
}

// SendReceipt emails a resident their itemized receipt for one month. When
// the rendered PDF is present in object storage the email carries a
// presigned download link.
func (s *EmailService) SendReceipt(ctx context.Context, req SendReceiptEmailRequest) error {
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		return shared.NewDomainError("INVALID_MONTH", "Month must use the MM_YYYY format")
	}

	resident, err := s.residentRepo.FindByID(ctx, req.ResidentID)
	if err != nil {
		return err
	}
	receipt, err := s.receiptRepo.FindByResidentAndMonth(ctx, resident.ID, month)
	if err != nil {
		return err
	}

	data := mail.ReceiptEmailData{
		ResidentName:  receipt.ResidentName,
		ApartmentName: receipt.ApartmentName,
		Month:         month.String(),
		Total:         formatAmount(receipt.Total),
	}
	for _, line := range receipt.Lines {
		data.Lines = append(data.Lines, mail.ReceiptLine{
			Label:  line.Label,
			Amount: formatAmount(line.Amount),
		})
	}

	pdfKey := storage.ReceiptKey(resident.Slug(), resident.ID, month)
	if exists, err := s.objectStore.ObjectExists(ctx, pdfKey); err == nil && exists {
		if url, _, err := s.objectStore.GenerateDownloadURL(ctx, pdfKey, receiptLinkExpiry); err == nil {
			data.DownloadURL = url
		} else {
			s.logger.Warn("Receipt link generation failed", zap.String("key", pdfKey), zap.Error(err))
		}
	}

	body, err := mail.RenderReceiptEmail(data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Receipt for %s", month.String())
	if err := s.sender.Send(resident.Email, subject, body); err != nil {
		s.logger.Error("Receipt email failed",
			zap.String("resident_id", resident.ID.String()),
			zap.String("month", month.String()),
			zap.Error(err))
		return err
	}
	return nil
}

// SendReminders emails every listed resident a summary of their unpaid
// receipts. Residents with nothing due are skipped, and one failing address
// does not abort the run.
func (s *EmailService) SendReminders(ctx context.Context, req SendRemindersRequest) (*SendRemindersResponse, error) {
	result := &SendRemindersResponse{}
	for _, email := range req.Emails {
		sent, err := s.remindOne(ctx, email)
		if err != nil {
			s.logger.Warn("Reminder failed", zap.String("email", email), zap.Error(err))
			result.Failed = append(result.Failed, email)
			continue
		}
		if !sent {
			result.Skipped = append(result.Skipped, email)
			continue
		}
		result.Sent++
	}
	return result, nil
}

func (s *EmailService) remindOne(ctx context.Context, email string) (bool, error) {
	resident, err := s.residentRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	receipts, err := s.receiptRepo.FindByResident(ctx, resident.ID)
	if err != nil {
		return false, err
	}
	payments, err := s.paymentRepo.FindByResident(ctx, resident.ID)
	if err != nil {
		return false, err
	}

	unpaid := billing.UnpaidEligibleReceipts(receipts, payments)
	if len(unpaid) == 0 {
		return false, nil
	}

	data := mail.ReminderEmailData{
		ResidentName: resident.Name,
		TotalDue:     formatAmount(billing.ComputeDebt(receipts, payments)),
	}
	for i := range unpaid {
		data.Months = append(data.Months, unpaid[i].Month.String())
	}

	body, err := mail.RenderReminderEmail(data)
	if err != nil {
		return false, err
	}
	if err := s.sender.Send(resident.Email, "Payment reminder", body); err != nil {
		return false, err
	}
	return true, nil
}

func formatAmount(amount decimal.Decimal) string {
	return valueobject.NewMoneyEUR(amount.Round(0)).String()
}
