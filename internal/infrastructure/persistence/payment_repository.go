package persistence

import (
	"context"
	"errors"

	"github.com/edificio/backend/internal/domain/payment"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements payment.Repository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByResident returns all payments of a resident, newest first
func (r *GormPaymentRepository) FindByResident(ctx context.Context, residentID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// FindByResidentAndMonth returns a resident's payments targeting one receipt month
func (r *GormPaymentRepository) FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ? AND receipt_month = ?", residentID, month).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// FindAll returns payments matching the filter, newest first
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter payment.Filter) ([]payment.Payment, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.Month != nil {
		query = query.Where("receipt_month = ?", *filter.Month)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var paymentModels []models.PaymentModel
	if err := query.Order("created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := models.PaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a payment record. Deleting is the only way out of a
// terminal review status.
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainPayments(paymentModels []models.PaymentModel) []payment.Payment {
	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments
}
