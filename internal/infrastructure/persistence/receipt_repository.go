package persistence

import (
	"context"
	"errors"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// FindByID finds a receipt by its ID
func (r *GormReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByResidentAndMonth finds one resident's receipt for a month
func (r *GormReceiptRepository) FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) (*billing.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ? AND month = ?", residentID, month).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByResident returns all receipts of a resident, newest month first
func (r *GormReceiptRepository) FindByResident(ctx context.Context, residentID uuid.UUID) ([]billing.Receipt, error) {
	var receiptModels []models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("substring(month from 4 for 4) DESC, substring(month from 1 for 2) DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, err
	}
	return toDomainReceipts(receiptModels), nil
}

// FindByMonth returns all receipts generated for a month
func (r *GormReceiptRepository) FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]billing.Receipt, error) {
	var receiptModels []models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("apartment_name ASC").
		Find(&receiptModels).Error; err != nil {
		return nil, err
	}
	return toDomainReceipts(receiptModels), nil
}

// ExistsByResidentAndMonth reports whether a receipt already exists
func (r *GormReceiptRepository) ExistsByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReceiptModel{}).
		Where("resident_id = ? AND month = ?", residentID, month).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a receipt
func (r *GormReceiptRepository) Save(ctx context.Context, receipt *billing.Receipt) error {
	model := models.ReceiptModelFromDomain(receipt)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a receipt
func (r *GormReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ReceiptModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainReceipts(receiptModels []models.ReceiptModel) []billing.Receipt {
	receipts := make([]billing.Receipt, len(receiptModels))
	for i, model := range receiptModels {
		receipts[i] = *model.ToDomain()
	}
	return receipts
}
