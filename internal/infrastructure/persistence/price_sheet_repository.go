package persistence

import (
	"context"
	"errors"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPriceSheetRepository implements PriceSheetRepository using GORM. The
// underlying table holds a single row that is created on first access.
type GormPriceSheetRepository struct {
	db *gorm.DB
}

// NewGormPriceSheetRepository creates a new GormPriceSheetRepository
func NewGormPriceSheetRepository(db *gorm.DB) *GormPriceSheetRepository {
	return &GormPriceSheetRepository{db: db}
}

// Get returns the building's price sheet, creating an all-zero record when
// none exists yet
func (r *GormPriceSheetRepository) Get(ctx context.Context) (*property.ServicePriceSheet, error) {
	var model models.ServicePriceSheetModel
	err := r.db.WithContext(ctx).First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sheet := property.NewServicePriceSheet()
	seed := models.ServicePriceSheetModelFromDomain(sheet)
	if err := r.db.WithContext(ctx).Create(seed).Error; err != nil {
		return nil, err
	}
	return sheet, nil
}

// Save updates the price sheet record
func (r *GormPriceSheetRepository) Save(ctx context.Context, sheet *property.ServicePriceSheet) error {
	model := models.ServicePriceSheetModelFromDomain(sheet)
	return r.db.WithContext(ctx).Save(model).Error
}
