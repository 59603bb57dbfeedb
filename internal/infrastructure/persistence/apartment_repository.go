package persistence

import (
	"context"
	"errors"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApartmentRepository implements ApartmentRepository using GORM
type GormApartmentRepository struct {
	db *gorm.DB
}

// NewGormApartmentRepository creates a new GormApartmentRepository
func NewGormApartmentRepository(db *gorm.DB) *GormApartmentRepository {
	return &GormApartmentRepository{db: db}
}

// FindByID finds an apartment by its ID
func (r *GormApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Apartment, error) {
	var model models.ApartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByResident finds the apartment currently assigned to a resident
func (r *GormApartmentRepository) FindByResident(ctx context.Context, residentID uuid.UUID) (*property.Apartment, error) {
	var model models.ApartmentModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all apartments ordered by name
func (r *GormApartmentRepository) FindAll(ctx context.Context) ([]property.Apartment, error) {
	var apartmentModels []models.ApartmentModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&apartmentModels).Error; err != nil {
		return nil, err
	}

	apartments := make([]property.Apartment, len(apartmentModels))
	for i, model := range apartmentModels {
		apartments[i] = *model.ToDomain()
	}
	return apartments, nil
}

// Save creates or updates an apartment
func (r *GormApartmentRepository) Save(ctx context.Context, apartment *property.Apartment) error {
	model := models.ApartmentModelFromDomain(apartment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an apartment
func (r *GormApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ApartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
