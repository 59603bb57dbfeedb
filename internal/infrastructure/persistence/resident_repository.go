package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormResidentRepository implements ResidentRepository using GORM
type GormResidentRepository struct {
	db *gorm.DB
}

// NewGormResidentRepository creates a new GormResidentRepository
func NewGormResidentRepository(db *gorm.DB) *GormResidentRepository {
	return &GormResidentRepository{db: db}
}

// FindByID finds a resident by its ID
func (r *GormResidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Resident, error) {
	var model models.ResidentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a resident by email
func (r *GormResidentRepository) FindByEmail(ctx context.Context, email string) (*property.Resident, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.ResidentModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all residents ordered by name
func (r *GormResidentRepository) FindAll(ctx context.Context) ([]property.Resident, error) {
	var residentModels []models.ResidentModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&residentModels).Error; err != nil {
		return nil, err
	}

	residents := make([]property.Resident, len(residentModels))
	for i, model := range residentModels {
		residents[i] = *model.ToDomain()
	}
	return residents, nil
}

// Save creates or updates a resident
func (r *GormResidentRepository) Save(ctx context.Context, resident *property.Resident) error {
	model := models.ResidentModelFromDomain(resident)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a resident
func (r *GormResidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ResidentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
