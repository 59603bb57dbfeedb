package persistence

import (
	"context"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/edificio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLaundryRepository implements LaundryRepository using GORM
type GormLaundryRepository struct {
	db *gorm.DB
}

// NewGormLaundryRepository creates a new GormLaundryRepository
func NewGormLaundryRepository(db *gorm.DB) *GormLaundryRepository {
	return &GormLaundryRepository{db: db}
}

// FindByResidentAndMonth returns one resident's laundry log for a month
func (r *GormLaundryRepository) FindByResidentAndMonth(ctx context.Context, residentID uuid.UUID, month valueobject.MonthKey) ([]billing.LaundryEntry, error) {
	var entryModels []models.LaundryEntryModel
	if err := r.db.WithContext(ctx).
		Where("resident_id = ? AND month = ?", residentID, month).
		Order("logged_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainLaundryEntries(entryModels), nil
}

// FindByMonth returns the whole building's laundry log for a month
func (r *GormLaundryRepository) FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]billing.LaundryEntry, error) {
	var entryModels []models.LaundryEntryModel
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("logged_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainLaundryEntries(entryModels), nil
}

// Save creates or updates a laundry entry
func (r *GormLaundryRepository) Save(ctx context.Context, entry *billing.LaundryEntry) error {
	model := models.LaundryEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a laundry entry
func (r *GormLaundryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LaundryEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainLaundryEntries(entryModels []models.LaundryEntryModel) []billing.LaundryEntry {
	entries := make([]billing.LaundryEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries
}
