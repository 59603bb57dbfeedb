package billing

import (
	"context"
	"testing"

	"github.com/edificio/backend/internal/domain/billing"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLaundryService_Log(t *testing.T) {
	mockLaundry := new(MockLaundryRepository)
	mockResidents := new(MockResidentRepository)
	service := NewLaundryService(mockLaundry, mockResidents)

	ctx := context.Background()
	resident, err := property.NewResident("Ana Petrova", "ana@example.com", property.RoleResident)
	require.NoError(t, err)

	mockResidents.On("FindByID", ctx, resident.ID).Return(resident, nil)
	mockLaundry.On("Save", ctx, mock.AnythingOfType("*billing.LaundryEntry")).Return(nil)

	result, err := service.Log(ctx, LogLaundryRequest{
		ResidentID: resident.ID,
		Month:      "08_2025",
		Wash:       2,
		Dry:        1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "08_2025", result.Month)
	assert.Equal(t, 2, result.Wash)
	assert.Equal(t, 1, result.Dry)
	mockLaundry.AssertExpectations(t)
}

func TestLaundryService_Log_UnknownResident(t *testing.T) {
	mockLaundry := new(MockLaundryRepository)
	mockResidents := new(MockResidentRepository)
	service := NewLaundryService(mockLaundry, mockResidents)

	ctx := context.Background()
	missing := uuid.New()

	mockResidents.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

	result, err := service.Log(ctx, LogLaundryRequest{
		ResidentID: missing,
		Month:      "08_2025",
		Wash:       1,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockLaundry.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLaundryService_Log_NoUsage(t *testing.T) {
	mockLaundry := new(MockLaundryRepository)
	mockResidents := new(MockResidentRepository)
	service := NewLaundryService(mockLaundry, mockResidents)

	ctx := context.Background()
	resident, err := property.NewResident("Ana Petrova", "ana@example.com", property.RoleResident)
	require.NoError(t, err)

	mockResidents.On("FindByID", ctx, resident.ID).Return(resident, nil)

	result, err := service.Log(ctx, LogLaundryRequest{
		ResidentID: resident.ID,
		Month:      "08_2025",
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_USAGE", domainErr.Code)
}

func TestLaundryService_Usage(t *testing.T) {
	mockLaundry := new(MockLaundryRepository)
	mockResidents := new(MockResidentRepository)
	service := NewLaundryService(mockLaundry, mockResidents)

	ctx := context.Background()
	residentID := uuid.New()
	month := mustMonth(t, "08_2025")

	first, err := billing.NewLaundryEntry(residentID, month, 3, 0)
	require.NoError(t, err)
	second, err := billing.NewLaundryEntry(residentID, month, 1, 2)
	require.NoError(t, err)

	mockLaundry.On("FindByResidentAndMonth", ctx, residentID, month).
		Return([]billing.LaundryEntry{*first, *second}, nil)

	result, err := service.Usage(ctx, residentID, "08_2025")

	assert.NoError(t, err)
	assert.Equal(t, 4, result.Wash)
	assert.Equal(t, 2, result.Dry)
	assert.True(t, result.WashTotal.Equal(decimal.NewFromInt(24)))
	assert.True(t, result.DryTotal.Equal(decimal.NewFromInt(6)))
	assert.True(t, result.Total.Equal(decimal.NewFromInt(30)))
}

func TestLaundryService_Usage_Empty(t *testing.T) {
	mockLaundry := new(MockLaundryRepository)
	mockResidents := new(MockResidentRepository)
	service := NewLaundryService(mockLaundry, mockResidents)

	ctx := context.Background()
	residentID := uuid.New()
	month := mustMonth(t, "08_2025")

	mockLaundry.On("FindByResidentAndMonth", ctx, residentID, month).
		Return([]billing.LaundryEntry{}, nil)

	result, err := service.Usage(ctx, residentID, "08_2025")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Wash)
	assert.True(t, result.Total.IsZero())
}
