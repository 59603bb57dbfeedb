package property

import (
	"context"
	"testing"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockApartmentRepository is a mock implementation of ApartmentRepository
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindAll(ctx context.Context) ([]property.Apartment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindByResident(ctx context.Context, residentID uuid.UUID) (*property.Apartment, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) Save(ctx context.Context, apartment *property.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResidentRepository is a mock implementation of ResidentRepository
type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindByEmail(ctx context.Context, email string) (*property.Resident, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindAll(ctx context.Context) ([]property.Resident, error) {
	args := m.Called(ctx)
	return args.Get(0).([]property.Resident), args.Error(1)
}

func (m *MockResidentRepository) Save(ctx context.Context, resident *property.Resident) error {
	args := m.Called(ctx, resident)
	return args.Error(0)
}

func (m *MockResidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func createTestApartment(t *testing.T) *property.Apartment {
	t.Helper()
	apartment, err := property.NewApartment("2A", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("creating apartment: %v", err)
	}
	return apartment
}

func createTestResident(t *testing.T) *property.Resident {
	t.Helper()
	resident, err := property.NewResident("Ana Petrova", "ana@example.com", property.RoleResident)
	if err != nil {
		t.Fatalf("creating resident: %v", err)
	}
	return resident
}

func TestApartmentService_Create_Success(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	req := CreateApartmentRequest{
		Name:                  "3B",
		Rent:                  decimal.NewFromInt(450),
		WaterPercentage:       decimal.NewFromFloat(12.5),
		ElectricityPercentage: decimal.NewFromFloat(10),
		Municipality:          decimal.NewFromInt(40),
	}

	mockApartmentRepo.On("Save", ctx, mock.AnythingOfType("*property.Apartment")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "3B", result.Name)
	assert.True(t, result.Rent.Equal(decimal.NewFromInt(450)))
	assert.True(t, result.WaterPercentage.Equal(decimal.NewFromFloat(12.5)))
	assert.False(t, result.IsGarage)
	assert.Nil(t, result.ResidentID)
	mockApartmentRepo.AssertExpectations(t)
}

func TestApartmentService_Create_WithResident(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	resident := createTestResident(t)
	req := CreateApartmentRequest{
		Name:       "4C",
		Rent:       decimal.NewFromInt(500),
		ResidentID: &resident.ID,
	}

	mockResidentRepo.On("FindByID", ctx, resident.ID).Return(resident, nil)
	mockApartmentRepo.On("Save", ctx, mock.AnythingOfType("*property.Apartment")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result.ResidentID)
	assert.Equal(t, resident.ID, *result.ResidentID)
	mockApartmentRepo.AssertExpectations(t)
	mockResidentRepo.AssertExpectations(t)
}

func TestApartmentService_Create_UnknownResident(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	missing := uuid.New()
	req := CreateApartmentRequest{
		Name:       "5A",
		Rent:       decimal.NewFromInt(500),
		ResidentID: &missing,
	}

	mockResidentRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockApartmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApartmentService_Create_InvalidAllocation(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	req := CreateApartmentRequest{
		Name:            "6A",
		Rent:            decimal.NewFromInt(500),
		WaterPercentage: decimal.NewFromInt(120),
	}

	result, err := service.Create(context.Background(), req)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestApartmentService_Update_PartialFields(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	apartment := createTestApartment(t)
	newRent := decimal.NewFromInt(550)

	mockApartmentRepo.On("FindByID", ctx, apartment.ID).Return(apartment, nil)
	mockApartmentRepo.On("Save", ctx, apartment).Return(nil)

	result, err := service.Update(ctx, apartment.ID, UpdateApartmentRequest{Rent: &newRent})

	assert.NoError(t, err)
	assert.True(t, result.Rent.Equal(newRent))
	assert.Equal(t, "2A", result.Name)
	mockApartmentRepo.AssertExpectations(t)
}

func TestApartmentService_Update_ClearCustomMaintenance(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	apartment := createTestApartment(t)
	custom := decimal.NewFromInt(75)
	apartment.SetCustomMaintenance(&custom)

	mockApartmentRepo.On("FindByID", ctx, apartment.ID).Return(apartment, nil)
	mockApartmentRepo.On("Save", ctx, apartment).Return(nil)

	result, err := service.Update(ctx, apartment.ID, UpdateApartmentRequest{ClearCustomMaintenance: true})

	assert.NoError(t, err)
	assert.Nil(t, result.CustomMaintenance)
	mockApartmentRepo.AssertExpectations(t)
}

func TestApartmentService_AssignResident(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	apartment := createTestApartment(t)
	resident := createTestResident(t)

	mockApartmentRepo.On("FindByID", ctx, apartment.ID).Return(apartment, nil)
	mockResidentRepo.On("FindByID", ctx, resident.ID).Return(resident, nil)
	mockApartmentRepo.On("Save", ctx, apartment).Return(nil)

	result, err := service.AssignResident(ctx, apartment.ID, resident.ID)

	assert.NoError(t, err)
	assert.Equal(t, resident.ID, *result.ResidentID)
	mockApartmentRepo.AssertExpectations(t)
	mockResidentRepo.AssertExpectations(t)
}

func TestApartmentService_AssignResident_AlreadyOccupied(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	apartment := createTestApartment(t)
	sitting := createTestResident(t)
	assert.NoError(t, apartment.AssignResident(sitting.ID))
	incoming := createTestResident(t)

	mockApartmentRepo.On("FindByID", ctx, apartment.ID).Return(apartment, nil)
	mockResidentRepo.On("FindByID", ctx, incoming.ID).Return(incoming, nil)

	result, err := service.AssignResident(ctx, apartment.ID, incoming.ID)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "APARTMENT_OCCUPIED", domainErr.Code)
	mockApartmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApartmentService_Vacate(t *testing.T) {
	mockApartmentRepo := new(MockApartmentRepository)
	mockResidentRepo := new(MockResidentRepository)
	service := NewApartmentService(mockApartmentRepo, mockResidentRepo)

	ctx := context.Background()
	apartment := createTestApartment(t)
	resident := createTestResident(t)
	assert.NoError(t, apartment.AssignResident(resident.ID))

	mockApartmentRepo.On("FindByID", ctx, apartment.ID).Return(apartment, nil)
	mockApartmentRepo.On("Save", ctx, apartment).Return(nil)

	result, err := service.Vacate(ctx, apartment.ID)

	assert.NoError(t, err)
	assert.Nil(t, result.ResidentID)
	mockApartmentRepo.AssertExpectations(t)
}
