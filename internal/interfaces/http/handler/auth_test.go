package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/edificio/backend/internal/application/identity"
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/auth"
	"github.com/edificio/backend/internal/infrastructure/config"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "edificio-test",
	}
}

// MockResidentRepository is a mock implementation of property.ResidentRepository
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

func newAuthRouter(t *testing.T, residentRepo *MockResidentRepository) *gin.Engine {
	t.Helper()
	middleware.SetupValidator()

	jwtService := auth.NewJWTService(testJWTConfig())
	authService := identityapp.NewAuthService(residentRepo, jwtService, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(api)
	return router
}

func residentWithPassword(t *testing.T, email, password string) *property.Resident {
	t.Helper()
	resident, err := property.NewResident("Ana Petrova", email, property.RoleResident)
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	resident.PasswordHash = string(hash)
	return resident
}

func TestAuthHandler_Login(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	resident := residentWithPassword(t, "ana@example.com", "s3cret-pass")
	residentRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(resident, nil)

	router := newAuthRouter(t, residentRepo)

	body := `{"email":"ana@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    identityapp.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Equal(t, resident.ID, resp.Data.UserID)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	resident := residentWithPassword(t, "ana@example.com", "s3cret-pass")
	residentRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(resident, nil)

	router := newAuthRouter(t, residentRepo)

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_UNAUTHORIZED")
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	residentRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	router := newAuthRouter(t, residentRepo)

	body := `{"email":"ghost@example.com","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	router := newAuthRouter(t, residentRepo)

	body := `{"email":"not-an-email","password":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	residentRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthHandler_Refresh(t *testing.T) {
	residentRepo := new(MockResidentRepository)
	resident := residentWithPassword(t, "ana@example.com", "s3cret-pass")
	residentRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(resident, nil)
	residentRepo.On("FindByID", mock.Anything, resident.ID).Return(resident, nil)

	router := newAuthRouter(t, residentRepo)

	// Login first to obtain a refresh token
	loginBody := `{"email":"ana@example.com","password":"s3cret-pass"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(loginBody))
	loginReq.Header.Set("Content-Type", "application/json")
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	var loginResp struct {
		Data identityapp.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &loginResp))

	refreshBody, err := json.Marshal(map[string]string{"refresh_token": loginResp.Data.RefreshToken})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewBuffer(refreshBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data identityapp.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
}
