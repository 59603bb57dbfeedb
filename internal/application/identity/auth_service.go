package identity

import (
	"context"

	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles resident and administrator authentication
type AuthService struct {
	residentRepo property.ResidentRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(residentRepo property.ResidentRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		residentRepo: residentRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates a resident by email and password and issues tokens.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	resident, err := s.residentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(resident.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Invalid password attempt", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: resident.ID,
		Email:  resident.Email,
		Role:   string(resident.Role),
	})
	if err != nil {
		s.logger.Error("Token generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("Resident logged in",
		zap.String("resident_id", resident.ID.String()),
		zap.String("role", string(resident.Role)))
	return toSessionResponse(pair, resident), nil
}

// Refresh exchanges a valid refresh token for a new pair, re-reading the
// resident so the new claims reflect the current email and role
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*SessionResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	residentID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}
	resident, err := s.residentRepo.FindByID(ctx, residentID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Account no longer exists")
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, resident.Email, string(resident.Role))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}
	return toSessionResponse(pair, resident), nil
}

func toSessionResponse(pair *auth.TokenPair, resident *property.Resident) *SessionResponse {
	return &SessionResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		UserID:                resident.ID,
		Name:                  resident.Name,
		Email:                 resident.Email,
		Role:                  string(resident.Role),
	}
}
