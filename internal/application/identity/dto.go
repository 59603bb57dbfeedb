package identity

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SessionResponse carries the issued tokens and the authenticated identity
type SessionResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	UserID                uuid.UUID `json:"user_id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
}
