package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating JWT access tokens issued
// by the external auth service. The engine only resolves identity; it never
// issues credentials.
type TokenService interface {
	// ValidateToken checks the validity of an access token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
