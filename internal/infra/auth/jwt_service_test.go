package auth

import (
	"testing"
	"time"

	"geofeed/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	tokenString := signToken(t, testSecret, accessClaims{
		Roles: []string{"user"},
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user"}, claims.Roles)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage string",
			token: "not-a-token",
		},
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", accessClaims{
				Type: "access",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
				},
			}),
		},
		{
			name: "expired",
			token: signToken(t, testSecret, accessClaims{
				Type: "access",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}),
		},
		{
			name: "refresh token",
			token: signToken(t, testSecret, accessClaims{
				Type: "refresh",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
		},
		{
			name: "subject is not a uuid",
			token: signToken(t, testSecret, accessClaims{
				Type: "access",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "someone",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
				},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
