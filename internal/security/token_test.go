package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shipperd-backend/internal/domain"
)

const testSecret = "unit-test-secret-key-0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)

	t.Run("Access Token", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(42, "admin@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
		assert.NotEmpty(t, claims.ID, "JTI should be set")
	})

	t.Run("Refresh Token", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(42, "admin@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("Distinct JTIs", func(t *testing.T) {
		a, _ := tm.GenerateRefreshToken(1, "a@example.com", domain.RoleEmployee)
		b, _ := tm.GenerateRefreshToken(1, "a@example.com", domain.RoleEmployee)

		claimsA, err := tm.ValidateToken(a)
		assert.NoError(t, err)
		claimsB, err := tm.ValidateToken(b)
		assert.NoError(t, err)
		assert.NotEqual(t, claimsA.ID, claimsB.ID)
	})
}

func TestTokenManager_Validation(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-jwt")
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewTokenManager("another-secret-key-fedcba9876543210", 15, 60)
		token, err := other.GenerateAccessToken(1, "a@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		short := NewTokenManager(testSecret, 0, 0)
		token, err := short.GenerateAccessToken(1, "a@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = tm.ValidateToken(token)
		assert.Equal(t, ErrExpiredToken, err)
	})
}
