package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/security"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 15, 60)
	mw := NewAuthMiddleware(tm)

	t.Run("No Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler)(rec, bearerRequest(""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler)(rec, bearerRequest("not-a-jwt"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Refresh Token Rejected On Access Endpoints", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(1, "a@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler)(rec, bearerRequest(token))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Access Token Passes Claims Through", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "a@example.com", domain.RoleEmployee)
		assert.NoError(t, err)

		var gotID int32
		handler := func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			assert.True(t, ok)
			gotID = claims.UserID
			w.WriteHeader(http.StatusOK)
		}

		rec := httptest.NewRecorder()
		mw.Authenticate(handler)(rec, bearerRequest(token))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(7), gotID)
	})
}

func TestAuthMiddleware_RoleGates(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 15, 60)
	mw := NewAuthMiddleware(tm)

	tokenFor := func(role domain.Role) string {
		token, err := tm.GenerateAccessToken(1, "a@example.com", role)
		assert.NoError(t, err)
		return token
	}

	t.Run("Employee Allowed Through Employee Gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.RequireEmployee(okHandler)(rec, bearerRequest(tokenFor(domain.RoleEmployee)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Employee Blocked By Admin Gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.RequireAdmin(okHandler)(rec, bearerRequest(tokenFor(domain.RoleEmployee)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Customer Blocked Everywhere", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.RequireEmployee(okHandler)(rec, bearerRequest(tokenFor(domain.RoleCustomer)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Super Admin Allowed Through Admin Gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.RequireAdmin(okHandler)(rec, bearerRequest(tokenFor(domain.RoleSuperAdmin)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
