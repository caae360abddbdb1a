package http

import (
	"context"
	"net/http"
	"strings"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// AuthMiddleware validates bearer tokens and injects the claims into the
// request context.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Authenticate requires a valid access token.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "wrong token type for this endpoint")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireEmployee gates a handler to employee, admin and super_admin roles.
func (m *AuthMiddleware) RequireEmployee(next http.HandlerFunc) http.HandlerFunc {
	return m.requireRoles(next, domain.RoleEmployee, domain.RoleAdmin, domain.RoleSuperAdmin)
}

// RequireAdmin gates a handler to admin and super_admin roles.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.requireRoles(next, domain.RoleAdmin, domain.RoleSuperAdmin)
}

func (m *AuthMiddleware) requireRoles(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return m.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				next(w, r)
				return
			}
		}
		respondError(w, http.StatusForbidden, "insufficient role for this action")
	})
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "BEARER ") {
		return header[7:]
	}
	return header
}
