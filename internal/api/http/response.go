package http

import (
	"encoding/json"
	"net/http"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError writes the failure shape shared by every endpoint.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondDetail(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"detail": message})
}

// userPayload is the user shape returned by the session surface. The
// capability flags are computed from the role, never stored.
func userPayload(u *domain.User) map[string]any {
	return map[string]any{
		"id":             u.ID,
		"email":          u.Email,
		"first_name":     u.FirstName,
		"last_name":      u.LastName,
		"role":           u.EffectiveRole(),
		"is_super_admin": u.IsSuperAdmin(),
		"is_admin":       u.IsAdmin(),
		"is_employee":    u.IsEmployee(),
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
