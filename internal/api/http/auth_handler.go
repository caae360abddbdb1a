package http

import (
	"errors"
	"net/http"

	"shipperd-backend/internal/service"
)

// AuthHandler serves the session surface: login, logout, refresh, me,
// profile and settings.
type AuthHandler struct {
	authSvc service.AuthService
	userSvc service.UserService
}

func NewAuthHandler(authSvc service.AuthService, userSvc service.UserService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrCustomerForbidden):
			respondError(w, http.StatusForbidden, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"access":  result.AccessToken,
		"refresh": result.RefreshToken,
		"user":    userPayload(result.User),
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.authSvc.Logout(r.Context(), req.Refresh); err != nil {
		// Malformed or already-blacklisted tokens are a client error,
		// never an unhandled fault.
		respondError(w, http.StatusBadRequest, "Invalid token")
		return
	}
	respondDetail(w, http.StatusOK, "Successfully logged out.")
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	access, user, err := h.authSvc.Refresh(r.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidToken):
			respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		default:
			respondError(w, http.StatusInternalServerError, "token refresh failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"access": access,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.EffectiveRole(),
		},
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.authSvc.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	respondJSON(w, http.StatusOK, userPayload(user))
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type profileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Address   *string `json:"address"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req profileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userSvc.UpdateProfile(r.Context(), claims.UserID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Country:   req.Country,
		City:      req.City,
		Address:   req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "profile update failed")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type settingsResponse struct {
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	Timezone           string `json:"timezone"`
}

func (h *AuthHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse{
		EmailNotifications: user.EmailNotifications,
		SMSNotifications:   user.SMSNotifications,
		Timezone:           user.Timezone,
	})
}

type settingsUpdateRequest struct {
	EmailNotifications *bool   `json:"email_notifications"`
	SMSNotifications   *bool   `json:"sms_notifications"`
	Timezone           *string `json:"timezone"`
}

func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req settingsUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userSvc.UpdateSettings(r.Context(), claims.UserID, service.SettingsUpdate{
		EmailNotifications: req.EmailNotifications,
		SMSNotifications:   req.SMSNotifications,
		Timezone:           req.Timezone,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "settings update failed")
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse{
		EmailNotifications: user.EmailNotifications,
		SMSNotifications:   user.SMSNotifications,
		Timezone:           user.Timezone,
	})
}
