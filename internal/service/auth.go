package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
	"shipperd-backend/internal/security"
)

var (
	ErrMissingCredentials = errors.New("please provide both email and password")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCustomerForbidden  = errors.New("customer accounts cannot access this dashboard")
	ErrMissingToken       = errors.New("refresh token is required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Customers are barred from this session surface even with valid
	// credentials; the dashboard is staff-only.
	if user.IsCustomer() {
		return nil, ErrCustomerForbidden
	}

	role := user.EffectiveRole()
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	logger.Info("User logged in", "user_id", user.ID, "role", role)
	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.validRefreshClaims(ctx, refreshToken)
	if err != nil {
		return ErrInvalidToken
	}

	revoked := &domain.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.tokenRepo.Revoke(ctx, revoked); err != nil {
		// A duplicate JTI means the token was blacklisted concurrently;
		// either way it is no longer usable.
		logger.Warn("Refresh token revocation failed", "user_id", claims.UserID, "error", err)
		return ErrInvalidToken
	}

	logger.Info("User logged out", "user_id", claims.UserID)
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, *domain.User, error) {
	if refreshToken == "" {
		return "", nil, ErrMissingToken
	}

	claims, err := s.validRefreshClaims(ctx, refreshToken)
	if err != nil {
		return "", nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("load refresh subject: %w", err)
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.EffectiveRole())
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return access, user, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// validRefreshClaims parses the token, checks its type and makes sure its
// JTI is not blacklisted.
func (s *authService) validRefreshClaims(ctx context.Context, refreshToken string) (*security.UserClaims, error) {
	if refreshToken == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}
	revoked, err := s.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
