package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrMissingFields = errors.New("username, email and password are required")
)

type userService struct {
	userRepo    repository.UserRepository
	lockerRepo  repository.LockerRepository
	provisioner LockerProvisioner
	notifier    Notifier
}

func NewUserService(userRepo repository.UserRepository, lockerRepo repository.LockerRepository, provisioner LockerProvisioner, notifier Notifier) UserService {
	return &userService{
		userRepo:    userRepo,
		lockerRepo:  lockerRepo,
		provisioner: provisioner,
		notifier:    notifier,
	}
}

func (s *userService) CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, []domain.Locker, error) {
	if params.Username == "" || params.Email == "" || params.Password == "" {
		return nil, nil, ErrMissingFields
	}
	role := params.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:           params.Username,
		Email:              params.Email,
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		PasswordHash:       string(hash),
		Role:               role,
		IsSuperuser:        params.IsSuperuser,
		IsStaff:            params.IsStaff,
		Phone:              params.Phone,
		Country:            params.Country,
		City:               params.City,
		Address:            params.Address,
		EmailNotifications: params.EmailNotifications,
		SMSNotifications:   params.SMSNotifications,
		Timezone:           params.Timezone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	// Post-commit hook: provisioning is best-effort by policy. A fault
	// here is logged and swallowed so that account creation still
	// succeeds.
	var lockers []domain.Locker
	if user.EffectiveRole() == domain.RoleCustomer {
		lockers, err = s.provisioner.ProvisionForUser(ctx, user)
		if err != nil {
			logger.Error("Locker provisioning failed", "user_id", user.ID, "error", err)
			lockers = nil
		} else if len(lockers) > 0 && s.notifier != nil && user.EmailNotifications {
			if err := s.notifier.SendLockersReady(ctx, user, lockers); err != nil {
				logger.Warn("Locker notification failed", "user_id", user.ID, "error", err)
			}
		}
	}

	return user, lockers, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update of the profile fields. Email and
// role are read-only from this surface.
func (s *userService) UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Country != nil {
		user.Country = *update.Country
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.Address != nil {
		user.Address = *update.Address
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateSettings(ctx context.Context, userID int32, update SettingsUpdate) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.EmailNotifications != nil {
		user.EmailNotifications = *update.EmailNotifications
	}
	if update.SMSNotifications != nil {
		user.SMSNotifications = *update.SMSNotifications
	}
	if update.Timezone != nil {
		user.Timezone = *update.Timezone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return user, nil
}

func (s *userService) ListCustomers(ctx context.Context) ([]CustomerWithLockers, error) {
	customers, err := s.userRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	lockers, err := s.lockerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[int32][]domain.Locker, len(customers))
	for _, l := range lockers {
		byCustomer[l.CustomerID] = append(byCustomer[l.CustomerID], l)
	}

	result := make([]CustomerWithLockers, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerWithLockers{User: c, Lockers: byCustomer[c.ID]})
	}
	return result, nil
}
