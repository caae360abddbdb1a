package service

import (
	"context"

	"shipperd-backend/internal/domain"
)

// LoginResult carries the token pair plus the authenticated account.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID int32) (*domain.User, error)
}

// CreateUserParams is the account-creation input. Password arrives in the
// clear and is hashed before persisting.
type CreateUserParams struct {
	Username           string
	Email              string
	FirstName          string
	LastName           string
	Password           string
	Role               domain.Role
	IsSuperuser        bool
	IsStaff            bool
	Phone              string
	Country            string
	City               string
	Address            string
	EmailNotifications bool
	SMSNotifications   bool
	Timezone           string
}

// ProfileUpdate is a partial update; nil fields are left unchanged. Email
// and role are read-only from the profile surface and have no field here.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Country   *string
	City      *string
	Address   *string
}

// SettingsUpdate is a partial update of notification preferences.
type SettingsUpdate struct {
	EmailNotifications *bool
	SMSNotifications   *bool
	Timezone           *string
}

// CustomerWithLockers is a customer account with its lockers attached.
type CustomerWithLockers struct {
	User    domain.User     `json:"user"`
	Lockers []domain.Locker `json:"lockers"`
}

type UserService interface {
	// CreateUser persists the account, then runs locker provisioning for
	// customer accounts. Provisioning faults never fail account creation;
	// the returned locker slice is empty in that case.
	CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, []domain.Locker, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID int32, update SettingsUpdate) (*domain.User, error)
	ListCustomers(ctx context.Context) ([]CustomerWithLockers, error)
}

// LockerProvisioner is the post-commit hook invoked after a customer account
// is durably created. It is explicit: the account-creation service calls it
// with the new user; there is no signal dispatch.
type LockerProvisioner interface {
	ProvisionForUser(ctx context.Context, user *domain.User) ([]domain.Locker, error)
}

// Notifier delivers customer-facing notifications, honoring the account's
// notification preferences. All sends are best-effort.
type Notifier interface {
	SendLockersReady(ctx context.Context, user *domain.User, lockers []domain.Locker) error
}

type WarehouseService interface {
	CreateWarehouse(ctx context.Context, wh *domain.Warehouse) error
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}

type ItemService interface {
	ScanIn(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	SetStatus(ctx context.Context, actorID, itemID int32, status domain.ItemStatus, note string) error
}

type BoxService interface {
	CreateBox(ctx context.Context, box *domain.InternationalBox) error
	GetBox(ctx context.Context, id int32) (*domain.InternationalBox, error)
	ListBoxes(ctx context.Context) ([]domain.InternationalBox, error)
	SetStatus(ctx context.Context, actorID, boxID int32, status domain.BoxStatus, note string) error
	AddItem(ctx context.Context, actorID, boxID, itemID int32, note string) error
}

type OrderService interface {
	PlaceInternationalOrder(ctx context.Context, order *domain.InternationalOrder) error
	IssueLabel(ctx context.Context, orderID int32) (*domain.ShipmentLabel, error)
	SetInternationalStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error
	PlaceDomesticOrder(ctx context.Context, order *domain.DomesticOrder) error
	SetDomesticStatus(ctx context.Context, orderID int32, status domain.DomesticOrderStatus) error
}

type RequestService interface {
	OpenRequest(ctx context.Context, req *domain.ItemRequest) error
	SetStatus(ctx context.Context, requestID int32, status domain.RequestStatus) error
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.ItemRequest, error)
}

// DashboardStats is the aggregate-count payload for the dashboard.
type DashboardStats struct {
	TotalBoxes     int32 `json:"total_boxes"`
	BoxesInTransit int32 `json:"boxes_in_transit"`
	TotalCustomers int32 `json:"total_customers"`
}

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type HistoryService interface {
	Timeline(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusLog, error)
}
