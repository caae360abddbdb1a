package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
	"shipperd-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListCustomers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) CountCustomers(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) DeleteAllExcept(ctx context.Context, keepUsername string) error {
	args := m.Called(ctx, keepUsername)
	return args.Error(0)
}

// MockWarehouseRepo
type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) Create(ctx context.Context, wh *domain.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}
func (m *MockWarehouseRepo) GetByID(ctx context.Context, id int32) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) GetByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) List(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLockerRepo doubles as its own transaction runner: WithinTx hands the
// same mock back to the callback.
type MockLockerRepo struct {
	mock.Mock
}

func (m *MockLockerRepo) Create(ctx context.Context, locker *domain.Locker) error {
	args := m.Called(ctx, locker)
	return args.Error(0)
}
func (m *MockLockerRepo) GetByID(ctx context.Context, id int32) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockLockerRepo) CountByCustomerAndWarehouse(ctx context.Context, customerID, warehouseID int32) (int32, error) {
	args := m.Called(ctx, customerID, warehouseID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockLockerRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Locker, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) List(ctx context.Context) ([]domain.Locker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLockerRepo) WithinTx(ctx context.Context, fn func(repository.LockerRepository) error) error {
	return fn(m)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Revoke(ctx context.Context, token *domain.RevokedToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
func (m *MockTokenRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Item, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListWithCustomer(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Item, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockItemRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBoxRepo
type MockBoxRepo struct {
	mock.Mock
}

func (m *MockBoxRepo) Create(ctx context.Context, box *domain.InternationalBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}
func (m *MockBoxRepo) GetByID(ctx context.Context, id int32) (*domain.InternationalBox, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InternationalBox), args.Error(1)
}
func (m *MockBoxRepo) ListWithWarehouse(ctx context.Context) ([]domain.InternationalBox, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InternationalBox), args.Error(1)
}
func (m *MockBoxRepo) UpdateStatus(ctx context.Context, id int32, status domain.BoxStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBoxRepo) AddItem(ctx context.Context, link *domain.BoxItem, itemWeightKg float64) error {
	args := m.Called(ctx, link, itemWeightKg)
	return args.Error(0)
}
func (m *MockBoxRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBoxRepo) CountByStatus(ctx context.Context, status domain.BoxStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBoxRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) CreateInternational(ctx context.Context, order *domain.InternationalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetInternationalByID(ctx context.Context, id int32) (*domain.InternationalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InternationalOrder), args.Error(1)
}
func (m *MockOrderRepo) ListInternationalByCustomer(ctx context.Context, customerID int32) ([]domain.InternationalOrder, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.InternationalOrder), args.Error(1)
}
func (m *MockOrderRepo) UpdateInternationalStatus(ctx context.Context, id int32, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrderRepo) CreateLabel(ctx context.Context, label *domain.ShipmentLabel) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}
func (m *MockOrderRepo) GetLabelByOrder(ctx context.Context, orderID int32) (*domain.ShipmentLabel, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShipmentLabel), args.Error(1)
}
func (m *MockOrderRepo) CreateDomestic(ctx context.Context, order *domain.DomesticOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetDomesticByID(ctx context.Context, id int32) (*domain.DomesticOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomesticOrder), args.Error(1)
}
func (m *MockOrderRepo) UpdateDomesticStatus(ctx context.Context, id int32, status domain.DomesticOrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.ItemRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockStatusLogRepo
type MockStatusLogRepo struct {
	mock.Mock
}

func (m *MockStatusLogRepo) Append(ctx context.Context, entry *domain.StatusLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockStatusLogRepo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusLog, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Get(0).([]domain.StatusLog), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

// MockProvisioner
type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) ProvisionForUser(ctx context.Context, user *domain.User) ([]domain.Locker, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Locker), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendLockersReady(ctx context.Context, user *domain.User, lockers []domain.Locker) error {
	args := m.Called(ctx, user, lockers)
	return args.Error(0)
}
