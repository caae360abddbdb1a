package repository

import (
	"context"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no row matches.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListCustomers(ctx context.Context) ([]domain.User, error)
	CountCustomers(ctx context.Context) (int32, error)
	DeleteAllExcept(ctx context.Context, keepUsername string) error
}

type WarehouseRepository interface {
	Create(ctx context.Context, wh *domain.Warehouse) error
	GetByID(ctx context.Context, id int32) (*domain.Warehouse, error)
	GetByName(ctx context.Context, name string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]domain.Warehouse, error)
	DeleteAll(ctx context.Context) error
}

type LockerRepository interface {
	Create(ctx context.Context, locker *domain.Locker) error
	GetByID(ctx context.Context, id int32) (*domain.Locker, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	CountByCustomerAndWarehouse(ctx context.Context, customerID, warehouseID int32) (int32, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Locker, error)
	List(ctx context.Context) ([]domain.Locker, error)
	DeleteAll(ctx context.Context) error
}

// LockerTxRunner runs fn against a transaction-scoped LockerRepository.
// Provisioning uses it so that all lockers created for one customer commit
// or roll back together.
type LockerTxRunner interface {
	WithinTx(ctx context.Context, fn func(LockerRepository) error) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	ListWithCustomer(ctx context.Context) ([]domain.Item, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Item, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error
	DeleteAll(ctx context.Context) error
}

type BoxRepository interface {
	Create(ctx context.Context, box *domain.InternationalBox) error
	GetByID(ctx context.Context, id int32) (*domain.InternationalBox, error)
	// ListWithWarehouse returns every box with its warehouse populated
	// when one is assigned.
	ListWithWarehouse(ctx context.Context) ([]domain.InternationalBox, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BoxStatus) error
	// AddItem links an item into a box and bumps the box aggregates in the
	// same transaction. Violating the (box, item) unique pair fails.
	AddItem(ctx context.Context, link *domain.BoxItem, itemWeightKg float64) error
	Count(ctx context.Context) (int32, error)
	CountByStatus(ctx context.Context, status domain.BoxStatus) (int32, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	CreateInternational(ctx context.Context, order *domain.InternationalOrder) error
	GetInternationalByID(ctx context.Context, id int32) (*domain.InternationalOrder, error)
	ListInternationalByCustomer(ctx context.Context, customerID int32) ([]domain.InternationalOrder, error)
	UpdateInternationalStatus(ctx context.Context, id int32, status domain.OrderStatus) error

	CreateLabel(ctx context.Context, label *domain.ShipmentLabel) error
	GetLabelByOrder(ctx context.Context, orderID int32) (*domain.ShipmentLabel, error)

	CreateDomestic(ctx context.Context, order *domain.DomesticOrder) error
	GetDomesticByID(ctx context.Context, id int32) (*domain.DomesticOrder, error)
	UpdateDomesticStatus(ctx context.Context, id int32, status domain.DomesticOrderStatus) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.ItemRequest, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error
}

type StatusLogRepository interface {
	Append(ctx context.Context, entry *domain.StatusLog) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusLog, error)
}

type TokenRepository interface {
	Revoke(ctx context.Context, token *domain.RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
