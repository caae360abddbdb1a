package postgres

import (
	"context"
	"database/sql"

	"shipperd-backend/internal/repository"

	_ "github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.WarehouseRepository
	repository.LockerRepository
	repository.LockerTxRunner
	repository.ItemRepository
	repository.BoxRepository
	repository.OrderRepository
	repository.RequestRepository
	repository.StatusLogRepository
	repository.TokenRepository
}

func NewStore(db *sql.DB) *Store {
	lockers := NewLockerRepository(db)
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		WarehouseRepository: NewWarehouseRepository(db),
		LockerRepository:    lockers,
		LockerTxRunner:      lockers.(repository.LockerTxRunner),
		ItemRepository:      NewItemRepository(db),
		BoxRepository:       NewBoxRepository(db),
		OrderRepository:     NewOrderRepository(db),
		RequestRepository:   NewRequestRepository(db),
		StatusLogRepository: NewStatusLogRepository(db),
		TokenRepository:     NewTokenRepository(db),
	}
}
