package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

const lockerColumns = `id, code, COALESCE(description, ''), customer_id, warehouse_id, created_on, updated_on`

type lockerRepository struct {
	db *sql.DB
	q  querier
}

func NewLockerRepository(db *sql.DB) repository.LockerRepository {
	return &lockerRepository{db: db, q: db}
}

func (r *lockerRepository) Create(ctx context.Context, l *domain.Locker) error {
	query := `INSERT INTO lockers (code, description, customer_id, warehouse_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	l.CreatedOn = now
	l.UpdatedOn = now
	return r.q.QueryRowContext(ctx, query, l.Code, l.Description, l.CustomerID, l.WarehouseID, l.CreatedOn, l.UpdatedOn).Scan(&l.ID)
}

func (r *lockerRepository) GetByID(ctx context.Context, id int32) (*domain.Locker, error) {
	query := `SELECT ` + lockerColumns + ` FROM lockers WHERE id = $1`
	return scanLocker(r.q.QueryRowContext(ctx, query, id))
}

func scanLocker(row *sql.Row) (*domain.Locker, error) {
	l := &domain.Locker{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&l.ID, &l.Code, &l.Description, &l.CustomerID, &l.WarehouseID, &createdOn, &updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	l.CreatedOn = createdOn.Format("2006-01-02")
	l.UpdatedOn = updatedOn.Format("2006-01-02")
	return l, nil
}

func (r *lockerRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM lockers WHERE code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *lockerRepository) CountByCustomerAndWarehouse(ctx context.Context, customerID, warehouseID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM lockers WHERE customer_id = $1 AND warehouse_id = $2`
	err := r.q.QueryRowContext(ctx, query, customerID, warehouseID).Scan(&count)
	return count, err
}

func (r *lockerRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Locker, error) {
	query := `SELECT ` + lockerColumns + ` FROM lockers WHERE customer_id = $1 ORDER BY id`
	return r.list(ctx, query, customerID)
}

func (r *lockerRepository) List(ctx context.Context) ([]domain.Locker, error) {
	query := `SELECT ` + lockerColumns + ` FROM lockers ORDER BY id`
	return r.list(ctx, query)
}

func (r *lockerRepository) list(ctx context.Context, query string, args ...any) ([]domain.Locker, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lockers []domain.Locker
	for rows.Next() {
		var l domain.Locker
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&l.ID, &l.Code, &l.Description, &l.CustomerID, &l.WarehouseID, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		l.CreatedOn = createdOn.Format("2006-01-02")
		l.UpdatedOn = updatedOn.Format("2006-01-02")
		lockers = append(lockers, l)
	}
	return lockers, rows.Err()
}

func (r *lockerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM lockers`)
	return err
}

// WithinTx runs fn against a transaction-scoped locker repository. The
// transaction commits only if fn returns nil.
func (r *lockerRepository) WithinTx(ctx context.Context, fn func(repository.LockerRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin locker transaction: %w", err)
	}

	if err := fn(&lockerRepository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %v: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
