package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

const itemColumns = `id, tracking_number, scanning_date, COALESCE(weight_kg, 0), COALESCE(category, ''), quantity,
	COALESCE(country_origin, ''), status, condition, customer_id, locker_id, international_order_id, created_on, updated_on`

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (tracking_number, scanning_date, weight_kg, category, quantity, country_origin,
	          status, condition, customer_id, locker_id, international_order_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now().Format("2006-01-02")
	i.CreatedOn = now
	i.UpdatedOn = now

	var scanningDate any
	if i.ScanningDate != nil {
		scanningDate = *i.ScanningDate
	}
	return r.db.QueryRowContext(ctx, query,
		i.TrackingNumber, scanningDate, i.WeightKg, i.Category, i.Quantity, i.CountryOrigin,
		i.Status, i.Condition, i.CustomerID, i.LockerID, i.InternationalOrderID,
		i.CreatedOn, i.UpdatedOn,
	).Scan(&i.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItemRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *itemRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE tracking_number = $1`
	return scanItemRow(r.db.QueryRowContext(ctx, query, trackingNumber))
}

func scanItemRow(row *sql.Row) (*domain.Item, error) {
	i := &domain.Item{}
	var createdOn, updatedOn time.Time
	var scanningDate sql.NullTime
	var orderID sql.NullInt32
	err := row.Scan(
		&i.ID, &i.TrackingNumber, &scanningDate, &i.WeightKg, &i.Category, &i.Quantity,
		&i.CountryOrigin, &i.Status, &i.Condition, &i.CustomerID, &i.LockerID, &orderID,
		&createdOn, &updatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	fillItemOptionals(i, scanningDate, orderID, createdOn, updatedOn)
	return i, nil
}

func fillItemOptionals(i *domain.Item, scanningDate sql.NullTime, orderID sql.NullInt32, createdOn, updatedOn time.Time) {
	if scanningDate.Valid {
		dateStr := scanningDate.Time.Format("2006-01-02")
		i.ScanningDate = &dateStr
	}
	if orderID.Valid {
		id := orderID.Int32
		i.InternationalOrderID = &id
	}
	i.CreatedOn = createdOn.Format("2006-01-02")
	i.UpdatedOn = updatedOn.Format("2006-01-02")
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	return r.list(ctx, query)
}

// ListWithCustomer joins each item with its customer's username.
func (r *itemRepository) ListWithCustomer(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT i.id, i.tracking_number, i.scanning_date, COALESCE(i.weight_kg, 0), COALESCE(i.category, ''), i.quantity,
	          COALESCE(i.country_origin, ''), i.status, i.condition, i.customer_id, u.username, i.locker_id,
	          i.international_order_id, i.created_on, i.updated_on
	          FROM items i
	          JOIN users u ON u.id = i.customer_id
	          ORDER BY i.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		var createdOn, updatedOn time.Time
		var scanningDate sql.NullTime
		var orderID sql.NullInt32
		if err := rows.Scan(
			&i.ID, &i.TrackingNumber, &scanningDate, &i.WeightKg, &i.Category, &i.Quantity,
			&i.CountryOrigin, &i.Status, &i.Condition, &i.CustomerID, &i.CustomerUsername, &i.LockerID,
			&orderID, &createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		fillItemOptionals(&i, scanningDate, orderID, createdOn, updatedOn)
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *itemRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE customer_id = $1 ORDER BY id`
	return r.list(ctx, query, customerID)
}

func (r *itemRepository) list(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		var createdOn, updatedOn time.Time
		var scanningDate sql.NullTime
		var orderID sql.NullInt32
		if err := rows.Scan(
			&i.ID, &i.TrackingNumber, &scanningDate, &i.WeightKg, &i.Category, &i.Quantity,
			&i.CountryOrigin, &i.Status, &i.Condition, &i.CustomerID, &i.LockerID, &orderID,
			&createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		fillItemOptionals(&i, scanningDate, orderID, createdOn, updatedOn)
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *itemRepository) UpdateStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET status=$1, updated_on=$2 WHERE id=$3`,
		status, time.Now().Format("2006-01-02"), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *itemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items`)
	return err
}
