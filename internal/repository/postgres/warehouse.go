package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

const warehouseColumns = `id, name, COALESCE(address, ''), COALESCE(city, ''), COALESCE(country, ''), created_on, updated_on`

type warehouseRepository struct {
	db *sql.DB
}

func NewWarehouseRepository(db *sql.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	query := `INSERT INTO warehouses (name, address, city, country, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	w.CreatedOn = now
	w.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, w.Name, w.Address, w.City, w.Country, w.CreatedOn, w.UpdatedOn).Scan(&w.ID)
}

func (r *warehouseRepository) GetByID(ctx context.Context, id int32) (*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return scanWarehouse(r.db.QueryRowContext(ctx, query, id))
}

func (r *warehouseRepository) GetByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE name = $1`
	return scanWarehouse(r.db.QueryRowContext(ctx, query, name))
}

func scanWarehouse(row *sql.Row) (*domain.Warehouse, error) {
	w := &domain.Warehouse{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Country, &createdOn, &updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	w.CreatedOn = createdOn.Format("2006-01-02")
	w.UpdatedOn = updatedOn.Format("2006-01-02")
	return w, nil
}

func (r *warehouseRepository) List(ctx context.Context) ([]domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Country, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		w.CreatedOn = createdOn.Format("2006-01-02")
		w.UpdatedOn = updatedOn.Format("2006-01-02")
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (r *warehouseRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM warehouses`)
	return err
}
