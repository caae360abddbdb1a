package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

const boxColumns = `id, box_number, COALESCE(tracking_number, ''), status, COALESCE(origin_country, ''),
	COALESCE(destination_country, ''), total_weight_kg, items_count, warehouse_id, created_on, updated_on`

type boxRepository struct {
	db *sql.DB
}

func NewBoxRepository(db *sql.DB) repository.BoxRepository {
	return &boxRepository{db: db}
}

func (r *boxRepository) Create(ctx context.Context, b *domain.InternationalBox) error {
	query := `INSERT INTO international_boxes (box_number, tracking_number, status, origin_country,
	          destination_country, total_weight_kg, items_count, warehouse_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format("2006-01-02")
	b.CreatedOn = now
	b.UpdatedOn = now

	var trackingNumber any
	if b.TrackingNumber != "" {
		trackingNumber = b.TrackingNumber
	}
	return r.db.QueryRowContext(ctx, query,
		b.BoxNumber, trackingNumber, b.Status, b.OriginCountry, b.DestinationCountry,
		b.TotalWeightKg, b.ItemsCount, b.WarehouseID, b.CreatedOn, b.UpdatedOn,
	).Scan(&b.ID)
}

func (r *boxRepository) GetByID(ctx context.Context, id int32) (*domain.InternationalBox, error) {
	query := `SELECT ` + boxColumns + ` FROM international_boxes WHERE id = $1`
	b := &domain.InternationalBox{}
	var createdOn, updatedOn time.Time
	var warehouseID sql.NullInt32
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.BoxNumber, &b.TrackingNumber, &b.Status, &b.OriginCountry,
		&b.DestinationCountry, &b.TotalWeightKg, &b.ItemsCount, &warehouseID,
		&createdOn, &updatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if warehouseID.Valid {
		wid := warehouseID.Int32
		b.WarehouseID = &wid
	}
	b.CreatedOn = createdOn.Format("2006-01-02")
	b.UpdatedOn = updatedOn.Format("2006-01-02")
	return b, nil
}

func (r *boxRepository) ListWithWarehouse(ctx context.Context) ([]domain.InternationalBox, error) {
	logger.EnterMethod("boxRepository.ListWithWarehouse")

	query := `SELECT b.id, b.box_number, COALESCE(b.tracking_number, ''), b.status, COALESCE(b.origin_country, ''),
	                 COALESCE(b.destination_country, ''), b.total_weight_kg, b.items_count, b.warehouse_id,
	                 b.created_on, b.updated_on,
	                 w.id, w.name, COALESCE(w.city, ''), COALESCE(w.country, '')
	          FROM international_boxes b
	          LEFT JOIN warehouses w ON b.warehouse_id = w.id
	          ORDER BY b.id`
	logger.DatabaseCall("SELECT", "international_boxes LEFT JOIN warehouses")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("boxRepository.ListWithWarehouse", err)
		return nil, err
	}
	defer rows.Close()

	var boxes []domain.InternationalBox
	for rows.Next() {
		var b domain.InternationalBox
		var createdOn, updatedOn time.Time
		var warehouseID, whID sql.NullInt32
		var whName, whCity, whCountry sql.NullString

		if err := rows.Scan(
			&b.ID, &b.BoxNumber, &b.TrackingNumber, &b.Status, &b.OriginCountry,
			&b.DestinationCountry, &b.TotalWeightKg, &b.ItemsCount, &warehouseID,
			&createdOn, &updatedOn,
			&whID, &whName, &whCity, &whCountry,
		); err != nil {
			logger.ExitMethodWithError("boxRepository.ListWithWarehouse", err)
			return nil, err
		}
		if warehouseID.Valid {
			wid := warehouseID.Int32
			b.WarehouseID = &wid
		}
		if whID.Valid {
			b.Warehouse = &domain.Warehouse{
				ID:      whID.Int32,
				Name:    whName.String,
				City:    whCity.String,
				Country: whCountry.String,
			}
		}
		b.CreatedOn = createdOn.Format("2006-01-02")
		b.UpdatedOn = updatedOn.Format("2006-01-02")
		boxes = append(boxes, b)
	}

	logger.DatabaseResult("SELECT", int64(len(boxes)), rows.Err())
	logger.ExitMethod("boxRepository.ListWithWarehouse", "count", len(boxes))
	return boxes, rows.Err()
}

func (r *boxRepository) UpdateStatus(ctx context.Context, id int32, status domain.BoxStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE international_boxes SET status=$1, updated_on=$2 WHERE id=$3`,
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

// AddItem inserts the link row and bumps the box aggregates atomically.
func (r *boxRepository) AddItem(ctx context.Context, link *domain.BoxItem, itemWeightKg float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add-item transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO box_items (box_id, item_id, added_on, added_by_id, note)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	link.AddedOn = time.Now().Format("2006-01-02")
	if err := tx.QueryRowContext(ctx, query, link.BoxID, link.ItemID, link.AddedOn, link.AddedByID, link.Note).Scan(&link.ID); err != nil {
		return err
	}

	update := `UPDATE international_boxes SET items_count = items_count + 1,
	           total_weight_kg = total_weight_kg + $1, updated_on = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, update, itemWeightKg, time.Now().Format("2006-01-02"), link.BoxID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *boxRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM international_boxes`).Scan(&count)
	return count, err
}

func (r *boxRepository) CountByStatus(ctx context.Context, status domain.BoxStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM international_boxes WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *boxRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM international_boxes`)
	return err
}
