package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

const requestColumns = `id, customer_id, subject, message, charge_cents, item_id, box_id, status, created_on`

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO item_requests (customer_id, subject, message, charge_cents, item_id, box_id, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	req.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		req.CustomerID, req.Subject, req.Message, req.ChargeCents, req.ItemID, req.BoxID, req.Status, req.CreatedOn,
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM item_requests WHERE id = $1`
	req := &domain.ItemRequest{}
	var createdOn time.Time
	var itemID, boxID sql.NullInt32
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.CustomerID, &req.Subject, &req.Message, &req.ChargeCents,
		&itemID, &boxID, &req.Status, &createdOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if itemID.Valid {
		v := itemID.Int32
		req.ItemID = &v
	}
	if boxID.Valid {
		v := boxID.Int32
		req.BoxID = &v
	}
	req.CreatedOn = createdOn.Format("2006-01-02")
	return req, nil
}

func (r *requestRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM item_requests WHERE customer_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		var createdOn time.Time
		var itemID, boxID sql.NullInt32
		if err := rows.Scan(
			&req.ID, &req.CustomerID, &req.Subject, &req.Message, &req.ChargeCents,
			&itemID, &boxID, &req.Status, &createdOn,
		); err != nil {
			return nil, err
		}
		if itemID.Valid {
			v := itemID.Int32
			req.ItemID = &v
		}
		if boxID.Valid {
			v := boxID.Int32
			req.BoxID = &v
		}
		req.CreatedOn = createdOn.Format("2006-01-02")
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE item_requests SET status=$1 WHERE id=$2`, status, id)
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
