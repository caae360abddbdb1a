package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

const intlOrderColumns = `id, customer_id, marketplace, COALESCE(marketplace_order_ref, ''), COALESCE(order_url, ''),
	COALESCE(currency, ''), COALESCE(total_amount_cents, 0), status, created_on, updated_on`

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateInternational(ctx context.Context, o *domain.InternationalOrder) error {
	query := `INSERT INTO international_orders (customer_id, marketplace, marketplace_order_ref, order_url,
	          currency, total_amount_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().Format("2006-01-02")
	o.CreatedOn = now
	o.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		o.CustomerID, o.Marketplace, o.MarketplaceOrderRef, o.OrderURL,
		o.Currency, o.TotalAmountCents, o.Status, o.CreatedOn, o.UpdatedOn,
	).Scan(&o.ID)
}

func (r *orderRepository) GetInternationalByID(ctx context.Context, id int32) (*domain.InternationalOrder, error) {
	query := `SELECT ` + intlOrderColumns + ` FROM international_orders WHERE id = $1`
	o := &domain.InternationalOrder{}
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.Marketplace, &o.MarketplaceOrderRef, &o.OrderURL,
		&o.Currency, &o.TotalAmountCents, &o.Status, &createdOn, &updatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	o.CreatedOn = createdOn.Format("2006-01-02")
	o.UpdatedOn = updatedOn.Format("2006-01-02")
	return o, nil
}

func (r *orderRepository) ListInternationalByCustomer(ctx context.Context, customerID int32) ([]domain.InternationalOrder, error) {
	query := `SELECT ` + intlOrderColumns + ` FROM international_orders WHERE customer_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.InternationalOrder
	for rows.Next() {
		var o domain.InternationalOrder
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.Marketplace, &o.MarketplaceOrderRef, &o.OrderURL,
			&o.Currency, &o.TotalAmountCents, &o.Status, &createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		o.CreatedOn = createdOn.Format("2006-01-02")
		o.UpdatedOn = updatedOn.Format("2006-01-02")
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateInternationalStatus(ctx context.Context, id int32, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE international_orders SET status=$1, updated_on=$2 WHERE id=$3`,
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

func (r *orderRepository) CreateLabel(ctx context.Context, l *domain.ShipmentLabel) error {
	query := `INSERT INTO shipment_labels (barcode_number, customer_id, international_order_id, is_printed, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	l.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, l.BarcodeNumber, l.CustomerID, l.InternationalOrderID, l.IsPrinted, l.CreatedOn).Scan(&l.ID)
}

func (r *orderRepository) GetLabelByOrder(ctx context.Context, orderID int32) (*domain.ShipmentLabel, error) {
	query := `SELECT id, barcode_number, customer_id, international_order_id, is_printed, created_on
	          FROM shipment_labels WHERE international_order_id = $1`
	l := &domain.ShipmentLabel{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&l.ID, &l.BarcodeNumber, &l.CustomerID, &l.InternationalOrderID, &l.IsPrinted, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	l.CreatedOn = createdOn.Format("2006-01-02")
	return l, nil
}

func (r *orderRepository) CreateDomestic(ctx context.Context, o *domain.DomesticOrder) error {
	query := `INSERT INTO domestic_orders (customer_id, shipping_address, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	o.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, o.CustomerID, o.ShippingAddress, o.Status, o.CreatedOn).Scan(&o.ID)
}

func (r *orderRepository) GetDomesticByID(ctx context.Context, id int32) (*domain.DomesticOrder, error) {
	query := `SELECT id, customer_id, shipping_address, status, created_on FROM domestic_orders WHERE id = $1`
	o := &domain.DomesticOrder{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.ShippingAddress, &o.Status, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	o.CreatedOn = createdOn.Format("2006-01-02")
	return o, nil
}

func (r *orderRepository) UpdateDomesticStatus(ctx context.Context, id int32, status domain.DomesticOrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE domestic_orders SET status=$1 WHERE id=$2`, status, id)
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
