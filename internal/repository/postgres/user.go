package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

const userColumns = `id, username, email, first_name, last_name, password_hash, role, is_superuser, is_staff,
	COALESCE(phone, ''), COALESCE(country, ''), COALESCE(city, ''), COALESCE(address, ''),
	email_notifications, sms_notifications, COALESCE(timezone, ''), created_on, updated_on`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, first_name, last_name, password_hash, role, is_superuser, is_staff,
	          phone, country, city, address, email_notifications, sms_notifications, timezone, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now().Format("2006-01-02")
	u.CreatedOn = now
	u.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Role, u.IsSuperuser, u.IsStaff,
		u.Phone, u.Country, u.City, u.Address, u.EmailNotifications, u.SMSNotifications, u.Timezone,
		u.CreatedOn, u.UpdatedOn,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role,
		&u.IsSuperuser, &u.IsStaff, &u.Phone, &u.Country, &u.City, &u.Address,
		&u.EmailNotifications, &u.SMSNotifications, &u.Timezone, &createdOn, &updatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, phone=$3, country=$4, city=$5, address=$6,
	          email_notifications=$7, sms_notifications=$8, timezone=$9, updated_on=$10 WHERE id=$11`
	u.UpdatedOn = time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query,
		u.FirstName, u.LastName, u.Phone, u.Country, u.City, u.Address,
		u.EmailNotifications, u.SMSNotifications, u.Timezone, u.UpdatedOn, u.ID)
	return err
}

func (r *userRepository) ListCustomers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND NOT is_superuser AND NOT is_staff ORDER BY id`
	logger.DatabaseCall("SELECT", "users by role", "role", domain.RoleCustomer)
	rows, err := r.db.QueryContext(ctx, query, domain.RoleCustomer)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role,
			&u.IsSuperuser, &u.IsStaff, &u.Phone, &u.Country, &u.City, &u.Address,
			&u.EmailNotifications, &u.SMSNotifications, &u.Timezone, &createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		u.UpdatedOn = updatedOn.Format("2006-01-02")
		users = append(users, u)
	}
	logger.DatabaseResult("SELECT", int64(len(users)), rows.Err())
	return users, rows.Err()
}

func (r *userRepository) CountCustomers(ctx context.Context) (int32, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND NOT is_superuser AND NOT is_staff`
	var count int32
	err := r.db.QueryRowContext(ctx, query, domain.RoleCustomer).Scan(&count)
	return count, err
}

// DeleteAllExcept is development-only bulk-clear tooling.
func (r *userRepository) DeleteAllExcept(ctx context.Context, keepUsername string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username <> $1`, keepUsername)
	return err
}
