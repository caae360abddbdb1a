package postgres

import (
	"context"
	"database/sql"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Revoke(ctx context.Context, t *domain.RevokedToken) error {
	query := `INSERT INTO revoked_tokens (jti, user_id, expires_at, revoked_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	t.RevokedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, t.JTI, t.UserID, t.ExpiresAt, t.RevokedAt).Scan(&t.ID)
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti).Scan(&exists)
	return exists, err
}

// PurgeExpired drops blacklist rows whose tokens have expired anyway.
func (r *tokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err)
		return 0, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("DELETE", affected, err)
	return affected, err
}
