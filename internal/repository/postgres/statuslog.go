package postgres

import (
	"context"
	"database/sql"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

type statusLogRepository struct {
	db *sql.DB
}

func NewStatusLogRepository(db *sql.DB) repository.StatusLogRepository {
	return &statusLogRepository{db: db}
}

// Append writes one immutable audit entry. There is deliberately no update
// or delete path for status_logs.
func (r *statusLogRepository) Append(ctx context.Context, e *domain.StatusLog) error {
	query := `INSERT INTO status_logs (entity_type, entity_id, status, note, changed_by_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	e.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, e.EntityType, e.EntityID, e.Status, e.Note, e.ChangedByID, e.CreatedAt).Scan(&e.ID)
}

func (r *statusLogRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusLog, error) {
	query := `SELECT id, entity_type, entity_id, status, COALESCE(note, ''), changed_by_id, created_at
	          FROM status_logs WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.StatusLog
	for rows.Next() {
		var e domain.StatusLog
		var changedBy sql.NullInt32
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Status, &e.Note, &changedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		if changedBy.Valid {
			v := changedBy.Int32
			e.ChangedByID = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
