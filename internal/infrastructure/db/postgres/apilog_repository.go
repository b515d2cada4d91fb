package postgres

import (
	"context"
	"fmt"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// APILogRepository appends usage records. Entries are never updated or
// deleted by the gateway.
type APILogRepository struct {
	db DB
}

func NewAPILogRepository(db DB) *APILogRepository {
	return &APILogRepository{db: db}
}

func (r *APILogRepository) Insert(ctx context.Context, entry domain.APILogEntry) error {
	sql := `INSERT INTO api_logs (user_id, endpoint, method, status_code, created_at)
	        VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, sql, entry.UserID, entry.Endpoint, entry.Method, entry.StatusCode, entry.CreatedAt); err != nil {
		return fmt.Errorf("insert api log: %w", err)
	}
	return nil
}
