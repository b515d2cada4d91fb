package ports

import (
	"context"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// APILogRepository persists append-only API usage records.
type APILogRepository interface {
	Insert(ctx context.Context, entry domain.APILogEntry) error
}
