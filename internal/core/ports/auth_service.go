package ports

import (
	"context"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier validates a signed bearer token and returns the identity
// embedded in it. Every failure mode (malformed, bad signature, expired)
// surfaces as domain.ErrInvalidToken; callers must not distinguish.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
