package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// seedUsers are the default accounts created for each role. The passwords
// are development fixtures only.
var seedUsers = []struct {
	email    string
	password string
	role     string
}{
	{"admin@clickup-api.com", "Admin123!", domain.RoleAdmin},
	{"editor@clickup-api.com", "Editor123!", domain.RoleEditor},
	{"viewer@clickup-api.com", "Viewer123!", domain.RoleViewer},
}

// Seed creates the default admin/editor/viewer accounts. It is idempotent:
// when the admin account already exists the whole seed is skipped.
func Seed(ctx context.Context, db DB, log zerolog.Logger) error {
	repo := NewUserRepository(db)

	if _, err := repo.FindByEmail(ctx, seedUsers[0].email); err == nil {
		log.Info().Msg("admin user already exists, skipping seeding")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user, err := repo.Create(ctx, &domain.User{
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}
		log.Info().Int64("id", user.ID).Str("email", user.Email).Str("role", user.Role).Msg("seeded user")
	}

	return nil
}
