package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	user := &domain.User{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleViewer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewUserRepository(mock)
	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := NewUserRepository(mock)
	_, err = repo.Create(context.Background(), &domain.User{Email: "dup@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(int64(1), "admin@clickup-api.com", "hash", domain.RoleAdmin, now, now)

	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email").
		WithArgs("admin@clickup-api.com").
		WillReturnRows(rows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByEmail(context.Background(), "admin@clickup-api.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	_, err = repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(int64(2), "editor@clickup-api.com", "hash", domain.RoleEditor, now, now)

	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "editor@clickup-api.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
