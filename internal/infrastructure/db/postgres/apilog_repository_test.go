package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

func TestAPILogRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	entry := domain.APILogEntry{
		UserID:     7,
		Endpoint:   "/api/tasks/abc123",
		Method:     "GET",
		StatusCode: 200,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO api_logs").
		WithArgs(entry.UserID, entry.Endpoint, entry.Method, entry.StatusCode, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewAPILogRepository(mock)
	require.NoError(t, repo.Insert(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPILogRepository_Insert_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO api_logs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	repo := NewAPILogRepository(mock)
	err = repo.Insert(context.Background(), domain.APILogEntry{UserID: 1})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
