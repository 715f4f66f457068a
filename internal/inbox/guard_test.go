package inbox_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/inbox"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

var insertPattern = regexp.QuoteMeta(
	`INSERT INTO inbox (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`,
)

func setupGuard(t *testing.T) (*inbox.Guard, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	guard := inbox.NewGuard(logger.NewSlogLogger(logger.EnvLocal), sqlx.NewDb(db, "sqlmock"))

	return guard, mock
}

func TestProcessAppliesFirstDelivery(t *testing.T) {
	guard, mock := setupGuard(t)

	eventID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(insertPattern).
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var handlerCalls int
	applied, err := guard.Process(context.Background(), eventID, func(_ context.Context, tx *sqlx.Tx) error {
		handlerCalls++
		require.NotNil(t, tx)
		return nil
	})

	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, 1, handlerCalls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessSkipsDuplicateEvent(t *testing.T) {
	guard, mock := setupGuard(t)

	eventID := uuid.New()

	// the conflicting insert affects zero rows: the event was applied before
	mock.ExpectBegin()
	mock.ExpectExec(insertPattern).
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	applied, err := guard.Process(context.Background(), eventID, func(_ context.Context, _ *sqlx.Tx) error {
		t.Fatal("handler must not run for a duplicate event")
		return nil
	})

	require.NoError(t, err)
	require.False(t, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessRollsBackOnHandlerError(t *testing.T) {
	guard, mock := setupGuard(t)

	eventID := uuid.New()
	handlerErr := errors.New("settlement failed")

	mock.ExpectBegin()
	mock.ExpectExec(insertPattern).
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	applied, err := guard.Process(context.Background(), eventID, func(_ context.Context, _ *sqlx.Tx) error {
		return handlerErr
	})

	require.ErrorIs(t, err, handlerErr)
	require.False(t, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}
