package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockTransactor(t *testing.T, maxRetries uint64) (*Transactor, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	tr := NewTransactor(sqlx.NewDb(db, "sqlmock"), maxRetries)
	tr.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	return tr, mock, func() { db.Close() }
}

func TestTransactor_Commit(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, GetTxFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollbackOnError(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	calls := 0
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "non-retryable errors must not be retried")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RetriesSerializationFailure(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: codeSerializationFailure}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RetriesCommitConflict(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: codeSerializationFailure})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RetriesExhausted(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 2)
	defer cleanup()

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return &pgconn.PgError{Code: codeDeadlockDetected}
	})

	assert.Error(t, err)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, 3, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginError(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Nested(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tr.WithinTx(context.Background(), func(outer context.Context) error {
		return tr.WithinTx(outer, func(inner context.Context) error {
			assert.Same(t, GetTxFromContext(outer), GetTxFromContext(inner))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Panic(t *testing.T) {
	tr, mock, cleanup := newMockTransactor(t, 3)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tr.WithinTx(context.Background(), func(ctx context.Context) error {
			panic("test panic")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
