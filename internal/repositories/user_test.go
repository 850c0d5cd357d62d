package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT ton_balance, usdt_balance")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"ton_balance", "usdt_balance"}).
				AddRow(100.5, 50.0))

		balance, err := repo.GetBalance(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, 100.5, balance.Ton)
		assert.Equal(t, 50.0, balance.Usdt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT ton_balance, usdt_balance")).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		balance, err := repo.GetBalance(ctx, 42)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, balance)
	})
}

func TestUserReadRepository_JoinsRequestTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("reads_through_the_transaction", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		tx, err := db.Beginx()
		assert.NoError(t, err)

		repo := NewUserReadRepository(db, func(context.Context) *sqlx.Tx { return tx })
		assert.Same(t, tx, repo.executor(ctx))

		// an uncommitted INSERT from earlier in the request is visible:
		// the SELECT runs on the same transaction, after Begin
		mock.ExpectQuery(regexp.QuoteMeta("SELECT ton_balance, usdt_balance")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"ton_balance", "usdt_balance"}).
				AddRow(0.0, 0.0))
		mock.ExpectCommit()

		balance, err := repo.GetBalance(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, balance.Ton)

		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls_back_to_the_pool_without_a_transaction", func(t *testing.T) {
		db, _ := newMockDB(t)

		repo := NewUserReadRepository(db, func(context.Context) *sqlx.Tx { return nil })
		assert.Same(t, db, repo.executor(ctx))
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("first_insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(int64(42), "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, 42, "alice"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated_insert_is_noop", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db, nil)

		// ON CONFLICT DO NOTHING: zero rows affected, no error
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(int64(42), "alice").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Save(ctx, 42, "alice"))
	})
}
