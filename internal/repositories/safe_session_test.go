package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

func TestSafeSessionRepository_Save(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewSafeSessionRepository(db, nil)

	session := &models.SafeSessionDB{
		ID:       "s1",
		UserID:   42,
		Currency: "ton",
		Bet:      30,
		Code:     "415",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO safe_sessions")).
		WithArgs("s1", int64(42), "ton", 30.0, "415").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(ctx, session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSafeSessionRepository_LockAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSafeSessionRepository(db, nil)

		rows := sqlmock.NewRows([]string{"id", "user_id", "currency", "bet", "code", "attempts", "used_hint", "is_finished", "created_at"}).
			AddRow("s1", int64(42), "ton", 30.0, "415", 1, false, false, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs("s1").
			WillReturnRows(rows)

		session, err := repo.LockAndGet(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), session.UserID)
		assert.Equal(t, "415", session.Code)
		assert.Equal(t, 1, session.Attempts)
		assert.False(t, session.IsFinished)
	})

	t.Run("unknown_session", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSafeSessionRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs("s1").
			WillReturnError(sql.ErrNoRows)

		session, err := repo.LockAndGet(ctx, "s1")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, session)
	})
}

func TestSafeSessionRepository_Update(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewSafeSessionRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE safe_sessions")).
		WithArgs("s1", 2, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(ctx, "s1", 2, true, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}
