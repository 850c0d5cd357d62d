package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// SafeSessionRepository stores safe-cracker sessions. Sessions are
// written inside the per-request transaction; LockAndGet takes a row
// lock so concurrent guesses against one session serialize.
type SafeSessionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSafeSessionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SafeSessionRepository {
	return &SafeSessionRepository{db: db, txGetter: txGetter}
}

func (r *SafeSessionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a freshly started session.
func (r *SafeSessionRepository) Save(ctx context.Context, s *models.SafeSessionDB) error {
	query := `
		INSERT INTO safe_sessions (id, user_id, currency, bet, code, attempts, used_hint, is_finished, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, FALSE, FALSE, NOW())
	`
	args := []any{s.ID, s.UserID, s.Currency, s.Bet, s.Code}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// LockAndGet reads a session with FOR UPDATE so the guess/hint state
// machine runs under a row lock for the rest of the transaction.
// sql.ErrNoRows means the session does not exist.
func (r *SafeSessionRepository) LockAndGet(ctx context.Context, id string) (*models.SafeSessionDB, error) {
	const query = `
		SELECT id, user_id, currency, bet, code, attempts, used_hint, is_finished, created_at
		FROM safe_sessions
		WHERE id = $1
		FOR UPDATE
	`

	var session models.SafeSessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", session.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update persists the mutable part of the session state machine.
// The code column is immutable and deliberately not part of the update.
func (r *SafeSessionRepository) Update(ctx context.Context, id string, attempts int, usedHint, isFinished bool) error {
	query := `
		UPDATE safe_sessions
		SET attempts = $2, used_hint = $3, is_finished = $4
		WHERE id = $1
	`
	args := []any{id, attempts, usedHint, isFinished}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
