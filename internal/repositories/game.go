package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// GameWriteRepository appends and completes game log rows.
type GameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameWriteRepository {
	return &GameWriteRepository{db: db, txGetter: txGetter}
}

func (r *GameWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Append inserts a completed, immutable game row.
func (r *GameWriteRepository) Append(ctx context.Context, game *models.GameDB) error {
	query := `
		INSERT INTO games (id, user_id, game, bet, result, win, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{game.ID, game.UserID, game.Game, game.Bet, game.Result, game.Win}

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

// AppendPending opens a game row for a multi-step game. The row stays
// result="pending", win=false until Complete is called.
func (r *GameWriteRepository) AppendPending(ctx context.Context, id string, userID int64, game string, bet float64) error {
	query := `
		INSERT INTO games (id, user_id, game, bet, result, win, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
	`
	args := []any{id, userID, game, bet, models.ResultPending}

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

// Complete resolves a pending row. The transition is one-way: a row
// that already left "pending" is never touched again.
func (r *GameWriteRepository) Complete(ctx context.Context, id string, result string, win bool) error {
	query := `
		UPDATE games
		SET result = $2, win = $3
		WHERE id = $1
		  AND result = $4
	`
	args := []any{id, result, win, models.ResultPending}

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

// GameReadRepository lists game history.
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// ListByUser returns the most recent plays first, capped at limit rows.
func (r *GameReadRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.GameDB, error) {
	const query = `
		SELECT id, user_id, game, bet, result, win, created_at
		FROM games
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var games []models.GameDB
	err := r.db.SelectContext(ctx, &games, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(games),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return games, nil
}
