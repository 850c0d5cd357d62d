package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// balanceColumn maps a normalized currency code to its users column.
// The set is closed; callers validate the currency before reaching here.
func balanceColumn(currency string) (string, bool) {
	switch models.NormalizeCurrency(currency) {
	case models.TON:
		return "ton_balance", true
	case models.USDT:
		return "usdt_balance", true
	}
	return "", false
}

// BalanceWriteRepository performs atomic balance mutations.
type BalanceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBalanceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BalanceWriteRepository {
	return &BalanceWriteRepository{db: db, txGetter: txGetter}
}

func (r *BalanceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Debit decreases the named balance in a single conditional UPDATE.
// The balance guard is evaluated by Postgres in the same statement, so
// two concurrent debits can never both pass a stale balance check.
// sql.ErrNoRows means the guard failed: the user is missing or the
// balance is below amount. Both balances come back via RETURNING so the
// caller has the post-mutation state without another read.
func (r *BalanceWriteRepository) Debit(ctx context.Context, userID int64, currency string, amount float64) (*models.Balance, error) {
	column, ok := balanceColumn(currency)
	if !ok {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %[1]s = %[1]s - $1, updated_at = NOW()
		WHERE id = $2
		  AND %[1]s >= $1
		RETURNING ton_balance, usdt_balance
	`, column)
	args := []any{amount, userID}

	var balance models.Balance
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", balance,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Credit increases the named balance. sql.ErrNoRows means the user does not exist.
func (r *BalanceWriteRepository) Credit(ctx context.Context, userID int64, currency string, amount float64) (*models.Balance, error) {
	column, ok := balanceColumn(currency)
	if !ok {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %[1]s = %[1]s + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ton_balance, usdt_balance
	`, column)
	args := []any{amount, userID}

	var balance models.Balance
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", balance,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &balance, nil
}
