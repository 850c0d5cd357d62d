package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is stored in the request context so repositories can
// join it via their txGetter. It commits only when the handler reported
// a success status; any 4xx/5xx response rolls the whole request back,
// which keeps the stake debit and the game/session rows atomic as one unit.
// Side effects queued with RegisterCommitHook run only after a successful
// commit, never on rollback.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			entry := &txEntry{tx: tx}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := setTxToContext(r.Context(), entry)
			r = r.WithContext(ctx)

			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "status", rw.statusCode, "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				return
			}

			for _, hook := range entry.hooks {
				hook()
			}
		})
	}
}

// txEntry carries the request transaction and the side effects to run
// once it commits.
type txEntry struct {
	tx    *sqlx.Tx
	hooks []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction entry in the context
func setTxToContext(ctx context.Context, entry *txEntry) context.Context {
	return context.WithValue(ctx, txKey, entry)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if entry, ok := ctx.Value(txKey).(*txEntry); ok {
		return entry.tx
	}
	return nil
}

// RegisterCommitHook queues fn to run after the request transaction
// commits. It reports false when the context carries no transaction, in
// which case the caller should run fn itself.
func RegisterCommitHook(ctx context.Context, fn func()) bool {
	entry, ok := ctx.Value(txKey).(*txEntry)
	if !ok {
		return false
	}
	entry.hooks = append(entry.hooks, fn)
	return true
}
