package middlewares

import (
	"net/http"
	"net/http/httptest"
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

func TestTxMiddleware(t *testing.T) {
	t.Run("commits_on_success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotNil(t, GetTxFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls_back_on_client_error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls_back_on_server_error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls_back_on_panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		assert.Panics(t, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/game", nil))
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin_failure_answers_500", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(assert.AnError)

		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a transaction")
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetTxFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}

func TestRegisterCommitHook(t *testing.T) {
	t.Run("runs_after_commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var handlerDone, hookRan bool
		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, RegisterCommitHook(r.Context(), func() {
				hookRan = true
				assert.True(t, handlerDone)
			}))
			w.WriteHeader(http.StatusOK)
			handlerDone = true
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.True(t, hookRan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skipped_on_rollback", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		var hookRan bool
		handler := TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			RegisterCommitHook(r.Context(), func() { hookRan = true })
			w.WriteHeader(http.StatusBadRequest)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/game", nil))

		assert.False(t, hookRan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports_missing_transaction", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, RegisterCommitHook(req.Context(), func() {}))
	})
}
