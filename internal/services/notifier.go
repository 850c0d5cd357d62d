package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// NotifierBalanceReader reads authoritative balances.
type NotifierBalanceReader interface {
	GetBalance(ctx context.Context, userID int64) (*models.Balance, error)
}

// NotifierCacheReader reads the Redis balance mirror.
type NotifierCacheReader interface {
	Get(ctx context.Context, userID int64) (*models.Balance, error)
}

// DefaultSubscribeWindow bounds how long a subscriber is parked before
// the server answers "no update".
const DefaultSubscribeWindow = 30 * time.Second

// NotifierService lets a client long-poll until its cached balance view
// goes stale. The ledger engine calls Notify after every committed
// mutation; subscribers park on a per-user channel instead of polling,
// and every wake-up re-checks the stored balance. The notifier is a
// convenience path only: a lost wake-up just means the client
// re-subscribes.
type NotifierService struct {
	reader NotifierBalanceReader
	cache  NotifierCacheReader // optional fast path
	window time.Duration

	mu      sync.Mutex
	waiters map[int64]chan struct{}
}

// NewNotifierService creates a notifier with the given wait window.
// A non-positive window falls back to DefaultSubscribeWindow.
func NewNotifierService(reader NotifierBalanceReader, cache NotifierCacheReader, window time.Duration) *NotifierService {
	if window <= 0 {
		window = DefaultSubscribeWindow
	}
	return &NotifierService{
		reader:  reader,
		cache:   cache,
		window:  window,
		waiters: make(map[int64]chan struct{}),
	}
}

// Notify wakes all subscribers parked on the user. Closing the channel
// broadcasts to every waiter at once; the next waiter recreates it.
func (s *NotifierService) Notify(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.waiters[userID]; ok {
		close(ch)
		delete(s.waiters, userID)
	}
}

func (s *NotifierService) signal(userID int64) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.waiters[userID]
	if !ok {
		ch = make(chan struct{})
		s.waiters[userID] = ch
	}
	return ch
}

// current prefers the Redis mirror (refreshed on every ledger write)
// and falls back to Postgres on a miss.
func (s *NotifierService) current(ctx context.Context, userID int64) (*models.Balance, error) {
	if s.cache != nil {
		if balance, err := s.cache.Get(ctx, userID); err == nil {
			return balance, nil
		}
	}
	return s.reader.GetBalance(ctx, userID)
}

// Subscribe blocks until the stored balances differ from the
// client-supplied view, the wait window elapses, or the request context
// is cancelled. It holds no locks while parked.
func (s *NotifierService) Subscribe(ctx context.Context, userID int64, current models.Balance) (*models.Balance, bool, error) {
	deadline := time.NewTimer(s.window)
	defer deadline.Stop()

	for {
		// Register before reading so a write that lands between the read
		// and the wait still wakes us.
		ch := s.signal(userID)

		balance, err := s.current(ctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, false, ErrUserNotFound
			}
			logger.Log.Errorw("failed to read balance for subscriber", "userID", userID, "error", err)
			return nil, false, err
		}

		if balance.Ton != current.Ton || balance.Usdt != current.Usdt {
			return balance, true, nil
		}

		select {
		case <-ch:
		case <-deadline.C:
			return nil, false, nil
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
}
