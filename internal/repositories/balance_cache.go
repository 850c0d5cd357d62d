package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// BalanceCacheRepository mirrors last-known balances in Redis. It is a
// convenience read path for the notifier, never the source of truth:
// a miss simply falls back to Postgres.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached balances
}

// NewBalanceCacheRepository creates a new cache repository with optional TTL.
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(userID int64) string {
	return fmt.Sprintf("balance:%d", userID)
}

// Get fetches the cached balances for a user. A cache miss is reported
// as an error so callers fall through to the database.
func (r *BalanceCacheRepository) Get(ctx context.Context, userID int64) (*models.Balance, error) {
	key := balanceKey(userID)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("balance cache get",
			"key", key,
			"error", err,
		)
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("balance not cached for user %d", userID)
	}

	ton, err := strconv.ParseFloat(vals[models.TON], 64)
	if err != nil {
		return nil, err
	}
	usdt, err := strconv.ParseFloat(vals[models.USDT], 64)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("balance cache get",
		"key", key,
		"result", vals,
	)

	return &models.Balance{Ton: ton, Usdt: usdt}, nil
}

// Set overwrites the cached balances after a committed ledger write.
func (r *BalanceCacheRepository) Set(ctx context.Context, userID int64, balance models.Balance) error {
	key := balanceKey(userID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		models.TON, strconv.FormatFloat(balance.Ton, 'f', -1, 64),
		models.USDT, strconv.FormatFloat(balance.Usdt, 'f', -1, 64),
	)
	if r.exp > 0 {
		pipe.Expire(ctx, key, r.exp)
	}
	_, err := pipe.Exec(ctx)

	logger.Log.Infow("balance cache set",
		"key", key,
		"balance", balance,
		"error", err,
	)

	return err
}

// Ping reports Redis connectivity for the health probe.
func (r *BalanceCacheRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
