package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
	"github.com/segmentio/kafka-go"
)

// UserWriter creates accounts idempotently.
type UserWriter interface {
	Save(ctx context.Context, userID int64, username string) error
}

// BalanceReader reads both balances for a user.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID int64) (*models.Balance, error)
}

// BalanceWriter performs atomic single-statement balance mutations and
// returns the post-mutation state of both balances.
type BalanceWriter interface {
	Debit(ctx context.Context, userID int64, currency string, amount float64) (*models.Balance, error)
	Credit(ctx context.Context, userID int64, currency string, amount float64) (*models.Balance, error)
}

// BalanceCacheWriter mirrors committed balances for the notifier's fast path.
type BalanceCacheWriter interface {
	Set(ctx context.Context, userID int64, balance models.Balance) error
}

// BalanceChangeNotifier wakes long-poll subscribers after a balance write.
type BalanceChangeNotifier interface {
	Notify(userID int64)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WalletService is the balance ledger engine. Every balance mutation in
// the system goes through it: direct top-ups, prizes, and the stakes and
// payouts of all game engines.
type WalletService struct {
	userRepo    UserWriter
	readRepo    BalanceReader
	writeRepo   BalanceWriter
	cacheRepo   BalanceCacheWriter
	notifier    BalanceChangeNotifier
	kafkaWriter KafkaWriter
	onCommit    func(ctx context.Context, fn func()) bool
}

// NewWalletService creates a new WalletService. cacheRepo, notifier and
// kafkaWriter are optional. onCommit queues a side effect to run after
// the request transaction commits; when nil, or when the context carries
// no transaction, side effects run immediately.
func NewWalletService(
	userRepo UserWriter,
	readRepo BalanceReader,
	writeRepo BalanceWriter,
	cacheRepo BalanceCacheWriter,
	notifier BalanceChangeNotifier,
	kafkaWriter KafkaWriter,
	onCommit func(ctx context.Context, fn func()) bool,
) *WalletService {
	return &WalletService{
		userRepo:    userRepo,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
		onCommit:    onCommit,
	}
}

// deferToCommit runs fn after the request transaction commits, or right
// away when there is no transaction to wait for.
func (s *WalletService) deferToCommit(ctx context.Context, fn func()) {
	if s.onCommit != nil && s.onCommit(ctx, fn) {
		return
	}
	fn()
}

// publishTransaction publishes a settled mutation to Kafka.
func (s *WalletService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(txn.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

// afterMutation refreshes the balance mirror, wakes subscribers and
// publishes the transaction event, all after the request transaction
// commits so no subscriber or consumer ever observes a rolled-back
// write. balance is the post-mutation state the UPDATE returned.
// Failures here never fail the operation itself: the ledger row is
// authoritative.
func (s *WalletService) afterMutation(ctx context.Context, userID int64, balance models.Balance, currency string, amount float64, operation string) {
	s.deferToCommit(ctx, func() {
		if s.cacheRepo != nil {
			if err := s.cacheRepo.Set(ctx, userID, balance); err != nil {
				logger.Log.Errorw("failed to refresh balance cache", "userID", userID, "error", err)
			}
		}

		if s.notifier != nil {
			s.notifier.Notify(userID)
		}

		s.publishTransaction(ctx, models.Transaction{
			TransactionID: uuid.NewString(),
			Timestamp:     time.Now().Unix(),
			UserID:        userID,
			Currency:      models.NormalizeCurrency(currency),
			Amount:        amount,
			Operation:     operation,
		})
	})
}

// InitUser creates the account on first call and returns current
// balances. Calling it again for the same id is a no-op read.
func (s *WalletService) InitUser(ctx context.Context, userID int64, username string) (*models.Balance, error) {
	if err := s.userRepo.Save(ctx, userID, username); err != nil {
		logger.Log.Errorw("failed to save user", "userID", userID, "error", err)
		return nil, err
	}

	balance, err := s.readRepo.GetBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read balance after init", "userID", userID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		snapshot := *balance
		s.deferToCommit(ctx, func() {
			if err := s.cacheRepo.Set(ctx, userID, snapshot); err != nil {
				logger.Log.Errorw("failed to cache balance after init", "userID", userID, "error", err)
			}
		})
	}

	return balance, nil
}

// GetBalance returns both balances for a user.
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (*models.Balance, error) {
	balance, err := s.readRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
		return nil, err
	}
	return balance, nil
}

// Credit atomically increases the named balance and returns the new value.
func (s *WalletService) Credit(ctx context.Context, userID int64, currency string, amount float64) (float64, error) {
	if !models.IsValidCurrency(currency) {
		return 0, ErrInvalidCurrency
	}

	balance, err := s.writeRepo.Credit(ctx, userID, currency, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to credit", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	s.afterMutation(ctx, userID, *balance, currency, amount, "credit")
	return balance.Of(currency), nil
}

// Debit atomically decreases the named balance, rejecting the mutation
// when the balance is below amount. The guard runs inside the UPDATE
// statement, so concurrent debits cannot overdraw the account.
func (s *WalletService) Debit(ctx context.Context, userID int64, currency string, amount float64) (float64, error) {
	if !models.IsValidCurrency(currency) {
		return 0, ErrInvalidCurrency
	}

	balance, err := s.writeRepo.Debit(ctx, userID, currency, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The conditional UPDATE matched nothing: either the user is
			// missing or the balance is short. Disambiguate with a read.
			if _, readErr := s.readRepo.GetBalance(ctx, userID); readErr != nil {
				return 0, ErrUserNotFound
			}
			return 0, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	s.afterMutation(ctx, userID, *balance, currency, amount, "debit")
	return balance.Of(currency), nil
}

// AddPrize credits a prize amount and returns the new balance.
func (s *WalletService) AddPrize(ctx context.Context, userID int64, currency string, amount float64) (float64, error) {
	if !models.IsValidCurrency(currency) {
		return 0, ErrInvalidCurrency
	}

	balance, err := s.writeRepo.Credit(ctx, userID, currency, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to add prize", "userID", userID, "currency", currency, "amount", amount, "error", err)
		return 0, err
	}

	s.afterMutation(ctx, userID, *balance, currency, amount, "prize")
	return balance.Of(currency), nil
}
