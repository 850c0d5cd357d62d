package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// GameLogAppender appends completed game rows.
type GameLogAppender interface {
	Append(ctx context.Context, game *models.GameDB) error
}

// GameHistoryReader lists a user's plays, newest first.
type GameHistoryReader interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.GameDB, error)
}

// BetWallet is the slice of the ledger engine the game engines consume.
type BetWallet interface {
	InitUser(ctx context.Context, userID int64, username string) (*models.Balance, error)
	GetBalance(ctx context.Context, userID int64) (*models.Balance, error)
	Debit(ctx context.Context, userID int64, currency string, amount float64) (float64, error)
	Credit(ctx context.Context, userID int64, currency string, amount float64) (float64, error)
}

// historyLimit caps GET /games responses; the log itself is unbounded.
const historyLimit = 100

// GameService implements the generic record-and-settle path and history
// listing for clients that resolve game outcomes themselves.
type GameService struct {
	wallet BetWallet
	games  GameLogAppender
	hist   GameHistoryReader
}

func NewGameService(wallet BetWallet, games GameLogAppender, hist GameHistoryReader) *GameService {
	return &GameService{wallet: wallet, games: games, hist: hist}
}

// Record settles a client-reported play: the stake is debited first, a
// win credits the prize (2x bet unless the caller supplied an amount),
// and a completed row is appended. Returns the post-settlement balances.
func (s *GameService) Record(ctx context.Context, userID int64, game string, bet float64, result string, win bool, currency string, prizeAmount float64) (*models.Balance, error) {
	if _, err := s.wallet.Debit(ctx, userID, currency, bet); err != nil {
		return nil, err
	}

	if win {
		prize := prizeAmount
		if prize <= 0 {
			prize = round2(2 * bet)
		}
		if _, err := s.wallet.Credit(ctx, userID, currency, prize); err != nil {
			logger.Log.Errorw("failed to credit prize", "userID", userID, "game", game, "prize", prize, "error", err)
			return nil, err
		}
	}

	record := &models.GameDB{
		ID:     uuid.NewString(),
		UserID: userID,
		Game:   game,
		Bet:    bet,
		Result: result,
		Win:    win,
	}
	if err := s.games.Append(ctx, record); err != nil {
		logger.Log.Errorw("failed to append game record", "userID", userID, "game", game, "error", err)
		return nil, err
	}

	return s.wallet.GetBalance(ctx, userID)
}

// History returns the user's plays ordered by recency.
func (s *GameService) History(ctx context.Context, userID int64) ([]models.GameDB, error) {
	games, err := s.hist.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		logger.Log.Errorw("failed to list games", "userID", userID, "error", err)
		return nil, err
	}
	return games, nil
}
