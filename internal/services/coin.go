package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// Coin sides accepted by the coin-flip game.
const (
	CoinHeads = "heads"
	CoinTails = "tails"
)

// coinWinChance is 2 in 12.
const coinWinNumerator, coinWinDenominator = 2, 12

// CoinResult is the resolved outcome of a single flip.
type CoinResult struct {
	Side  string  // side revealed to the player
	Win   bool
	Prize float64 // 2x bet on win, 0 otherwise
}

// CoinService resolves single-request coin flips. The stake is debited
// before the draw; a failed debit rejects the play with no record.
type CoinService struct {
	wallet BetWallet
	games  GameLogAppender
	rng    Rand
}

func NewCoinService(wallet BetWallet, games GameLogAppender, rng Rand) *CoinService {
	return &CoinService{wallet: wallet, games: games, rng: rng}
}

func oppositeSide(side string) string {
	if side == CoinHeads {
		return CoinTails
	}
	return CoinHeads
}

// Play flips the coin for the given stake. The win chance is fixed at
// 2/12; a losing flip always reveals the side the player did not pick.
func (s *CoinService) Play(ctx context.Context, userID int64, username, currency string, bet float64, choice string) (*CoinResult, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if choice != CoinHeads && choice != CoinTails {
		return nil, ErrInvalidChoice
	}

	// /coin/start carries the username, so the account is created lazily.
	if _, err := s.wallet.InitUser(ctx, userID, username); err != nil {
		return nil, err
	}

	if _, err := s.wallet.Debit(ctx, userID, currency, bet); err != nil {
		return nil, err
	}

	result := &CoinResult{}
	result.Win = s.rng.IntN(coinWinDenominator) < coinWinNumerator

	if result.Win {
		result.Side = choice
		result.Prize = round2(2 * bet)
		if _, err := s.wallet.Credit(ctx, userID, currency, result.Prize); err != nil {
			logger.Log.Errorw("failed to credit coin prize", "userID", userID, "prize", result.Prize, "error", err)
			return nil, err
		}
	} else {
		result.Side = oppositeSide(choice)
	}

	record := &models.GameDB{
		ID:     uuid.NewString(),
		UserID: userID,
		Game:   models.GameCoin,
		Bet:    bet,
		Result: fmt.Sprintf("chose %s, landed %s", choice, result.Side),
		Win:    result.Win,
	}
	if err := s.games.Append(ctx, record); err != nil {
		logger.Log.Errorw("failed to append coin record", "userID", userID, "error", err)
		return nil, err
	}

	return result, nil
}
