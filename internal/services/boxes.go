package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// Box-pick draw probabilities. The play wins if either event fires.
const (
	boxForcedWinChance  = 0.20
	boxRegularWinChance = 0.01
)

// BoxResult is the resolved outcome of a box pick.
type BoxResult struct {
	Win        bool
	Prize      float64 // 2x bet on win, 0 otherwise
	ChosenBox  int
	WinningBox int
}

// BoxesService resolves single-request three-box picks.
type BoxesService struct {
	wallet BetWallet
	games  GameLogAppender
	rng    Rand
}

func NewBoxesService(wallet BetWallet, games GameLogAppender, rng Rand) *BoxesService {
	return &BoxesService{wallet: wallet, games: games, rng: rng}
}

// Play debits the stake, draws the two independent win events and
// resolves the winning box: the chosen one on a win, otherwise a
// uniform pick among the two boxes the player did not choose.
func (s *BoxesService) Play(ctx context.Context, userID int64, username, currency string, bet float64, choice int) (*BoxResult, error) {
	if choice < 1 || choice > 3 {
		return nil, ErrInvalidChoice
	}

	if _, err := s.wallet.InitUser(ctx, userID, username); err != nil {
		return nil, err
	}

	if _, err := s.wallet.Debit(ctx, userID, currency, bet); err != nil {
		return nil, err
	}

	forced := s.rng.Float64() < boxForcedWinChance
	regular := s.rng.Float64() < boxRegularWinChance

	result := &BoxResult{
		Win:       forced || regular,
		ChosenBox: choice,
	}

	if result.Win {
		result.WinningBox = choice
		result.Prize = round2(2 * bet)
		if _, err := s.wallet.Credit(ctx, userID, currency, result.Prize); err != nil {
			logger.Log.Errorw("failed to credit boxes prize", "userID", userID, "prize", result.Prize, "error", err)
			return nil, err
		}
	} else {
		others := make([]int, 0, 2)
		for box := 1; box <= 3; box++ {
			if box != choice {
				others = append(others, box)
			}
		}
		result.WinningBox = others[s.rng.IntN(len(others))]
	}

	record := &models.GameDB{
		ID:     uuid.NewString(),
		UserID: userID,
		Game:   models.GameBoxes,
		Bet:    bet,
		Result: fmt.Sprintf("chose box %d, winning box %d", result.ChosenBox, result.WinningBox),
		Win:    result.Win,
	}
	if err := s.games.Append(ctx, record); err != nil {
		logger.Log.Errorw("failed to append boxes record", "userID", userID, "error", err)
		return nil, err
	}

	return result, nil
}
