package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// Safe-cracker payout policy: the prize is 3x the bet and a hint costs
// a third of the bet. The source evolved through several multipliers;
// this pair keeps the expected value of a hinted game below 1.
const safePrizeMultiplier = 3.0

// SafeSessionStore persists safe-cracker sessions under a row lock.
type SafeSessionStore interface {
	Save(ctx context.Context, s *models.SafeSessionDB) error
	LockAndGet(ctx context.Context, id string) (*models.SafeSessionDB, error)
	Update(ctx context.Context, id string, attempts int, usedHint, isFinished bool) error
}

// PendingGameLog opens and resolves pending game rows.
type PendingGameLog interface {
	AppendPending(ctx context.Context, id string, userID int64, game string, bet float64) error
	Complete(ctx context.Context, id string, result string, win bool) error
}

// SafeGuessResult is the answer to one guess.
type SafeGuessResult struct {
	Result       string  // "win", "lose" or "try_again"
	Prize        float64 // credited on win
	Code         []int   // revealed on win and on the final miss
	AttemptsLeft int     // populated for "try_again"
}

// SafeService runs the safe-cracker state machine: a session starts
// active, allows up to three guesses and one bought hint, and finishes
// exactly once, on a correct guess or on the third miss.
type SafeService struct {
	wallet   BetWallet
	games    PendingGameLog
	sessions SafeSessionStore
	rng      Rand
}

func NewSafeService(wallet BetWallet, games PendingGameLog, sessions SafeSessionStore, rng Rand) *SafeService {
	return &SafeService{wallet: wallet, games: games, sessions: sessions, rng: rng}
}

// hintCost is bet/3 rounded to cents, never below one cent.
func hintCost(bet float64) float64 {
	cost := round2(bet / 3)
	if cost < 0.01 {
		cost = 0.01
	}
	return cost
}

func codeDigits(code string) []int {
	digits := make([]int, 0, len(code))
	for _, c := range code {
		digits = append(digits, int(c-'0'))
	}
	return digits
}

// Start debits the stake, generates the secret code and opens the
// session together with its pending game row. All writes share the
// request transaction, so a later failure rolls the debit back.
func (s *SafeService) Start(ctx context.Context, userID int64, currency string, bet float64) (sessionID string, balance float64, err error) {
	balance, err = s.wallet.Debit(ctx, userID, currency, bet)
	if err != nil {
		return "", 0, err
	}

	sessionID = uuid.NewString()

	if err = s.games.AppendPending(ctx, sessionID, userID, models.GameSafeCracker, bet); err != nil {
		logger.Log.Errorw("failed to open pending safe game", "userID", userID, "error", err)
		return "", 0, err
	}

	code := fmt.Sprintf("%d%d%d", s.rng.IntN(10), s.rng.IntN(10), s.rng.IntN(10))

	session := &models.SafeSessionDB{
		ID:       sessionID,
		UserID:   userID,
		Currency: models.NormalizeCurrency(currency),
		Bet:      bet,
		Code:     code,
	}
	if err = s.sessions.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save safe session", "userID", userID, "error", err)
		return "", 0, err
	}

	return sessionID, balance, nil
}

// loadOwned fetches a live session owned by the caller.
func (s *SafeService) loadOwned(ctx context.Context, sessionID string, userID int64) (*models.SafeSessionDB, error) {
	session, err := s.sessions.LockAndGet(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		logger.Log.Errorw("failed to load safe session", "sessionID", sessionID, "error", err)
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}
	if session.IsFinished || session.Attempts >= models.MaxSafeAttempts {
		return nil, ErrSessionFinished
	}
	return session, nil
}

// Guess applies one guess to the session. An exact sequence match wins
// 3x the bet; the third miss finishes the session and reveals the code.
func (s *SafeService) Guess(ctx context.Context, sessionID string, userID int64, guess []int) (*SafeGuessResult, error) {
	if len(guess) != 3 {
		return nil, ErrInvalidGuess
	}
	for _, d := range guess {
		if d < 0 || d > 9 {
			return nil, ErrInvalidGuess
		}
	}

	session, err := s.loadOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	guessed := fmt.Sprintf("%d%d%d", guess[0], guess[1], guess[2])
	attempts := session.Attempts + 1

	if guessed == session.Code {
		prize := round2(safePrizeMultiplier * session.Bet)
		if _, err := s.wallet.Credit(ctx, userID, session.Currency, prize); err != nil {
			logger.Log.Errorw("failed to credit safe prize", "userID", userID, "prize", prize, "error", err)
			return nil, err
		}
		if err := s.games.Complete(ctx, sessionID, "cracked the code", true); err != nil {
			return nil, err
		}
		if err := s.sessions.Update(ctx, sessionID, attempts, session.UsedHint, true); err != nil {
			return nil, err
		}
		return &SafeGuessResult{Result: "win", Prize: prize, Code: codeDigits(session.Code)}, nil
	}

	if attempts >= models.MaxSafeAttempts {
		if err := s.games.Complete(ctx, sessionID, "failed to crack the code", false); err != nil {
			return nil, err
		}
		if err := s.sessions.Update(ctx, sessionID, attempts, session.UsedHint, true); err != nil {
			return nil, err
		}
		return &SafeGuessResult{Result: "lose", Code: codeDigits(session.Code)}, nil
	}

	if err := s.sessions.Update(ctx, sessionID, attempts, session.UsedHint, false); err != nil {
		return nil, err
	}
	return &SafeGuessResult{Result: "try_again", AttemptsLeft: models.MaxSafeAttempts - attempts}, nil
}

// Hint sells the first digit of the code, at most once per session.
func (s *SafeService) Hint(ctx context.Context, sessionID string, userID int64) (digit int, cost float64, err error) {
	session, err := s.loadOwned(ctx, sessionID, userID)
	if err != nil {
		return 0, 0, err
	}
	if session.UsedHint {
		return 0, 0, ErrHintAlreadyUsed
	}

	cost = hintCost(session.Bet)
	if _, err := s.wallet.Debit(ctx, userID, session.Currency, cost); err != nil {
		return 0, 0, err
	}

	if err := s.sessions.Update(ctx, sessionID, session.Attempts, true, false); err != nil {
		return 0, 0, err
	}

	return codeDigits(session.Code)[0], cost, nil
}
