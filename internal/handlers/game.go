package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// GameRecorder defines only the methods needed by this handler.
type GameRecorder interface {
	Record(ctx context.Context, userID int64, game string, bet float64, result string, win bool, currency string, prizeAmount float64) (*models.Balance, error)
}

// GameRequest represents a client-settled play
// swagger:model GameRequest
type GameRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Game name
	// required: true
	// default: Coin
	Game string `json:"game"`

	// Stake amount
	// required: true
	// default: 10.0
	Bet float64 `json:"bet"`

	// Human-readable outcome
	// default: chose heads, landed heads
	Result string `json:"result"`

	// Whether the play won
	// default: false
	Win bool `json:"win"`

	// Currency, ton or usdt
	// required: true
	// default: ton
	Currency string `json:"currency"`

	// Prize override; 2x the bet when omitted
	PrizeAmount float64 `json:"prize_amount,omitempty"`

	// Legacy flag from older clients, accepted and ignored
	Final bool `json:"final,omitempty"`
}

// GameResponse returns post-settlement balances
// swagger:model GameResponse
type GameResponse struct {
	// Balance in TON
	// default: 110.0
	Ton float64 `json:"ton"`

	// Balance in USDT
	// default: 50.0
	Usdt float64 `json:"usdt"`
}

// NewGameHandler returns an HTTP handler for the generic record-and-settle
// path used by clients that resolve outcomes themselves.
// @Summary Record a play
// @Description Debit the stake, credit the prize on a win and append the game record. Returns updated balances.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.GameRequest true "Game Request"
// @Success 200 {object} handlers.GameResponse "Updated balances"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /game [post]
func NewGameHandler(svc GameRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req GameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode game request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.Bet <= 0 || req.Game == "" {
			logger.Log.Warnw("invalid game request", "userID", req.UserID, "game", req.Game, "bet", req.Bet)
			writeError(w, http.StatusBadRequest, "Invalid game request")
			return
		}

		balance, err := svc.Record(ctx, req.UserID, req.Game, req.Bet, req.Result, req.Win, req.Currency, req.PrizeAmount)
		if err != nil {
			logger.Log.Errorw("failed to record game", "userID", req.UserID, "game", req.Game, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, GameResponse{Ton: balance.Ton, Usdt: balance.Usdt})
	}
}
