package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

// CoinPlayer defines only the methods needed by this handler.
type CoinPlayer interface {
	Play(ctx context.Context, userID int64, username, currency string, bet float64, choice string) (*services.CoinResult, error)
}

// CoinRequest represents the JSON body for a coin flip
// swagger:model CoinRequest
type CoinRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Display name, used to create the account on first play
	// default: alice
	Username string `json:"username"`

	// Currency, ton or usdt
	// required: true
	// default: ton
	Currency string `json:"currency"`

	// Stake amount
	// required: true
	// default: 10.0
	Bet float64 `json:"bet"`

	// Chosen side, heads or tails
	// required: true
	// default: heads
	Choice string `json:"choice"`
}

// CoinResponse represents the resolved flip
// swagger:model CoinResponse
type CoinResponse struct {
	// Side the coin landed on
	// default: heads
	Result string `json:"result"`

	// Whether the play won
	// default: true
	Win bool `json:"win"`

	// Prize amount, 2x the bet on a win
	// default: 20.0
	Prize float64 `json:"prize"`
}

// NewCoinHandler returns an HTTP handler for the coin-flip game.
// @Summary Flip a coin
// @Description Debit the stake, flip the coin and credit 2x the bet on a win.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.CoinRequest true "Coin Request"
// @Success 200 {object} handlers.CoinResponse "Resolved flip"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /coin/start [post]
func NewCoinHandler(svc CoinPlayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CoinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode coin request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.Bet <= 0 {
			logger.Log.Warnw("invalid coin request", "userID", req.UserID, "bet", req.Bet)
			writeError(w, http.StatusBadRequest, "Invalid bet or user id")
			return
		}

		result, err := svc.Play(ctx, req.UserID, req.Username, req.Currency, req.Bet, req.Choice)
		if err != nil {
			logger.Log.Errorw("coin play failed", "userID", req.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CoinResponse{Result: result.Side, Win: result.Win, Prize: result.Prize})
	}
}
