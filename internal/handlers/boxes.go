package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

// BoxesPlayer defines only the methods needed by this handler.
type BoxesPlayer interface {
	Play(ctx context.Context, userID int64, username, currency string, bet float64, choice int) (*services.BoxResult, error)
}

// BoxesRequest represents the JSON body for a box pick
// swagger:model BoxesRequest
type BoxesRequest struct {
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

	// Chosen box, 1 to 3
	// required: true
	// default: 2
	Choice int `json:"choice"`
}

// BoxesResponse represents the resolved pick
// swagger:model BoxesResponse
type BoxesResponse struct {
	// Whether the play won
	// default: true
	Win bool `json:"win"`

	// Prize amount, 2x the bet on a win
	// default: 20.0
	Prize float64 `json:"prize"`

	// Box the player chose
	// default: 2
	ChosenBox int `json:"chosenBox"`

	// Box holding the prize
	// default: 2
	WinningBox int `json:"winningBox"`
}

// NewBoxesHandler returns an HTTP handler for the three-box game.
// @Summary Pick a box
// @Description Debit the stake, resolve the winning box and credit 2x the bet on a win.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.BoxesRequest true "Boxes Request"
// @Success 200 {object} handlers.BoxesResponse "Resolved pick"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /boxes/start [post]
func NewBoxesHandler(svc BoxesPlayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req BoxesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode boxes request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.Bet <= 0 {
			logger.Log.Warnw("invalid boxes request", "userID", req.UserID, "bet", req.Bet)
			writeError(w, http.StatusBadRequest, "Invalid bet or user id")
			return
		}

		result, err := svc.Play(ctx, req.UserID, req.Username, req.Currency, req.Bet, req.Choice)
		if err != nil {
			logger.Log.Errorw("boxes play failed", "userID", req.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BoxesResponse{
			Win:        result.Win,
			Prize:      result.Prize,
			ChosenBox:  result.ChosenBox,
			WinningBox: result.WinningBox,
		})
	}
}
