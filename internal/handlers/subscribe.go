package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// BalanceSubscriber defines only the methods needed by this handler.
type BalanceSubscriber interface {
	Subscribe(ctx context.Context, userID int64, current models.Balance) (*models.Balance, bool, error)
}

// SubscribeRequest carries the client's last-known balances
// swagger:model SubscribeRequest
type SubscribeRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Last-known TON balance
	// default: 100.0
	CurrentTon float64 `json:"current_ton"`

	// Last-known USDT balance
	// default: 50.0
	CurrentUsdt float64 `json:"current_usdt"`
}

// SubscribeResponse reports whether the stored balances changed
// swagger:model SubscribeResponse
type SubscribeResponse struct {
	// True when the stored balances differ from the supplied view
	// default: true
	Update bool `json:"update"`

	// Current TON balance, meaningful when update is true
	Ton float64 `json:"ton"`

	// Current USDT balance, meaningful when update is true
	Usdt float64 `json:"usdt"`
}

// NewSubscribeHandler returns a long-poll handler that answers as soon as
// the user's stored balances differ from the supplied view, or with
// update=false once the wait window elapses.
// @Summary Subscribe to balance changes
// @Description Long-poll until the stored balances differ from the client's view or the window elapses.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.SubscribeRequest true "Subscribe Request"
// @Success 200 {object} handlers.SubscribeResponse "Update flag and fresh balances"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance/subscribe [post]
func NewSubscribeHandler(svc BalanceSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode subscribe request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		balance, changed, err := svc.Subscribe(ctx, req.UserID, models.Balance{Ton: req.CurrentTon, Usdt: req.CurrentUsdt})
		if err != nil {
			// The client went away; nothing useful to write.
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Log.Errorw("subscribe failed", "userID", req.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		if !changed {
			writeJSON(w, http.StatusOK, SubscribeResponse{Update: false})
			return
		}

		writeJSON(w, http.StatusOK, SubscribeResponse{Update: true, Ton: balance.Ton, Usdt: balance.Usdt})
	}
}
