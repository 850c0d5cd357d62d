package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// BalanceReader defines only the methods needed by this handler.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID int64) (*models.Balance, error)
}

// BalanceResponse represents balances for both currencies
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance in TON
	// default: 100.0
	Ton float64 `json:"ton"`

	// Balance in USDT
	// default: 50.0
	Usdt float64 `json:"usdt"`
}

// NewBalanceHandler returns an HTTP handler that reads a user's balances.
// @Summary Get balances
// @Description Return both currency balances for the user.
// @Tags wallet
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.BalanceResponse "Current balances"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance/{user_id} [get]
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil || userID <= 0 {
			logger.Log.Warnw("invalid user id in balance request", "value", chi.URLParam(r, "user_id"))
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		balance, err := svc.GetBalance(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Ton: balance.Ton, Usdt: balance.Usdt})
	}
}
