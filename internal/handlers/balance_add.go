package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
)

// BalanceCrediter defines only the methods needed by this handler.
type BalanceCrediter interface {
	Credit(ctx context.Context, userID int64, currency string, amount float64) (float64, error)
}

// BalanceAddRequest represents the JSON body for topping up a balance
// swagger:model BalanceAddRequest
type BalanceAddRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	ID int64 `json:"id"`

	// Currency, ton or usdt
	// required: true
	// default: ton
	Currency string `json:"currency"`

	// Amount to add
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// BalanceAddResponse represents a successful top-up
// swagger:model BalanceAddResponse
type BalanceAddResponse struct {
	// Status
	// default: updated
	Status string `json:"status"`
}

// NewBalanceAddHandler returns an HTTP handler that credits a balance.
// @Summary Add funds
// @Description Atomically increase the named balance.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.BalanceAddRequest true "Add Request"
// @Success 200 {object} handlers.BalanceAddResponse "Balance updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance/add [post]
func NewBalanceAddHandler(svc BalanceCrediter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req BalanceAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode balance add request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.ID <= 0 || req.Amount <= 0 {
			logger.Log.Warnw("invalid balance add request", "id", req.ID, "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount or user id")
			return
		}

		if _, err := svc.Credit(ctx, req.ID, req.Currency, req.Amount); err != nil {
			logger.Log.Errorw("failed to add balance", "userID", req.ID, "currency", req.Currency, "amount", req.Amount, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceAddResponse{Status: "updated"})
	}
}
