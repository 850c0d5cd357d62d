package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
)

// PrizeAdder defines only the methods needed by this handler.
type PrizeAdder interface {
	AddPrize(ctx context.Context, userID int64, currency string, amount float64) (float64, error)
}

// PrizeRequest represents the JSON body for crediting a prize
// swagger:model PrizeRequest
type PrizeRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	ID int64 `json:"id"`

	// Currency, ton or usdt
	// required: true
	// default: ton
	Currency string `json:"currency"`

	// Prize amount
	// required: true
	// default: 20.0
	Amount float64 `json:"amount"`
}

// PrizeResponse represents a credited prize
// swagger:model PrizeResponse
type PrizeResponse struct {
	// Status
	// default: prize_added
	Status string `json:"status"`

	// New balance in the prize currency
	// default: 120.0
	NewBalance float64 `json:"new_balance"`
}

// NewPrizeHandler returns an HTTP handler that credits a prize amount.
// @Summary Add prize
// @Description Credit a prize to the named balance and return the new value.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.PrizeRequest true "Prize Request"
// @Success 200 {object} handlers.PrizeResponse "Prize credited"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance/prize [post]
func NewPrizeHandler(svc PrizeAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req PrizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode prize request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.ID <= 0 || req.Amount <= 0 {
			logger.Log.Warnw("invalid prize request", "id", req.ID, "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount or user id")
			return
		}

		newBalance, err := svc.AddPrize(ctx, req.ID, req.Currency, req.Amount)
		if err != nil {
			logger.Log.Errorw("failed to add prize", "userID", req.ID, "currency", req.Currency, "amount", req.Amount, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PrizeResponse{Status: "prize_added", NewBalance: newBalance})
	}
}
