package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// UserIniter defines only the methods needed by this handler.
type UserIniter interface {
	InitUser(ctx context.Context, userID int64, username string) (*models.Balance, error)
}

// InitRequest represents the JSON body for account creation
// swagger:model InitRequest
type InitRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	ID int64 `json:"id"`

	// Display name
	// default: alice
	Username string `json:"username"`
}

// InitResponse returns the balances of the created (or existing) account
// swagger:model InitResponse
type InitResponse struct {
	// Balance in TON
	// default: 0.0
	Ton float64 `json:"ton"`

	// Balance in USDT
	// default: 0.0
	Usdt float64 `json:"usdt"`
}

// NewInitHandler returns an HTTP handler that creates a user account.
// Repeated calls for the same id are no-ops that return current balances.
// @Summary Initialize account
// @Description Create the user account if it does not exist and return current balances. Idempotent.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.InitRequest true "Init Request"
// @Success 200 {object} handlers.InitResponse "Current balances"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /init [post]
func NewInitHandler(svc UserIniter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req InitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode init request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.ID <= 0 {
			logger.Log.Warnw("invalid init user id", "id", req.ID)
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		balance, err := svc.InitUser(ctx, req.ID, req.Username)
		if err != nil {
			logger.Log.Errorw("failed to init user", "userID", req.ID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, InitResponse{Ton: balance.Ton, Usdt: balance.Usdt})
	}
}
