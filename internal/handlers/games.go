package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

// GameHistorian defines only the methods needed by this handler.
type GameHistorian interface {
	History(ctx context.Context, userID int64) ([]models.GameDB, error)
}

// NewGamesHandler returns an HTTP handler that lists a user's plays,
// newest first.
// @Summary List plays
// @Description Return the user's game records ordered by recency.
// @Tags games
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.GameDB "Play records, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /games/{user_id} [get]
func NewGamesHandler(svc GameHistorian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil || userID <= 0 {
			logger.Log.Warnw("invalid user id in games request", "value", chi.URLParam(r, "user_id"))
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		games, err := svc.History(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list games", "userID", userID, "error", err)
			writeServiceError(w, err)
			return
		}

		if games == nil {
			games = []models.GameDB{}
		}
		writeJSON(w, http.StatusOK, games)
	}
}
