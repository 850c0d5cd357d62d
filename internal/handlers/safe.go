package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

// SafeStarter defines only the methods needed by the start handler.
type SafeStarter interface {
	Start(ctx context.Context, userID int64, currency string, bet float64) (string, float64, error)
}

// SafeGuesser defines only the methods needed by the guess handler.
type SafeGuesser interface {
	Guess(ctx context.Context, sessionID string, userID int64, guess []int) (*services.SafeGuessResult, error)
}

// SafeHinter defines only the methods needed by the hint handler.
type SafeHinter interface {
	Hint(ctx context.Context, sessionID string, userID int64) (int, float64, error)
}

// SafeStartRequest represents the JSON body for opening a session
// swagger:model SafeStartRequest
type SafeStartRequest struct {
	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Currency, ton or usdt
	// required: true
	// default: ton
	Currency string `json:"currency"`

	// Stake amount
	// required: true
	// default: 30.0
	Bet float64 `json:"bet"`
}

// SafeStartResponse returns the opened session
// swagger:model SafeStartResponse
type SafeStartResponse struct {
	// Session id to use for guesses and hints
	SessionID string `json:"session_id"`

	// Balance in the stake currency after the debit
	// default: 70.0
	Balance float64 `json:"balance"`
}

// SafeGuessRequest represents one guess
// swagger:model SafeGuessRequest
type SafeGuessRequest struct {
	// Session id returned by /safe/start
	// required: true
	SessionID string `json:"session_id"`

	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Exactly three digits, each 0-9
	// required: true
	Guess []int `json:"guess"`
}

// SafeGuessResponse is the outcome of one guess
// swagger:model SafeGuessResponse
type SafeGuessResponse struct {
	// win, lose or try_again
	// default: try_again
	Result string `json:"result"`

	// Prize amount, present on a win
	Prize float64 `json:"prize,omitempty"`

	// The secret code, revealed on a win or the final miss
	Code []int `json:"code,omitempty"`

	// Guesses remaining, present for try_again
	AttemptsLeft int `json:"attempts_left,omitempty"`
}

// SafeHintRequest represents a hint purchase
// swagger:model SafeHintRequest
type SafeHintRequest struct {
	// Session id returned by /safe/start
	// required: true
	SessionID string `json:"session_id"`

	// Telegram user id
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`
}

// SafeHintResponse returns the bought hint
// swagger:model SafeHintResponse
type SafeHintResponse struct {
	// First digit of the code
	// default: 4
	Hint int `json:"hint"`

	// Amount debited for the hint
	// default: 10.0
	Cost float64 `json:"cost"`
}

// NewSafeStartHandler returns an HTTP handler that opens a safe-cracker
// session: the stake is debited and a secret 3-digit code is generated.
// @Summary Start a safe-cracker session
// @Description Debit the stake and open a session with a hidden 3-digit code and three guesses.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.SafeStartRequest true "Start Request"
// @Success 200 {object} handlers.SafeStartResponse "Opened session"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /safe/start [post]
func NewSafeStartHandler(svc SafeStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SafeStartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode safe start request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.Bet <= 0 {
			logger.Log.Warnw("invalid safe start request", "userID", req.UserID, "bet", req.Bet)
			writeError(w, http.StatusBadRequest, "Invalid bet or user id")
			return
		}

		sessionID, balance, err := svc.Start(ctx, req.UserID, req.Currency, req.Bet)
		if err != nil {
			logger.Log.Errorw("safe start failed", "userID", req.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SafeStartResponse{SessionID: sessionID, Balance: balance})
	}
}

// NewSafeGuessHandler returns an HTTP handler that applies one guess.
// @Summary Guess the code
// @Description Apply one guess to a live session. A correct guess wins 3x the bet; the third miss finishes the session.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.SafeGuessRequest true "Guess Request"
// @Success 200 {object} handlers.SafeGuessResponse "Guess outcome"
// @Failure 400 {object} handlers.ErrorResponse "Invalid guess"
// @Failure 403 {object} handlers.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Failure 409 {object} handlers.ErrorResponse "Session already finished"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /safe/guess [post]
func NewSafeGuessHandler(svc SafeGuesser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SafeGuessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode safe guess request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "Invalid session or user id")
			return
		}

		result, err := svc.Guess(ctx, req.SessionID, req.UserID, req.Guess)
		if err != nil {
			logger.Log.Errorw("safe guess failed", "userID", req.UserID, "sessionID", req.SessionID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SafeGuessResponse{
			Result:       result.Result,
			Prize:        result.Prize,
			Code:         result.Code,
			AttemptsLeft: result.AttemptsLeft,
		})
	}
}

// NewSafeHintHandler returns an HTTP handler that sells the first code
// digit, at most once per session.
// @Summary Buy a hint
// @Description Debit a third of the bet and reveal the first digit of the code. One hint per session.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.SafeHintRequest true "Hint Request"
// @Success 200 {object} handlers.SafeHintResponse "First code digit and cost"
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 403 {object} handlers.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Failure 409 {object} handlers.ErrorResponse "Hint already used"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /safe/hint [post]
func NewSafeHintHandler(svc SafeHinter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SafeHintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode safe hint request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.UserID <= 0 || req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "Invalid session or user id")
			return
		}

		digit, cost, err := svc.Hint(ctx, req.SessionID, req.UserID)
		if err != nil {
			logger.Log.Errorw("safe hint failed", "userID", req.UserID, "sessionID", req.SessionID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SafeHintResponse{Hint: digit, Cost: cost})
	}
}
