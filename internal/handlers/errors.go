package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

// ErrorResponse is the error body shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps domain sentinels onto HTTP statuses. Insufficient
// funds stays a 400 with its own message so clients can tell it apart
// from validation failures; session replays are conflicts.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCurrency):
		writeError(w, http.StatusBadRequest, "Invalid currency")
	case errors.Is(err, services.ErrInvalidChoice):
		writeError(w, http.StatusBadRequest, "Invalid choice")
	case errors.Is(err, services.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "Invalid guess")
	case errors.Is(err, services.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "Insufficient funds")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, services.ErrNotSessionOwner):
		writeError(w, http.StatusForbidden, "Session belongs to another user")
	case errors.Is(err, services.ErrSessionFinished):
		writeError(w, http.StatusConflict, "Session already finished")
	case errors.Is(err, services.ErrHintAlreadyUsed):
		writeError(w, http.StatusConflict, "Hint already used")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
