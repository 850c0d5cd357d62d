package models

import "time"

// SafeSessionDB represents a safe-cracker game session.
// The code is kept as a 3-char digit string; it is generated once at
// creation and never changes. Sessions are retained after finishing.
type SafeSessionDB struct {
	ID         string    `json:"id" db:"id"`                   // Session token, shared with the games row
	UserID     int64     `json:"user_id" db:"user_id"`         // Owning account
	Currency   string    `json:"currency" db:"currency"`       // Currency the bet was placed in
	Bet        float64   `json:"bet" db:"bet"`                 // Stake, fixed at creation
	Code       string    `json:"-" db:"code"`                  // Secret 3-digit code, never serialized
	Attempts   int       `json:"attempts" db:"attempts"`       // Guesses made so far, capped at MaxSafeAttempts
	UsedHint   bool      `json:"used_hint" db:"used_hint"`     // Hint may be bought at most once
	IsFinished bool      `json:"is_finished" db:"is_finished"` // Terminal flag, flips exactly once
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// MaxSafeAttempts is the number of guesses a session allows.
const MaxSafeAttempts = 3
