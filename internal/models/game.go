package models

import "time"

// Game discriminator names stored in the games table.
const (
	GameCoin        = "Coin"
	GameBoxes       = "Boxes"
	GameSafeCracker = "Safe Cracker"
)

// ResultPending marks a game row that was opened by a multi-step game
// and not yet resolved.
const ResultPending = "pending"

// GameDB represents a completed or pending game play in the database.
type GameDB struct {
	ID        string    `json:"id" db:"id"`                 // Unique play/session token
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning account
	Game      string    `json:"game" db:"game"`             // Game discriminator name
	Bet       float64   `json:"bet" db:"bet"`               // Stake amount, always > 0
	Result    string    `json:"result" db:"result"`         // Outcome description
	Win       bool      `json:"win" db:"win"`               // Outcome flag
	CreatedAt time.Time `json:"timestamp" db:"created_at"`  // Server-assigned creation time
}
