package models

import "time"

// UserDB represents a user row in the database.
// The id is external (issued by the messaging platform), so it is a
// plain BIGINT rather than a generated UUID.
type UserDB struct {
	ID          int64     `json:"id" db:"id"`                     // External user identifier
	Username    string    `json:"username" db:"username"`         // Display name
	TonBalance  float64   `json:"ton_balance" db:"ton_balance"`   // Balance in TON
	UsdtBalance float64   `json:"usdt_balance" db:"usdt_balance"` // Balance in USDT
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// Balance holds the two per-user balances returned by the API.
type Balance struct {
	Ton  float64 `json:"ton" db:"ton_balance"`
	Usdt float64 `json:"usdt" db:"usdt_balance"`
}

// Of returns the balance held in the given currency.
func (b Balance) Of(currency string) float64 {
	if NormalizeCurrency(currency) == TON {
		return b.Ton
	}
	return b.Usdt
}
