package models

// Transaction represents a settled balance mutation published to Kafka.
type Transaction struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier for the event.
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (seconds) when the mutation committed.
	UserID        int64   `json:"user_id"`        // Account whose balance changed.
	Currency      string  `json:"currency"`       // Currency code, "ton" or "usdt".
	Amount        float64 `json:"amount"`         // Mutation amount, always positive.
	Operation     string  `json:"operation"`      // Mutation kind, e.g. "debit", "credit", "prize".
}
