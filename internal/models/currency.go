package models

import "strings"

// Supported currency codes
const (
	TON  = "ton"
	USDT = "usdt"
)

// NormalizeCurrency lowercases a currency code so the API accepts
// "TON", "Ton" and "ton" interchangeably.
func NormalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}

// IsValidCurrency reports whether the code belongs to the closed set
// of supported currencies.
func IsValidCurrency(currency string) bool {
	switch NormalizeCurrency(currency) {
	case TON, USDT:
		return true
	}
	return false
}
