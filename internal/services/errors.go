package services

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would take a balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUserNotFound is returned when the account was never initialized.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCurrency is returned for a currency outside {ton, usdt}.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrSessionNotFound is returned for an unknown safe-cracker session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotSessionOwner is returned when a caller addresses a session it does not own.
	ErrNotSessionOwner = errors.New("session belongs to another user")

	// ErrSessionFinished is returned on any move against a terminal session.
	ErrSessionFinished = errors.New("session already finished")

	// ErrHintAlreadyUsed is returned on a second hint purchase for one session.
	ErrHintAlreadyUsed = errors.New("hint already used")

	// ErrInvalidGuess is returned when a guess is not exactly 3 digits in 0-9.
	ErrInvalidGuess = errors.New("guess must be 3 digits")

	// ErrInvalidChoice is returned for a coin side or box number outside the allowed set.
	ErrInvalidChoice = errors.New("invalid choice")
)
