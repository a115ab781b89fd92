package service

import "errors"

// User-visible error kinds. All are detected before any balance mutation
// and leave the ledger untouched.
var (
	// ErrInvalidBetFormat means the bet token could not be parsed
	ErrInvalidBetFormat = errors.New("invalid bet format: use a number, optionally with k/m/b, or 'max'/'all'")

	// ErrNonPositiveBet means the parsed bet was zero or negative
	ErrNonPositiveBet = errors.New("bet amount must be greater than 0")

	// ErrInsufficientFunds means the bet exceeds the user's balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrGameAlreadyActive means the user already has a blackjack hand in progress
	ErrGameAlreadyActive = errors.New("you already have an active blackjack game")

	// ErrNoActiveGame means an action arrived for a game that no longer exists
	ErrNoActiveGame = errors.New("no active blackjack game")

	// ErrNotYourGame means someone interacted with a game they do not own
	ErrNotYourGame = errors.New("this is not your game")
)
