package models

import (
	"time"
)

// GameType tags a transaction with the game or reward that produced it
type GameType string

const (
	GameTypeSlots         GameType = "slots"
	GameTypeAnimatedSlots GameType = "animated_slots"
	GameTypeCoinflip      GameType = "coinflip"
	GameTypeBlackjack     GameType = "blackjack"
	GameTypeDaily         GameType = "daily"
	GameTypeWork          GameType = "work"
	GameTypeNewUser       GameType = "new_user"
)

// Transaction is one immutable ledger entry. Amount is negative for
// bets/debits and positive for wins and rewards. A user's balance is
// always the sum of their transaction amounts.
type Transaction struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Amount    int64     `db:"amount"`
	GameType  GameType  `db:"game_type"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}
