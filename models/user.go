package models

import (
	"time"
)

// User represents a casino player with a cached balance.
// ID is the chat platform's stable user identifier.
type User struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Balance   int64      `db:"balance"`
	LastDaily *time.Time `db:"last_daily"`
	LastWork  *time.Time `db:"last_work"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
