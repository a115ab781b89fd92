package service

import (
	"context"
	"time"

	"casino/events"
	"casino/games"
	"casino/models"
)

// Gameplay constants. StartingBalance is also what the new_user
// transaction records.
const (
	StartingBalance int64 = 1000

	DailyRewardWindow = 20 * time.Hour
	DailyRewardMin    = 100
	DailyRewardMax    = 500

	WorkRewardWindow = 10 * time.Minute
	WorkRewardMin    = 50
	WorkRewardMax    = 200

	// BlackjackTimeout is how long an idle hand waits before it is
	// auto-resolved as a stand.
	BlackjackTimeout = 3 * time.Minute
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByID retrieves a user, or nil when none exists
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetForUpdate retrieves a user and locks their row until the
	// transaction ends, serializing balance updates per user
	GetForUpdate(ctx context.Context, id string) (*models.User, error)

	// Create creates a new user with the initial balance
	Create(ctx context.Context, id, username string, initialBalance int64) (*models.User, error)

	// UpdateBalance sets a user's cached balance
	UpdateBalance(ctx context.Context, id string, newBalance int64) error

	// UpdateUsername records the last-seen display name
	UpdateUsername(ctx context.Context, id, username string) error

	// SetLastDaily stamps the most recent daily reward claim
	SetLastDaily(ctx context.Context, id string, claimedAt time.Time) error

	// SetLastWork stamps the most recent work reward claim
	SetLastWork(ctx context.Context, id string, claimedAt time.Time) error

	// Leaderboard returns the top users by balance, deterministically ordered
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

// TransactionRepository defines the interface for the append-only ledger
type TransactionRepository interface {
	// Record appends one immutable ledger entry
	Record(ctx context.Context, txn *models.Transaction) error

	// GetByUser returns a user's transactions, most recent first
	GetByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)

	// SumByUser recomputes a balance from the full transaction log
	SumByUser(ctx context.Context, userID string) (int64, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork bundles the repositories behind one database transaction.
// Events published through EventBus are flushed only on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	Users() UserRepository
	Transactions() TransactionRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Profile is a user's account summary for display
type Profile struct {
	User   *models.User
	Recent []*models.Transaction
}

// UserService defines the interface for account operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or lazily creates one
	// with the starting balance, recording a new_user transaction
	GetOrCreateUser(ctx context.Context, id, username string) (*models.User, error)

	// GetBalance returns a user's balance, 0 if the account does not
	// exist. Never creates the account.
	GetBalance(ctx context.Context, id string) (int64, error)

	// Leaderboard returns the richest users
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)

	// GetProfile returns a user's account plus recent transactions
	GetProfile(ctx context.Context, id, username string) (*Profile, error)
}

// SlotsResult is the outcome of one 3x3 slot machine round
type SlotsResult struct {
	Bet        int64
	Grid       games.Grid
	Multiplier float64
	Detail     string
	Winnings   int64
	NewBalance int64
}

// ReelsResult is the outcome of one single-row reel round
type ReelsResult struct {
	Bet        int64
	Row        [3]games.Symbol
	Multiplier float64
	Detail     string
	Winnings   int64
	NewBalance int64
}

// CoinflipResult is the outcome of one coinflip round
type CoinflipResult struct {
	Bet        int64
	Choice     games.CoinSide
	Outcome    games.CoinSide
	Won        bool
	Winnings   int64
	NewBalance int64
}

// GamblingService defines the interface for the stateless games. Each
// round debits the wager as one transaction and credits winnings, if
// any, as a second, both inside a single unit of work.
type GamblingService interface {
	PlaySlots(ctx context.Context, userID, username, betToken string) (*SlotsResult, error)

	PlayAnimatedSlots(ctx context.Context, userID, username, betToken string) (*ReelsResult, error)

	PlayCoinflip(ctx context.Context, userID, username, betToken string, choice games.CoinSide) (*CoinflipResult, error)
}

// RewardResult is the outcome of a daily or work claim. A denied claim
// is not an error: Granted is false and Wait holds the remaining cooldown.
type RewardResult struct {
	Granted    bool
	Amount     int64
	NewBalance int64
	Wait       time.Duration
	Message    string
}

// RewardService defines the interface for time-gated bonus grants
type RewardService interface {
	// ClaimDaily grants 100-500 once per 20 hours
	ClaimDaily(ctx context.Context, userID, username string) (*RewardResult, error)

	// ClaimWork grants 50-200 once per 10 minutes
	ClaimWork(ctx context.Context, userID, username string) (*RewardResult, error)
}

// BlackjackSnapshot is a point-in-time view of a hand for display
type BlackjackSnapshot struct {
	GameID      string
	UserID      string
	Bet         int64
	PlayerHand  []games.Card
	DealerHand  []games.Card
	PlayerTotal int
	DealerTotal int
	Status      games.BlackjackStatus
	Payout      int64 // settle delta, meaningful once terminal
	NewBalance  int64
}

// BlackjackService drives the stateful blackjack game. At most one hand
// per user may be active; idle hands are auto-resolved after
// BlackjackTimeout as if the player stood.
type BlackjackService interface {
	// Start debits the bet and deals a hand. Fails with
	// ErrGameAlreadyActive if the user has a hand in progress.
	Start(ctx context.Context, userID, username, betToken string) (*BlackjackSnapshot, error)

	// Hit draws a card for the hand owned by userID. The actor must be
	// the owner or the action is rejected with ErrNotYourGame.
	Hit(ctx context.Context, userID, actorID string) (*BlackjackSnapshot, error)

	// Stand ends the player's turn, plays out the dealer and settles.
	Stand(ctx context.Context, userID, actorID string) (*BlackjackSnapshot, error)
}
