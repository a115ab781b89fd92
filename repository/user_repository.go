package repository

import (
	"context"
	"fmt"
	"time"

	"casino/database"
	"casino/models"
	"github.com/jackc/pgx/v5"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

const userColumns = `id, username, balance, last_daily, last_work, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Balance,
		&user.LastDaily,
		&user.LastWork,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their platform ID. Returns nil without
// error when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

// GetForUpdate retrieves a user and locks their row for the remainder of
// the transaction, serializing concurrent balance updates per user.
func (r *UserRepository) GetForUpdate(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	user, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock user %s: %w", id, err)
	}
	return user, nil
}

// Create creates a new user with the initial balance
func (r *UserRepository) Create(ctx context.Context, id, username string, initialBalance int64) (*models.User, error) {
	query := `
		INSERT INTO users (id, username, balance)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, id, username, initialBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", id, err)
	}
	return user, nil
}

// UpdateBalance sets a user's cached balance
func (r *UserRepository) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	query := `
		UPDATE users
		SET balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, newBalance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance for user %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// UpdateUsername records the last-seen display name for a user
func (r *UserRepository) UpdateUsername(ctx context.Context, id, username string) error {
	query := `
		UPDATE users
		SET username = $1, updated_at = NOW()
		WHERE id = $2 AND username <> $1
	`

	if _, err := r.q.Exec(ctx, query, username, id); err != nil {
		return fmt.Errorf("failed to update username for user %s: %w", id, err)
	}
	return nil
}

// SetLastDaily stamps the most recent daily reward claim
func (r *UserRepository) SetLastDaily(ctx context.Context, id string, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET last_daily = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, claimedAt, id)
	if err != nil {
		return fmt.Errorf("failed to set last daily for user %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// SetLastWork stamps the most recent work reward claim
func (r *UserRepository) SetLastWork(ctx context.Context, id string, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET last_work = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, claimedAt, id)
	if err != nil {
		return fmt.Errorf("failed to set last work for user %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// Leaderboard returns the top users by balance. Ties are broken by user
// id so the ordering is deterministic.
func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY balance DESC, id ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Balance,
			&user.LastDaily,
			&user.LastWork,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
