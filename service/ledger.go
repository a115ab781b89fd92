package service

import (
	"context"
	"fmt"

	"casino/events"
	"casino/models"
)

// getOrCreateForUpdate fetches a user with their row locked, lazily
// creating the account with the starting balance on first reference.
// Creation records a new_user transaction so the ledger still sums to
// the cached balance.
func getOrCreateForUpdate(ctx context.Context, uow UnitOfWork, userID, username string) (*models.User, error) {
	user, err := uow.Users().GetForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user, err = uow.Users().Create(ctx, userID, username, StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		txn := &models.Transaction{
			UserID:   userID,
			Amount:   StartingBalance,
			GameType: models.GameTypeNewUser,
			Details:  "New user bonus",
		}
		if err := uow.Transactions().Record(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to record new user bonus: %w", err)
		}

		uow.EventBus().Publish(events.UserCreatedEvent{
			UserID:         userID,
			Username:       username,
			InitialBalance: StartingBalance,
		})
		return user, nil
	}

	// keep the last-seen display name current, best effort
	if username != "" && user.Username != username {
		if err := uow.Users().UpdateUsername(ctx, userID, username); err != nil {
			return nil, fmt.Errorf("failed to update username: %w", err)
		}
		user.Username = username
	}

	return user, nil
}

// applyDelta is the single entry point for balance changes: it locks the
// account (creating it if needed), applies the delta to the cached
// balance and appends the paired transaction row, all inside the caller's
// unit of work. A debit larger than the available balance is clamped so
// the balance never goes negative; the transaction records the amount
// actually applied, keeping balance == sum(transactions) exact.
func applyDelta(ctx context.Context, uow UnitOfWork, userID, username string, amount int64, gameType models.GameType, details string) (*models.User, error) {
	user, err := getOrCreateForUpdate(ctx, uow, userID, username)
	if err != nil {
		return nil, err
	}

	applied := amount
	if user.Balance+applied < 0 {
		applied = -user.Balance
	}
	newBalance := user.Balance + applied

	if err := uow.Users().UpdateBalance(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	txn := &models.Transaction{
		UserID:   userID,
		Amount:   applied,
		GameType: gameType,
		Details:  details,
	}
	if err := uow.Transactions().Record(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:       userID,
		OldBalance:   user.Balance,
		NewBalance:   newBalance,
		GameType:     gameType,
		ChangeAmount: applied,
	})

	user.Balance = newBalance
	return user, nil
}
