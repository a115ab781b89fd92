package service

import (
	"context"
	"fmt"

	"casino/models"
)

const profileTransactionLimit = 5

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) UserService {
	return &userService{uowFactory: uowFactory}
}

// GetOrCreateUser retrieves an existing user or creates a new one with
// the starting balance. Creation is idempotent: a second call for the
// same id returns the existing row and records nothing.
func (s *userService) GetOrCreateUser(ctx context.Context, id, username string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := getOrCreateForUpdate(ctx, uow, id, username)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}

// GetBalance returns the cached balance, or 0 for an account that was
// never created. This is a read-only path and never creates the account.
func (s *userService) GetBalance(ctx context.Context, id string) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return 0, nil
	}
	return user.Balance, nil
}

// Leaderboard returns the richest users, balance descending
func (s *userService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	users, err := uow.Users().Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetProfile returns the user's account and their most recent
// transactions, creating the account if this is their first interaction.
func (s *userService) GetProfile(ctx context.Context, id, username string) (*Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := getOrCreateForUpdate(ctx, uow, id, username)
	if err != nil {
		return nil, err
	}

	recent, err := uow.Transactions().GetByUser(ctx, id, profileTransactionLimit)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Profile{User: user, Recent: recent}, nil
}
