package service

import (
	"context"
	"errors"
	"testing"

	"casino/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_GetOrCreateUser_ExistingUser(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	existingUser := &models.User{
		ID:       "123456",
		Username: "testuser",
		Balance:  50000,
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetForUpdate", ctx, "123456").Return(existingUser, nil)

	user, err := service.GetOrCreateUser(ctx, "123456", "testuser")

	assert.NoError(t, err)
	assert.Equal(t, existingUser, user)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockTransactionRepo.AssertNotCalled(t, "Record")
}

func TestUserService_GetOrCreateUser_NewUser(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	newUser := &models.User{
		ID:       "123456",
		Username: "newuser",
		Balance:  StartingBalance,
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	// User doesn't exist on first check
	mockUserRepo.On("GetForUpdate", ctx, "123456").Return(nil, nil)
	// Create call returns new user
	mockUserRepo.On("Create", ctx, "123456", "newuser", StartingBalance).Return(newUser, nil)

	// Expect the starting balance to be recorded in the ledger
	mockTransactionRepo.On("Record", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
		return txn.UserID == "123456" &&
			txn.Amount == StartingBalance &&
			txn.GameType == models.GameTypeNewUser
	})).Return(nil)

	user, err := service.GetOrCreateUser(ctx, "123456", "newuser")

	assert.NoError(t, err)
	assert.Equal(t, newUser, user)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockTransactionRepo.AssertExpectations(t)
}

func TestUserService_GetOrCreateUser_CreateError(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	// No Commit expected since create fails

	mockUserRepo.On("GetForUpdate", ctx, "123456").Return(nil, nil)
	mockUserRepo.On("Create", ctx, "123456", "failuser", StartingBalance).Return(nil, errors.New("database error"))

	user, err := service.GetOrCreateUser(ctx, "123456", "failuser")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to create user")

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockTransactionRepo.AssertNotCalled(t, "Record")
}

func TestUserService_GetOrCreateUser_RefreshesUsername(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	existingUser := &models.User{
		ID:       "123456",
		Username: "oldname",
		Balance:  500,
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetForUpdate", ctx, "123456").Return(existingUser, nil)
	mockUserRepo.On("UpdateUsername", ctx, "123456", "newname").Return(nil)

	user, err := service.GetOrCreateUser(ctx, "123456", "newname")

	assert.NoError(t, err)
	assert.Equal(t, "newname", user.Username)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetBalance_ExistingUser(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	existingUser := &models.User{
		ID:       "123456",
		Username: "testuser",
		Balance:  75000,
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	// No Commit expected, read-only path

	mockUserRepo.On("GetByID", ctx, "123456").Return(existingUser, nil)

	balance, err := service.GetBalance(ctx, "123456")

	assert.NoError(t, err)
	assert.Equal(t, int64(75000), balance)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetBalance_UnknownUser(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByID", ctx, "123456").Return(nil, nil)

	balance, err := service.GetBalance(ctx, "123456")

	// Unknown users read as zero without creating an account
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	existingUser := &models.User{
		ID:       "123456",
		Username: "testuser",
		Balance:  1200,
	}
	recent := []*models.Transaction{
		{ID: 2, UserID: "123456", Amount: 200, GameType: models.GameTypeCoinflip},
		{ID: 1, UserID: "123456", Amount: 1000, GameType: models.GameTypeNewUser},
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetForUpdate", ctx, "123456").Return(existingUser, nil)
	mockTransactionRepo.On("GetByUser", ctx, "123456", profileTransactionLimit).Return(recent, nil)

	profile, err := service.GetProfile(ctx, "123456", "testuser")

	assert.NoError(t, err)
	assert.Equal(t, existingUser, profile.User)
	assert.Equal(t, recent, profile.Recent)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockTransactionRepo.AssertExpectations(t)
}

func TestUserService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTransactionRepo := new(MockTransactionRepository)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, mockTransactionRepo, nil)

	service := NewUserService(mockFactory)

	top := []*models.User{
		{ID: "1", Username: "first", Balance: 9000},
		{ID: "2", Username: "second", Balance: 4000},
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("Leaderboard", ctx, 10).Return(top, nil)

	users, err := service.Leaderboard(ctx, 10)

	assert.NoError(t, err)
	assert.Equal(t, top, users)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}
