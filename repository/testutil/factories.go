package testutil

import (
	"casino/models"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(id, username string) *models.User {
	return &models.User{
		ID:       id,
		Username: username,
		Balance:  1000,
	}
}

// CreateTestTransaction creates a test ledger entry
func CreateTestTransaction(userID string, amount int64, gameType models.GameType) *models.Transaction {
	return &models.Transaction{
		UserID:   userID,
		Amount:   amount,
		GameType: gameType,
		Details:  "test transaction",
	}
}
