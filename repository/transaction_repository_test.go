package repository

import (
	"context"
	"testing"

	"casino/models"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Record(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewTransactionRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, "100", "alice", 1000)
	require.NoError(t, err)

	t.Run("assigns id and timestamp", func(t *testing.T) {
		txn := testutil.CreateTestTransaction("100", -250, models.GameTypeSlots)
		err := repo.Record(ctx, txn)
		require.NoError(t, err)

		assert.NotZero(t, txn.ID)
		assert.False(t, txn.CreatedAt.IsZero())
	})

	t.Run("unknown user violates the foreign key", func(t *testing.T) {
		txn := testutil.CreateTestTransaction("nobody", 100, models.GameTypeDaily)
		err := repo.Record(ctx, txn)
		assert.Error(t, err)
	})
}

func TestTransactionRepository_GetByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewTransactionRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, "100", "alice", 1000)
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, "200", "bob", 1000)
	require.NoError(t, err)

	amounts := []int64{1000, -100, 500, -50}
	for _, amount := range amounts {
		txn := testutil.CreateTestTransaction("100", amount, models.GameTypeCoinflip)
		require.NoError(t, repo.Record(ctx, txn))
	}
	require.NoError(t, repo.Record(ctx, testutil.CreateTestTransaction("200", 42, models.GameTypeWork)))

	t.Run("most recent first", func(t *testing.T) {
		txns, err := repo.GetByUser(ctx, "100", 10)
		require.NoError(t, err)
		require.Len(t, txns, 4)

		// insertion order reversed
		assert.Equal(t, int64(-50), txns[0].Amount)
		assert.Equal(t, int64(500), txns[1].Amount)
		assert.Equal(t, int64(-100), txns[2].Amount)
		assert.Equal(t, int64(1000), txns[3].Amount)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		txns, err := repo.GetByUser(ctx, "100", 2)
		require.NoError(t, err)
		require.Len(t, txns, 2)
		assert.Equal(t, int64(-50), txns[0].Amount)
	})

	t.Run("only the requested user's entries", func(t *testing.T) {
		txns, err := repo.GetByUser(ctx, "200", 10)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, int64(42), txns[0].Amount)
	})

	t.Run("no entries yields empty", func(t *testing.T) {
		txns, err := repo.GetByUser(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}

func TestTransactionRepository_SumByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewTransactionRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, "100", "alice", 1000)
	require.NoError(t, err)

	t.Run("no entries sums to zero", func(t *testing.T) {
		sum, err := repo.SumByUser(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, int64(0), sum)
	})

	t.Run("signed amounts net out", func(t *testing.T) {
		for _, amount := range []int64{1000, -300, 150} {
			require.NoError(t, repo.Record(ctx, testutil.CreateTestTransaction("100", amount, models.GameTypeBlackjack)))
		}

		sum, err := repo.SumByUser(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, int64(850), sum)
	})
}
