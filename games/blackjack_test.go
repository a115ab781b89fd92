package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandValue(t *testing.T) {
	cases := []struct {
		name string
		hand []Card
		want int
	}{
		{"face cards", []Card{card("K", Spades), card("Q", Hearts)}, 20},
		{"natural", []Card{card("A", Spades), card("K", Hearts)}, 21},
		{"soft seventeen", []Card{card("A", Spades), card("6", Hearts)}, 17},
		{"ace drops to one", []Card{card("A", Spades), card("9", Hearts), card("5", Clubs)}, 15},
		{"two aces", []Card{card("A", Spades), card("A", Hearts)}, 12},
		{"four aces", []Card{card("A", Spades), card("A", Hearts), card("A", Clubs), card("A", Diamonds)}, 14},
		{"ten value", []Card{card("10", Spades), card("7", Hearts)}, 17},
		{"bust", []Card{card("K", Spades), card("Q", Hearts), card("5", Clubs)}, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HandValue(tc.hand))
		})
	}
}

func TestNewBlackjack_DealsInOrder(t *testing.T) {
	// deal order is player, dealer, player, dealer
	rng := &riggedRand{deal: []Card{
		card("5", Spades), card("9", Hearts), card("7", Clubs), card("8", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	assert.Equal(t, []Card{card("5", Spades), card("7", Clubs)}, g.PlayerHand())
	assert.Equal(t, []Card{card("9", Hearts), card("8", Diamonds)}, g.DealerHand())
	assert.Equal(t, StatusActive, g.Status())
}

func TestNewBlackjack_Natural(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("A", Spades), card("K", Hearts), card("K", Clubs), card("10", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	assert.Equal(t, StatusPlayerBlackjack, g.Status())
	assert.True(t, g.Status().Terminal())
	assert.Equal(t, int64(150), g.Settle())
}

func TestNewBlackjack_DoubleNaturalPushes(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("A", Spades), card("A", Hearts), card("K", Clubs), card("Q", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	assert.Equal(t, StatusPush, g.Status())
	assert.Zero(t, g.Settle())
}

func TestHit_Bust(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("9", Hearts), card("Q", Clubs), card("8", Diamonds),
		card("5", Spades),
	}}
	g := NewBlackjack(100, rng)
	require.Equal(t, StatusActive, g.Status())

	require.NoError(t, g.Hit())
	assert.Equal(t, StatusPlayerBust, g.Status())
	assert.Equal(t, int64(-100), g.Settle())

	assert.ErrorIs(t, g.Hit(), ErrHandOver)
	assert.ErrorIs(t, g.Stand(), ErrHandOver)
}

func TestHit_StaysActiveUnder21(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("5", Spades), card("9", Hearts), card("6", Clubs), card("8", Diamonds),
		card("9", Spades),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Hit())
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, 20, HandValue(g.PlayerHand()))
}

func TestStand_DealerDrawsToSeventeen(t *testing.T) {
	// dealer starts at 9+5=14, draws a 4 to reach 18 and stands
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("9", Hearts), card("7", Clubs), card("5", Diamonds),
		card("4", Spades),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Stand())
	assert.Equal(t, StatusDealerWin, g.Status())
	assert.Equal(t, 18, HandValue(g.DealerHand()))
	assert.Equal(t, int64(-100), g.Settle())
}

func TestStand_DealerBust(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("9", Hearts), card("7", Clubs), card("5", Diamonds),
		card("K", Hearts),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Stand())
	assert.Equal(t, StatusDealerBust, g.Status())
	assert.Equal(t, int64(100), g.Settle())
}

func TestStand_PlayerWin(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("10", Hearts), card("Q", Clubs), card("7", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Stand())
	assert.Equal(t, StatusPlayerWin, g.Status())
	assert.Equal(t, int64(100), g.Settle())
}

func TestStand_Push(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("10", Hearts), card("9", Clubs), card("9", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Stand())
	assert.Equal(t, StatusPush, g.Status())
	assert.Zero(t, g.Settle())
}

func TestStand_DealerStandsOnSoftSeventeen(t *testing.T) {
	// dealer holds A+6 (soft 17) and must not draw
	rng := &riggedRand{deal: []Card{
		card("K", Spades), card("A", Hearts), card("8", Clubs), card("6", Diamonds),
	}}
	g := NewBlackjack(100, rng)

	require.NoError(t, g.Stand())
	assert.Len(t, g.DealerHand(), 2)
	assert.Equal(t, StatusPlayerWin, g.Status())
}

func TestSettle_OddBetTruncates(t *testing.T) {
	rng := &riggedRand{deal: []Card{
		card("A", Spades), card("K", Hearts), card("K", Clubs), card("10", Diamonds),
	}}
	g := NewBlackjack(101, rng)

	assert.Equal(t, int64(151), g.Settle())
}

func TestDraw_ReshufflesExhaustedShoe(t *testing.T) {
	g := NewBlackjack(100, &scriptRand{})

	seen := map[Card]int{}
	for i := 0; i < 104; i++ {
		seen[g.draw()]++
	}
	// two full shoes were consumed, so every card appeared at least once
	assert.Len(t, seen, 52)
}
