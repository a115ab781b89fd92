package service

import (
	"casino/games"
)

// stubRand plays back canned values so tests can force game outcomes.
// Intn values are consumed from ints, Float64 values from floats; both
// repeat their last value once exhausted. Shuffle is a no-op.
type stubRand struct {
	ints   []int
	floats []float64
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *stubRand) Shuffle(n int, swap func(i, j int)) {}

// shoeRand stacks a blackjack shoe so cards come off in the given deal
// order. It mirrors the engine's suit-major deck layout and the fact that
// cards are drawn from the end of the shoe.
type shoeRand struct {
	deal     []games.Card
	shuffled bool
}

func (r *shoeRand) Intn(n int) int   { return 0 }
func (r *shoeRand) Float64() float64 { return 0 }

func (r *shoeRand) Shuffle(n int, swap func(i, j int)) {
	if r.shuffled || n != 52 {
		return
	}
	r.shuffled = true

	suits := []games.Suit{games.Spades, games.Hearts, games.Diamonds, games.Clubs}
	ranks := []games.Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

	order := make([]games.Card, 0, 52)
	for _, s := range suits {
		for _, rk := range ranks {
			order = append(order, games.Card{Rank: rk, Suit: s})
		}
	}
	pos := make(map[games.Card]int, 52)
	for i, c := range order {
		pos[c] = i
	}

	for i, c := range r.deal {
		want := 51 - i
		cur := pos[c]
		if cur == want {
			continue
		}
		other := order[want]
		order[want], order[cur] = order[cur], order[want]
		pos[c], pos[other] = want, cur
		swap(cur, want)
	}
}

func card(rank games.Rank, suit games.Suit) games.Card {
	return games.Card{Rank: rank, Suit: suit}
}
