package games

// scriptRand plays back canned values so tests can force exact outcomes.
// Intn values are consumed from ints, Float64 values from floats; both
// repeat their last value once exhausted. Shuffle is a no-op.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptRand) Shuffle(n int, swap func(i, j int)) {}

// riggedRand stacks a blackjack shoe so that cards come off in the given
// deal order. It relies on draw taking from the end of the shoe and on
// the engine building the unshuffled shoe suit-major.
type riggedRand struct {
	deal     []Card
	shuffled bool
}

func (r *riggedRand) Intn(n int) int   { return 0 }
func (r *riggedRand) Float64() float64 { return 0 }

func (r *riggedRand) Shuffle(n int, swap func(i, j int)) {
	if r.shuffled || n != 52 {
		return
	}
	r.shuffled = true

	order := make([]Card, 0, 52)
	for _, s := range suits {
		for _, rk := range ranks {
			order = append(order, Card{Rank: rk, Suit: s})
		}
	}
	pos := make(map[Card]int, 52)
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

func card(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}
