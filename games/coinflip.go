package games

// CoinSide is a coinflip outcome or choice.
type CoinSide string

const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

// ParseCoinSide validates a user-supplied side.
func ParseCoinSide(s string) (CoinSide, bool) {
	switch CoinSide(s) {
	case Heads, Tails:
		return CoinSide(s), true
	}
	return "", false
}

// Flip returns heads or tails with equal probability, independent of any
// player choice. A winning flip pays CoinflipPayout times the wager.
func Flip(rng Rand) CoinSide {
	if rng.Intn(2) == 0 {
		return Heads
	}
	return Tails
}

// CoinflipPayout is the total credited on a win: the returned wager plus
// an equal profit.
const CoinflipPayout = 2
