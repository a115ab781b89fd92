package games

// DefaultForcedWinRate is the probability that a reel spin is replaced
// with an aligned winning band. Tuned to match the animated machine's
// advertised hit rate.
const DefaultForcedWinRate = 0.12

// cumulative percentage thresholds over the six rarest symbols, used to
// pick which symbol a forced win lands on. The common symbols dominate
// so forced wins usually pay small.
var forcedWinThresholds = []float64{3.5, 7, 15, 25, 55, 100}

// ReelMachine is the single-row variant of the slot machine: three
// symbols read off independent reels, with an engineered chance of the
// reels stopping aligned. Results are scored with the same payout table
// as the full grid, restricted to one line.
type ReelMachine struct {
	rng     Rand
	winRate float64
}

// NewReelMachine builds a reel machine with the default forced-win rate.
func NewReelMachine(rng Rand) *ReelMachine {
	return &ReelMachine{rng: rng, winRate: DefaultForcedWinRate}
}

// NewReelMachineWithWinRate overrides the forced-win probability.
// A rate of 0 disables the bias entirely.
func NewReelMachineWithWinRate(rng Rand, winRate float64) *ReelMachine {
	return &ReelMachine{rng: rng, winRate: winRate}
}

// Spin returns the middle row of the three reels.
func (m *ReelMachine) Spin() [3]Symbol {
	all := Symbols()

	if m.winRate > 0 && m.rng.Float64() < m.winRate {
		s := all[m.forcedSymbolIndex()]
		return [3]Symbol{s, s, s}
	}

	var row [3]Symbol
	for i := range row {
		row[i] = all[m.rng.Intn(len(all))]
	}
	return row
}

func (m *ReelMachine) forcedSymbolIndex() int {
	x := m.rng.Float64() * 100
	for i, threshold := range forcedWinThresholds {
		if x < threshold {
			return i
		}
	}
	return len(forcedWinThresholds) - 1
}
