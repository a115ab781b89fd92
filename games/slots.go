package games

import (
	"fmt"
	"strings"
)

// Symbol is one face on the slot machine reels.
type Symbol string

const (
	SymbolSeven   Symbol = "7️⃣"
	SymbolDiamond Symbol = "💎"
	SymbolSlot    Symbol = "🎰"
	SymbolBell    Symbol = "🔔"
	SymbolBoot    Symbol = "👞"
	SymbolLemon   Symbol = "🍋"
	SymbolMelon   Symbol = "🍉"
	SymbolHeart   Symbol = "❤️"
	SymbolCherry  Symbol = "🍒"
)

// symbols in rarity order, rarest first. The weight is the symbol's
// relative frequency on a reel; the payouts are multipliers keyed by how
// many of the symbol appear on a line (2 or 3). Rarer symbols pay more.
var symbolTable = []struct {
	symbol  Symbol
	weight  int
	payouts map[int]float64
}{
	{SymbolSeven, 1, map[int]float64{3: 500, 2: 25}},
	{SymbolDiamond, 2, map[int]float64{3: 25, 2: 10}},
	{SymbolSlot, 4, map[int]float64{3: 5, 2: 3}},
	{SymbolBell, 6, map[int]float64{3: 3, 2: 2}},
	{SymbolBoot, 10, map[int]float64{3: 2, 2: 1}},
	{SymbolLemon, 14, map[int]float64{3: 1, 2: 1}},
	{SymbolMelon, 16, map[int]float64{3: 0.75, 2: 1}},
	{SymbolHeart, 20, map[int]float64{3: 0.5, 2: 0.75}},
	{SymbolCherry, 25, map[int]float64{3: 0.5, 2: 0.25}},
}

// payoutFor returns the multiplier for count occurrences of symbol on a
// line, or 0 if that combination pays nothing.
func payoutFor(symbol Symbol, count int) float64 {
	for _, e := range symbolTable {
		if e.symbol == symbol {
			return e.payouts[count]
		}
	}
	return 0
}

// Symbols returns all reel symbols, rarest first.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbolTable))
	for i, e := range symbolTable {
		out[i] = e.symbol
	}
	return out
}

// Grid is one spin result, indexed [row][column].
type Grid [3][3]Symbol

// Lines returns the five scored paths through the grid: three rows,
// then the two diagonals.
func (g Grid) Lines() [5][3]Symbol {
	return [5][3]Symbol{
		g[0],
		g[1],
		g[2],
		{g[0][0], g[1][1], g[2][2]},
		{g[0][2], g[1][1], g[2][0]},
	}
}

// String renders the grid the way it is shown to players, one row per line.
func (g Grid) String() string {
	rows := make([]string, 3)
	for i, row := range g {
		rows[i] = fmt.Sprintf("%s %s %s", row[0], row[1], row[2])
	}
	return strings.Join(rows, "\n")
}

// SlotMachine draws weighted 3x3 grids.
type SlotMachine struct {
	rng  Rand
	pool []Symbol
}

// NewSlotMachine builds a machine around the given randomness source.
func NewSlotMachine(rng Rand) *SlotMachine {
	var pool []Symbol
	for _, e := range symbolTable {
		for i := 0; i < e.weight; i++ {
			pool = append(pool, e.symbol)
		}
	}
	return &SlotMachine{rng: rng, pool: pool}
}

// Spin draws nine symbols independently with replacement from the
// weighted pool.
func (m *SlotMachine) Spin() Grid {
	var g Grid
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			g[row][col] = m.pool[m.rng.Intn(len(m.pool))]
		}
	}
	return g
}

// Score evaluates a grid and returns the best multiplier across the five
// lines with a human-readable description of the winning combination.
// A grid with no paying line returns (0, "").
func Score(g Grid) (float64, string) {
	best := 0.0
	detail := ""
	for _, line := range g.Lines() {
		if mult, d := ScoreLine(line); mult > best {
			best = mult
			detail = d
		}
	}
	return best, detail
}

// ScoreLine scores a single three-symbol line against the payout table.
// A line pays when some symbol appears exactly 2 or 3 times and that
// (symbol, count) pair has a table entry; the highest such payout wins.
func ScoreLine(line [3]Symbol) (float64, string) {
	counts := make(map[Symbol]int, 3)
	for _, s := range line {
		counts[s]++
	}

	best := 0.0
	detail := ""
	for symbol, count := range counts {
		mult := payoutFor(symbol, count)
		if mult > best {
			best = mult
			detail = fmt.Sprintf("%dx %s (%gx)", count, symbol, mult)
		}
	}
	return best, detail
}

// Winnings converts a multiplier into a payout, truncated toward zero.
func Winnings(bet int64, multiplier float64) int64 {
	return int64(float64(bet) * multiplier)
}
