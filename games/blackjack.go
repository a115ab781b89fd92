package games

import (
	"errors"
	"strings"
)

// Suit is a card suit.
type Suit string

const (
	Spades   Suit = "♠️"
	Hearts   Suit = "♥️"
	Diamonds Suit = "♦️"
	Clubs    Suit = "♣️"
)

// Rank is a card rank. Face cards count 10, aces 11 or 1.
type Rank string

var suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// FormatHand renders a hand for display. With hideHole set, only the
// first card is shown (the dealer's up card).
func FormatHand(hand []Card, hideHole bool) string {
	if hideHole && len(hand) > 1 {
		return hand[0].String() + " ??"
	}
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// HandValue computes a hand total with soft-ace adjustment: aces count
// 11, then drop to 1 one at a time while the total is over 21.
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		switch c.Rank {
		case "A":
			total += 11
			aces++
		case "J", "Q", "K", "10":
			total += 10
		default:
			// ranks "2" through "9"
			total += int(c.Rank[0] - '0')
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// BlackjackStatus is the state of a blackjack hand. Every status other
// than active is terminal.
type BlackjackStatus string

const (
	StatusActive          BlackjackStatus = "active"
	StatusPlayerBlackjack BlackjackStatus = "player_blackjack"
	StatusPush            BlackjackStatus = "push"
	StatusPlayerBust      BlackjackStatus = "player_bust"
	StatusDealerBust      BlackjackStatus = "dealer_bust"
	StatusPlayerWin       BlackjackStatus = "player_win"
	StatusDealerWin       BlackjackStatus = "dealer_win"
)

// Terminal reports whether the hand is finished.
func (s BlackjackStatus) Terminal() bool {
	return s != StatusActive
}

// ErrHandOver is returned when hitting or standing on a finished hand.
var ErrHandOver = errors.New("blackjack hand is already finished")

// Blackjack is a single-player hand against the dealer. The shoe is one
// 52-card deck shuffled at start and reshuffled if it runs out mid-hand.
type Blackjack struct {
	rng        Rand
	bet        int64
	playerHand []Card
	dealerHand []Card
	shoe       []Card
	status     BlackjackStatus
}

// NewBlackjack deals a fresh hand: two cards each, player first. A
// two-card 21 resolves immediately to player_blackjack, or push when the
// dealer also holds 21.
func NewBlackjack(bet int64, rng Rand) *Blackjack {
	g := &Blackjack{
		rng:    rng,
		bet:    bet,
		status: StatusActive,
	}
	g.shoe = g.freshShoe()

	g.playerHand = append(g.playerHand, g.draw())
	g.dealerHand = append(g.dealerHand, g.draw())
	g.playerHand = append(g.playerHand, g.draw())
	g.dealerHand = append(g.dealerHand, g.draw())

	if HandValue(g.playerHand) == 21 {
		if HandValue(g.dealerHand) == 21 {
			g.status = StatusPush
		} else {
			g.status = StatusPlayerBlackjack
		}
	}
	return g
}

func (g *Blackjack) freshShoe() []Card {
	shoe := make([]Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			shoe = append(shoe, Card{Rank: r, Suit: s})
		}
	}
	g.rng.Shuffle(len(shoe), func(i, j int) {
		shoe[i], shoe[j] = shoe[j], shoe[i]
	})
	return shoe
}

func (g *Blackjack) draw() Card {
	if len(g.shoe) == 0 {
		g.shoe = g.freshShoe()
	}
	c := g.shoe[len(g.shoe)-1]
	g.shoe = g.shoe[:len(g.shoe)-1]
	return c
}

// Bet returns the wager this hand was opened with.
func (g *Blackjack) Bet() int64 { return g.bet }

// Status returns the current hand state.
func (g *Blackjack) Status() BlackjackStatus { return g.status }

// PlayerHand returns the player's cards in deal order.
func (g *Blackjack) PlayerHand() []Card { return g.playerHand }

// DealerHand returns the dealer's cards in deal order.
func (g *Blackjack) DealerHand() []Card { return g.dealerHand }

// Hit draws one card to the player's hand. Going over 21 busts the hand.
func (g *Blackjack) Hit() error {
	if g.status.Terminal() {
		return ErrHandOver
	}
	g.playerHand = append(g.playerHand, g.draw())
	if HandValue(g.playerHand) > 21 {
		g.status = StatusPlayerBust
	}
	return nil
}

// Stand ends the player's turn: the dealer draws to 17 (standing on soft
// or hard 17) and the totals are compared.
func (g *Blackjack) Stand() error {
	if g.status.Terminal() {
		return ErrHandOver
	}

	playerTotal := HandValue(g.playerHand)
	dealerTotal := HandValue(g.dealerHand)
	for dealerTotal < 17 {
		g.dealerHand = append(g.dealerHand, g.draw())
		dealerTotal = HandValue(g.dealerHand)
	}

	switch {
	case dealerTotal > 21:
		g.status = StatusDealerBust
	case dealerTotal > playerTotal:
		g.status = StatusDealerWin
	case dealerTotal < playerTotal:
		g.status = StatusPlayerWin
	default:
		g.status = StatusPush
	}
	return nil
}

// Settle returns the signed result relative to the original bet:
// +1.5x for a natural, +1x for a win, 0 for a push and -1x for a loss.
// The wager was already debited when the hand opened, so the amount to
// credit back on a non-loss is Bet() + Settle().
func (g *Blackjack) Settle() int64 {
	switch g.status {
	case StatusPlayerBlackjack:
		return g.bet * 3 / 2
	case StatusPlayerWin, StatusDealerBust:
		return g.bet
	case StatusPush:
		return 0
	default:
		// dealer_win, player_bust
		return -g.bet
	}
}
