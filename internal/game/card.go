package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Card is a single playing card in the run. Identity is stable for the card's
// whole lifetime: upgrades travel with the card through draw pile, hand and
// discard pile, never with the slot.
type Card struct {
	ID       string
	Suit     Suit
	Rank     Rank
	Value    int
	Upgrades []*Upgrade // ordered multiset; append-only until purge
}

func (c *Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// EffectTotal sums the values of all attached effects of the given kind.
func (c *Card) EffectTotal(kind EffectKind) float64 {
	var total float64
	for _, u := range c.Upgrades {
		for _, e := range u.Effects {
			if e.Kind == kind {
				total += e.Value
			}
		}
	}
	return total
}

// NewDeck produces the standard 52-card deck: one card per (suit, rank) pair,
// each with a fresh identity and no upgrades.
func NewDeck() []*Card {
	deck := make([]*Card, 0, 52)
	for suit := SuitSpades; suit <= SuitClubs; suit++ {
		for rank := RankTwo; rank <= RankAce; rank++ {
			deck = append(deck, &Card{
				ID:    uuid.NewString(),
				Suit:  suit,
				Rank:  rank,
				Value: rank.BlackjackValue(),
			})
		}
	}
	return deck
}

// Shuffle returns the same cards in uniformly random order. The input pile is
// not mutated.
func Shuffle(rng *rand.Rand, pile []*Card) []*Card {
	out := make([]*Card, len(pile))
	copy(out, pile)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Score computes the blackjack value of a hand with standard soft-ace rules:
// aces count 11 until the total exceeds 21, then reduce to 1 one at a time.
func Score(hand []*Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.Value
		if c.Rank == RankAce {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural reports a two-card 21.
func IsNatural(hand []*Card) bool {
	return len(hand) == 2 && Score(hand) == 21
}

// moveValueToTop relocates the first card of the given blackjack value (in
// iteration order) to the tail of the pile, which is the next draw position.
// The pile is unchanged if no such card exists.
func moveValueToTop(pile []*Card, value int) []*Card {
	for i, c := range pile {
		if c.Value == value {
			moved := c
			pile = append(pile[:i], pile[i+1:]...)
			return append(pile, moved)
		}
	}
	return pile
}

// moveRankToTop is moveValueToTop keyed by rank; used for boss rounds where
// the dealer's first card must be a King.
func moveRankToTop(pile []*Card, rank Rank) []*Card {
	for i, c := range pile {
		if c.Rank == rank {
			moved := c
			pile = append(pile[:i], pile[i+1:]...)
			return append(pile, moved)
		}
	}
	return pile
}

// ErrPilesExhausted signals a draw with both piles empty. With a 52-card
// master deck and blackjack-sized hands this is unreachable; hitting it means
// the bookkeeping is broken.
var ErrPilesExhausted = fmt.Errorf("draw: both piles empty")
