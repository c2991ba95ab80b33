package game

import (
	"fmt"
	"math/rand"
)

const (
	StartingCredits   = 100
	StartingThreshold = 8
	MinViableBet      = 10 // credits below this after a payout end the run
	InventoryCap      = 3
	MinDeckSize       = 5 // purge floor: the deck may never shrink below this
)

// RunState is the complete state of one run. It is created at run start,
// mutated by every engine action, and discarded at game over.
type RunState struct {
	Credits int
	Essence int

	MasterDeck  []*Card // source of truth for purge/upgrade, by identity
	DrawPile    []*Card // next-to-draw at the tail
	DiscardPile []*Card

	PlayerHand []*Card
	DealerHand []*Card
	DealerShoe []*Card // fresh 52-card deck each round, dealer-only

	Inventory []*Consumable
	Passives  []string // active passive ids, in grant order
	Unlocked  []string // unlocked upgrade ids (the shop catalog)
	Offered   []string // transient: populated only during upgrade selection

	Bet          int
	HoleRevealed bool

	HouseLevel int
	Corruption int
	Threshold  int

	Phase  Phase
	Round  int
	Status string
}

// NewRunState builds the initial state for a fresh run, before meta hacks.
func NewRunState() *RunState {
	master := NewDeck()
	return &RunState{
		Credits:    StartingCredits,
		MasterDeck: master,
		DrawPile:   append([]*Card(nil), master...),
		Unlocked:   DefaultUnlocked(),
		HouseLevel: 1,
		Threshold:  StartingThreshold,
		Phase:      PhaseBetting,
	}
}

// HasPassive reports whether the passive id is active this run.
func (r *RunState) HasPassive(id string) bool {
	for _, p := range r.Passives {
		if p == id {
			return true
		}
	}
	return false
}

// IsUnlocked reports whether the upgrade id is in the shop catalog.
func (r *RunState) IsUnlocked(id string) bool {
	for _, u := range r.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// FindCard locates a card in the master deck by identity.
func (r *RunState) FindCard(id string) *Card {
	for _, c := range r.MasterDeck {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// BossRound reports whether the current house level is a boss level.
func (r *RunState) BossRound() bool {
	return r.HouseLevel%5 == 0
}

// DealerStandsOn is the dealer's stand threshold: an easier dealer at low
// house levels.
func (r *RunState) DealerStandsOn() int {
	if r.HouseLevel <= 3 {
		return 16
	}
	return 17
}

// EssenceTaxed reports whether the per-card base essence is suppressed.
func (r *RunState) EssenceTaxed() bool {
	return r.HouseLevel >= 3
}

// drawCard removes and returns the tail card of the draw pile, recycling the
// discard pile (shuffled) first when the draw pile is empty. Both piles empty
// is an internal-consistency fault.
func (r *RunState) drawCard(rng *rand.Rand) (*Card, error) {
	if len(r.DrawPile) == 0 {
		if len(r.DiscardPile) == 0 {
			return nil, ErrPilesExhausted
		}
		r.DrawPile = Shuffle(rng, r.DiscardPile)
		r.DiscardPile = nil
	}
	card := r.DrawPile[len(r.DrawPile)-1]
	r.DrawPile = r.DrawPile[:len(r.DrawPile)-1]
	return card, nil
}

// DeckIntegrity verifies the master deck invariant: every master card is in
// exactly one of draw pile, discard pile, or the player hand, and nothing
// else is.
func (r *RunState) DeckIntegrity() error {
	seen := make(map[string]int, len(r.MasterDeck))
	for _, pile := range [][]*Card{r.DrawPile, r.DiscardPile, r.PlayerHand} {
		for _, c := range pile {
			seen[c.ID]++
		}
	}
	if len(seen) != len(r.MasterDeck) {
		return fmt.Errorf("deck integrity: %d cards in piles, %d in master deck", len(seen), len(r.MasterDeck))
	}
	for _, c := range r.MasterDeck {
		if seen[c.ID] != 1 {
			return fmt.Errorf("deck integrity: card %s appears %d times", c, seen[c.ID])
		}
	}
	return nil
}

// GlobalState persists across runs.
type GlobalState struct {
	Fragments int
	Hacks     []string // unlocked permanent meta-upgrade ids
	Runs      int      // lifetime run counter
}

// HasHack reports whether the permanent hack is unlocked.
func (g *GlobalState) HasHack(id string) bool {
	for _, h := range g.Hacks {
		if h == id {
			return true
		}
	}
	return false
}
