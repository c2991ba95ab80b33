package game

import (
	"github.com/google/uuid"

	"github.com/okn1ce/VoidBJ/internal/log"
)

// testEngine builds a started engine with a deterministic RNG, a memory
// logger, and no store.
func testEngine(seed int64) *Engine {
	e := New(Config{Seed: seed})
	e.StartRun()
	return e
}

// memLog exposes the engine's memory logger for event assertions.
func memLog(e *Engine) *log.MemoryLogger {
	return e.logger.(*log.MemoryLogger)
}

// mkCard builds a standalone card of the given rank.
func mkCard(rank Rank) *Card {
	return &Card{
		ID:    uuid.NewString(),
		Suit:  SuitSpades,
		Rank:  rank,
		Value: rank.BlackjackValue(),
	}
}

// mkCardUp is mkCard with catalog upgrades attached.
func mkCardUp(rank Rank, upgradeIDs ...string) *Card {
	c := mkCard(rank)
	for _, id := range upgradeIDs {
		c.Upgrades = append(c.Upgrades, Upgrades[id])
	}
	return c
}

// mkHand builds a hand of standalone cards.
func mkHand(ranks ...Rank) []*Card {
	hand := make([]*Card, 0, len(ranks))
	for _, r := range ranks {
		hand = append(hand, mkCard(r))
	}
	return hand
}

// rigDraws arranges the draw pile so the next draws come out in the given
// order. Cards draw from the tail, so the list is appended reversed.
func rigDraws(r *RunState, cards ...*Card) {
	for i := len(cards) - 1; i >= 0; i-- {
		r.DrawPile = append(r.DrawPile, cards[i])
	}
}

// rigShoe arranges the dealer shoe so the next dealer draws come out in the
// given order.
func rigShoe(r *RunState, cards ...*Card) {
	r.DealerShoe = nil
	for i := len(cards) - 1; i >= 0; i-- {
		r.DealerShoe = append(r.DealerShoe, cards[i])
	}
}

// tableRound puts the engine mid-round with fixed hands and bet, ready for
// resolution. The bet is deducted as PlaceBet would.
func tableRound(e *Engine, player, dealer []*Card, bet int) {
	r := e.Run
	r.Round++
	r.Credits -= bet
	r.Bet = bet
	r.PlayerHand = player
	r.DealerHand = dealer
	r.Phase = PhasePlaying
}

// memStore is an in-memory Store for persistence wiring tests.
type memStore struct {
	run     *RunSnapshot
	global  *GlobalSnapshot
	cleared int
}

func (s *memStore) SaveRun(snap *RunSnapshot) error       { s.run = snap; return nil }
func (s *memStore) LoadRun() (*RunSnapshot, error)        { return s.run, nil }
func (s *memStore) ClearRun() error                       { s.run = nil; s.cleared++; return nil }
func (s *memStore) SaveGlobal(snap *GlobalSnapshot) error { s.global = snap; return nil }
func (s *memStore) LoadGlobal() (*GlobalSnapshot, error)  { return s.global, nil }
