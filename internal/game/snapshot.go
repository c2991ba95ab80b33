package game

import "fmt"

// Snapshot versions. Version 2 added the unlocked/offered upgrade sets;
// loading an older snapshot backfills them (starter catalog, no offer).
const (
	RunSnapshotVersion    = 2
	GlobalSnapshotVersion = 1
)

// CardSnapshot is the serializable form of a card. Upgrades are stored as
// catalog ids; unknown ids are dropped on restore.
type CardSnapshot struct {
	ID       string   `json:"id"`
	Suit     int      `json:"suit"`
	Rank     int      `json:"rank"`
	Upgrades []string `json:"upgrades,omitempty"`
}

// RunSnapshot is the serializable form of a run. Master holds full cards;
// piles and the player hand reference them by identity so upgrade state can
// never fork between copies.
type RunSnapshot struct {
	Version      int            `json:"version"`
	Credits      int            `json:"credits"`
	Essence      int            `json:"essence"`
	Master       []CardSnapshot `json:"master"`
	Draw         []string       `json:"draw"`
	Discard      []string       `json:"discard,omitempty"`
	PlayerHand   []string       `json:"player_hand,omitempty"`
	DealerHand   []CardSnapshot `json:"dealer_hand,omitempty"`
	DealerShoe   []CardSnapshot `json:"dealer_shoe,omitempty"`
	Inventory    []string       `json:"inventory,omitempty"`
	Passives     []string       `json:"passives,omitempty"`
	Unlocked     []string       `json:"unlocked,omitempty"`
	Offered      []string       `json:"offered,omitempty"`
	Bet          int            `json:"bet"`
	HoleRevealed bool           `json:"hole_revealed"`
	HouseLevel   int            `json:"house_level"`
	Corruption   int            `json:"corruption"`
	Threshold    int            `json:"threshold"`
	Phase        int            `json:"phase"`
	Round        int            `json:"round"`
}

// GlobalSnapshot is the serializable form of the cross-run state.
type GlobalSnapshot struct {
	Version   int      `json:"version"`
	Fragments int      `json:"fragments"`
	Hacks     []string `json:"hacks,omitempty"`
	Runs      int      `json:"runs"`
}

func snapshotCard(c *Card) CardSnapshot {
	s := CardSnapshot{ID: c.ID, Suit: int(c.Suit), Rank: int(c.Rank)}
	for _, u := range c.Upgrades {
		s.Upgrades = append(s.Upgrades, u.ID)
	}
	return s
}

func restoreCard(s CardSnapshot) *Card {
	c := &Card{
		ID:    s.ID,
		Suit:  Suit(s.Suit),
		Rank:  Rank(s.Rank),
		Value: Rank(s.Rank).BlackjackValue(),
	}
	for _, id := range s.Upgrades {
		if u, ok := Upgrades[id]; ok {
			c.Upgrades = append(c.Upgrades, u)
		}
	}
	return c
}

func cardIDs(pile []*Card) []string {
	ids := make([]string, 0, len(pile))
	for _, c := range pile {
		ids = append(ids, c.ID)
	}
	return ids
}

func snapshotCards(pile []*Card) []CardSnapshot {
	out := make([]CardSnapshot, 0, len(pile))
	for _, c := range pile {
		out = append(out, snapshotCard(c))
	}
	return out
}

// Snapshot converts the run into its serializable form.
func (r *RunState) Snapshot() *RunSnapshot {
	consumables := make([]string, 0, len(r.Inventory))
	for _, c := range r.Inventory {
		consumables = append(consumables, c.ID)
	}
	return &RunSnapshot{
		Version:      RunSnapshotVersion,
		Credits:      r.Credits,
		Essence:      r.Essence,
		Master:       snapshotCards(r.MasterDeck),
		Draw:         cardIDs(r.DrawPile),
		Discard:      cardIDs(r.DiscardPile),
		PlayerHand:   cardIDs(r.PlayerHand),
		DealerHand:   snapshotCards(r.DealerHand),
		DealerShoe:   snapshotCards(r.DealerShoe),
		Inventory:    consumables,
		Passives:     r.Passives,
		Unlocked:     r.Unlocked,
		Offered:      r.Offered,
		Bet:          r.Bet,
		HoleRevealed: r.HoleRevealed,
		HouseLevel:   r.HouseLevel,
		Corruption:   r.Corruption,
		Threshold:    r.Threshold,
		Phase:        int(r.Phase),
		Round:        r.Round,
	}
}

// RestoreRun rebuilds a run from its snapshot, resolving pile and hand
// references back to the master deck by identity. Missing fields from older
// snapshot versions get their documented defaults.
func RestoreRun(s *RunSnapshot) (*RunState, error) {
	r := &RunState{
		Credits:      s.Credits,
		Essence:      s.Essence,
		Passives:     s.Passives,
		Unlocked:     s.Unlocked,
		Offered:      s.Offered,
		Bet:          s.Bet,
		HoleRevealed: s.HoleRevealed,
		HouseLevel:   s.HouseLevel,
		Corruption:   s.Corruption,
		Threshold:    s.Threshold,
		Phase:        Phase(s.Phase),
		Round:        s.Round,
	}

	byID := make(map[string]*Card, len(s.Master))
	for _, cs := range s.Master {
		c := restoreCard(cs)
		byID[c.ID] = c
		r.MasterDeck = append(r.MasterDeck, c)
	}

	resolve := func(ids []string, pile string) ([]*Card, error) {
		cards := make([]*Card, 0, len(ids))
		for _, id := range ids {
			c, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("restore run: %s references unknown card %s", pile, id)
			}
			cards = append(cards, c)
		}
		return cards, nil
	}

	var err error
	if r.DrawPile, err = resolve(s.Draw, "draw pile"); err != nil {
		return nil, err
	}
	if r.DiscardPile, err = resolve(s.Discard, "discard pile"); err != nil {
		return nil, err
	}
	if r.PlayerHand, err = resolve(s.PlayerHand, "player hand"); err != nil {
		return nil, err
	}

	for _, cs := range s.DealerHand {
		r.DealerHand = append(r.DealerHand, restoreCard(cs))
	}
	for _, cs := range s.DealerShoe {
		r.DealerShoe = append(r.DealerShoe, restoreCard(cs))
	}

	for _, id := range s.Inventory {
		if c, ok := Consumables[id]; ok {
			r.Inventory = append(r.Inventory, c)
		}
	}

	// Backfill for pre-v2 snapshots.
	if r.Unlocked == nil {
		r.Unlocked = DefaultUnlocked()
	}

	if err := r.DeckIntegrity(); err != nil {
		return nil, err
	}
	return r, nil
}

// Snapshot converts the global state into its serializable form.
func (g *GlobalState) Snapshot() *GlobalSnapshot {
	return &GlobalSnapshot{
		Version:   GlobalSnapshotVersion,
		Fragments: g.Fragments,
		Hacks:     g.Hacks,
		Runs:      g.Runs,
	}
}

// RestoreGlobal rebuilds the cross-run state from its snapshot.
func RestoreGlobal(s *GlobalSnapshot) *GlobalState {
	return &GlobalState{
		Fragments: s.Fragments,
		Hacks:     s.Hacks,
		Runs:      s.Runs,
	}
}
