package web

import "github.com/okn1ce/VoidBJ/internal/game"

// CardView is the JSON representation of a single card.
type CardView struct {
	ID       string   `json:"id,omitempty"`
	Label    string   `json:"label"`
	Value    int      `json:"value,omitempty"`
	Upgrades []string `json:"upgrades,omitempty"`
	Hidden   bool     `json:"hidden,omitempty"`
}

// ItemView is an inventory slot.
type ItemView struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Text  string `json:"text"`
}

// PassiveView is an active boon or curse.
type PassiveView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Text  string `json:"text"`
	Curse bool   `json:"curse,omitempty"`
}

// RunView is the run state as shown to the view layer. The dealer's hole
// card stays hidden until the engine reveals it.
type RunView struct {
	Phase        string        `json:"phase"`
	Round        int           `json:"round"`
	Credits      int           `json:"credits"`
	Essence      int           `json:"essence"`
	Bet          int           `json:"bet"`
	HouseLevel   int           `json:"house_level"`
	Corruption   int           `json:"corruption"`
	Threshold    int           `json:"threshold"`
	PlayerHand   []CardView    `json:"player_hand,omitempty"`
	PlayerScore  int           `json:"player_score,omitempty"`
	DealerHand   []CardView    `json:"dealer_hand,omitempty"`
	DealerScore  int           `json:"dealer_score,omitempty"`
	HoleRevealed bool          `json:"hole_revealed"`
	DrawCount    int           `json:"draw_count"`
	DiscardCount int           `json:"discard_count"`
	Deck         []CardView    `json:"deck,omitempty"` // master deck, for the forge
	Inventory    []ItemView    `json:"inventory,omitempty"`
	Passives     []PassiveView `json:"passives,omitempty"`
	Unlocked     []string      `json:"unlocked,omitempty"`
	Offered      []string      `json:"offered,omitempty"`
	PurgeCost    int           `json:"purge_cost"`
	Status       string        `json:"status,omitempty"`
}

// GlobalView is the cross-run state.
type GlobalView struct {
	Fragments int      `json:"fragments"`
	Hacks     []string `json:"hacks,omitempty"`
	Runs      int      `json:"runs"`
}

// StateView is the complete snapshot pushed to clients after every action.
type StateView struct {
	Run    *RunView   `json:"run,omitempty"`
	Global GlobalView `json:"global"`
}

func buildCardView(c *game.Card, withID bool) CardView {
	view := CardView{Label: c.String(), Value: c.Value}
	if withID {
		view.ID = c.ID
	}
	for _, u := range c.Upgrades {
		view.Upgrades = append(view.Upgrades, u.Name)
	}
	return view
}

// BuildStateView converts engine state into the client-facing snapshot.
func BuildStateView(e *game.Engine) StateView {
	view := StateView{
		Global: GlobalView{
			Fragments: e.Global.Fragments,
			Hacks:     e.Global.Hacks,
			Runs:      e.Global.Runs,
		},
	}
	r := e.Run
	if r == nil {
		return view
	}

	rv := &RunView{
		Phase:        r.Phase.String(),
		Round:        r.Round,
		Credits:      r.Credits,
		Essence:      r.Essence,
		Bet:          r.Bet,
		HouseLevel:   r.HouseLevel,
		Corruption:   r.Corruption,
		Threshold:    r.Threshold,
		HoleRevealed: r.HoleRevealed,
		DrawCount:    len(r.DrawPile),
		DiscardCount: len(r.DiscardPile),
		Unlocked:     r.Unlocked,
		Offered:      r.Offered,
		PurgeCost:    r.PurgeCost(),
		Status:       r.Status,
	}

	for _, c := range r.PlayerHand {
		rv.PlayerHand = append(rv.PlayerHand, buildCardView(c, false))
	}
	rv.PlayerScore = game.Score(r.PlayerHand)

	for i, c := range r.DealerHand {
		if i == 0 && !r.HoleRevealed {
			rv.DealerHand = append(rv.DealerHand, CardView{Label: "??", Hidden: true})
			continue
		}
		rv.DealerHand = append(rv.DealerHand, buildCardView(c, false))
	}
	if r.HoleRevealed {
		rv.DealerScore = game.Score(r.DealerHand)
	} else if len(r.DealerHand) > 1 {
		rv.DealerScore = game.Score(r.DealerHand[1:])
	}

	for _, c := range r.MasterDeck {
		rv.Deck = append(rv.Deck, buildCardView(c, true))
	}
	for i, item := range r.Inventory {
		rv.Inventory = append(rv.Inventory, ItemView{Index: i, ID: item.ID, Name: item.Name, Text: item.Text})
	}
	for _, id := range r.Passives {
		if p, ok := game.Passives[id]; ok {
			rv.Passives = append(rv.Passives, PassiveView{ID: p.ID, Name: p.Name, Text: p.Text, Curse: p.Curse})
		}
	}

	view.Run = rv
	return view
}
