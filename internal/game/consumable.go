package game

import "github.com/okn1ce/VoidBJ/internal/log"

// UseConsumable spends the inventory item at the given index. Items are
// usable at the table (betting, playing, between rounds) but not mid-dealer
// resolution or in the forge.
func (e *Engine) UseConsumable(index int) {
	r := e.Run
	if r == nil {
		e.fail("No run in progress.")
		return
	}
	switch r.Phase {
	case PhaseBetting, PhasePlaying, PhaseRoundOver:
	default:
		e.fail("You can't use items right now.")
		return
	}
	if index < 0 || index >= len(r.Inventory) {
		e.fail("No item in that slot.")
		return
	}

	c := r.Inventory[index]
	switch c.Kind {
	case ConsumableRevealHole:
		if len(r.DealerHand) == 0 {
			e.fail("The dealer has no hand to peek at.")
			return
		}
		r.HoleRevealed = true
		r.Status = "Hole card revealed: " + r.DealerHand[0].String()
	case ConsumableReduceCorruption:
		r.Corruption -= c.Value
		if r.Corruption < 0 {
			r.Corruption = 0
		}
		r.Status = "Corruption flushed."
	case ConsumableForceTen:
		// Recycle first so the guarantee applies to the card actually
		// drawn next.
		if len(r.DrawPile) == 0 && len(r.DiscardPile) > 0 {
			r.DrawPile = Shuffle(e.rng, r.DiscardPile)
			r.DiscardPile = nil
		}
		r.DrawPile = moveValueToTop(r.DrawPile, 10)
		r.Status = "The next draw is stacked."
	}

	r.Inventory = append(r.Inventory[:index], r.Inventory[index+1:]...)
	e.logger.Log(log.NewConsumableEvent(r.Round, r.Phase.String(), c.Name))
	e.saveRun()
}
