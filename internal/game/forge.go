package game

import (
	"fmt"

	"github.com/okn1ce/VoidBJ/internal/log"
)

const (
	purgeBaseCost  = 75
	purgeStepCost  = 10 // per card below a full 52
	inflationLevel = 4  // upgrade prices ×1.5 from this house level
)

// EnterForge opens the shop. Reachable between rounds only.
func (e *Engine) EnterForge() {
	r := e.Run
	if r == nil || (r.Phase != PhaseBetting && r.Phase != PhaseRoundOver) {
		e.fail("The forge is closed mid-round.")
		return
	}
	r.Phase = PhaseForge
	r.Status = "Welcome to the forge."
	e.logger.Log(log.NewPhaseChangeEvent(r.Round, r.Phase.String()))
	e.saveRun()
}

// LeaveForge returns to the table.
func (e *Engine) LeaveForge() {
	r := e.Run
	if r == nil || r.Phase != PhaseForge {
		e.fail("You are not in the forge.")
		return
	}
	r.Phase = PhaseBetting
	r.Status = "Back at the table. Place your bet."
	e.logger.Log(log.NewPhaseChangeEvent(r.Round, r.Phase.String()))
	e.saveRun()
}

// Price applies the pricing modifiers in a fixed order, flooring after each
// step: base, then ×1.5 house inflation (upgrades only, level ≥ 4), then
// ×1.2 encryption-error curse, then ×0.9 priority-access hack.
func (e *Engine) Price(base int, isUpgrade bool) int {
	cost := base
	if isUpgrade && e.Run.HouseLevel >= inflationLevel {
		cost = cost * 3 / 2
	}
	if e.Run.HasPassive("encryption-error") {
		cost = cost * 6 / 5
	}
	if e.Global.HasHack("priority-access") {
		cost = cost * 9 / 10
	}
	return cost
}

// PurgeCost is the essence price of removing a card: purging gets more
// expensive as the deck shrinks below 52 cards.
func (r *RunState) PurgeCost() int {
	below := 52 - len(r.MasterDeck)
	if below < 0 {
		below = 0
	}
	return purgeBaseCost + below*purgeStepCost
}

// BuyUpgrade attaches an unlocked upgrade to a card in the master deck.
// The same upgrade may be bought repeatedly for the same card and stacks.
func (e *Engine) BuyUpgrade(upgradeID, cardID string) {
	r := e.Run
	if r == nil || r.Phase != PhaseForge {
		e.fail("Upgrades are forged between rounds.")
		return
	}
	u, ok := Upgrades[upgradeID]
	if !ok || !r.IsUnlocked(upgradeID) {
		e.fail("That upgrade is not available.")
		return
	}
	card := r.FindCard(cardID)
	if card == nil {
		e.fail("No such card in your deck.")
		return
	}
	cost := e.Price(u.Cost, true)
	if r.Essence < cost {
		e.fail(fmt.Sprintf("Need %d essence for %s.", cost, u.Name))
		return
	}

	r.Essence -= cost
	card.Upgrades = append(card.Upgrades, u)
	r.Status = fmt.Sprintf("%s forged onto %s.", u.Name, card)
	e.logger.Log(log.NewPurchaseEvent(r.Round, u.Name, cost))
	e.saveRun()
}

// BuyConsumable adds an item to the capacity-limited inventory.
func (e *Engine) BuyConsumable(id string) {
	r := e.Run
	if r == nil || r.Phase != PhaseForge {
		e.fail("Items are bought in the forge.")
		return
	}
	c, ok := Consumables[id]
	if !ok {
		e.fail("No such item.")
		return
	}
	if len(r.Inventory) >= InventoryCap {
		e.fail("Your inventory is full.")
		return
	}
	cost := e.Price(c.Cost, false)
	if r.Essence < cost {
		e.fail(fmt.Sprintf("Need %d essence for %s.", cost, c.Name))
		return
	}

	r.Essence -= cost
	r.Inventory = append(r.Inventory, c)
	r.Status = c.Name + " added to inventory."
	e.logger.Log(log.NewPurchaseEvent(r.Round, c.Name, cost))
	e.saveRun()
}

// BuyPassive activates a boon. Curses cannot be bought, and a passive can be
// active at most once per run.
func (e *Engine) BuyPassive(id string) {
	r := e.Run
	if r == nil || r.Phase != PhaseForge {
		e.fail("Boons are bought in the forge.")
		return
	}
	p, ok := Passives[id]
	if !ok || p.Curse {
		e.fail("No such boon.")
		return
	}
	if r.HasPassive(id) {
		e.fail(p.Name + " is already active.")
		return
	}
	cost := e.Price(p.Cost, false)
	if r.Essence < cost {
		e.fail(fmt.Sprintf("Need %d essence for %s.", cost, p.Name))
		return
	}

	r.Essence -= cost
	r.Passives = append(r.Passives, id)
	r.Status = p.Name + " is now active."
	e.logger.Log(log.NewPurchaseEvent(r.Round, p.Name, cost))
	e.saveRun()
}

// PurgeCard removes a card by identity from the master deck and both piles.
// The deck may never shrink below the minimum playable size.
func (e *Engine) PurgeCard(cardID string) {
	r := e.Run
	if r == nil || r.Phase != PhaseForge {
		e.fail("Cards are purged in the forge.")
		return
	}
	if len(r.MasterDeck) <= MinDeckSize {
		e.fail("The deck can't shrink any further.")
		return
	}
	card := r.FindCard(cardID)
	if card == nil {
		e.fail("No such card in your deck.")
		return
	}
	cost := r.PurgeCost()
	if r.Essence < cost {
		e.fail(fmt.Sprintf("Need %d essence to purge %s.", cost, card))
		return
	}

	r.Essence -= cost
	r.MasterDeck = removeCard(r.MasterDeck, cardID)
	r.DrawPile = removeCard(r.DrawPile, cardID)
	r.DiscardPile = removeCard(r.DiscardPile, cardID)
	r.Status = fmt.Sprintf("%s purged from the deck.", card)
	e.logger.Log(log.NewPurgeEvent(r.Round, card.String(), cost))
	e.saveRun()
}

func removeCard(pile []*Card, id string) []*Card {
	for i, c := range pile {
		if c.ID == id {
			return append(pile[:i], pile[i+1:]...)
		}
	}
	return pile
}
