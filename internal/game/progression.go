package game

import "github.com/okn1ce/VoidBJ/internal/log"

const (
	upgradeOfferCount  = 3
	thresholdStep      = 2 // permanent ratchet per level-up
	curseMinLevel      = 5 // curses start above this level
	fragmentsPerLevel  = 5
	fragmentEssenceDiv = 10
)

// progressAfterWin accrues one corruption token and, at the threshold, levels
// up the house: the threshold ratchets, locked upgrades are offered, and at
// even levels above five a fresh curse is inflicted.
func (e *Engine) progressAfterWin() {
	r := e.Run
	r.Corruption++
	if r.Corruption < r.Threshold {
		return
	}

	r.HouseLevel++
	r.Corruption = 0
	r.Threshold += thresholdStep
	e.logger.Log(log.NewLevelUpEvent(r.Round, r.HouseLevel, r.Threshold))

	if locked := LockedUpgrades(r.Unlocked); len(locked) > 0 {
		r.Offered = e.pickOffers(locked)
		r.Phase = PhaseUpgradeSelection
		r.Status = "The House rises. Choose an upgrade to unlock."
		e.logger.Log(log.NewUpgradeOfferEvent(r.Round, r.Offered))
	}

	if r.HouseLevel > curseMinLevel && r.HouseLevel%2 == 0 {
		e.inflictCurse()
	}
}

// pickOffers selects up to three distinct locked upgrade ids uniformly.
func (e *Engine) pickOffers(locked []string) []string {
	n := upgradeOfferCount
	if n > len(locked) {
		n = len(locked)
	}
	offers := make([]string, 0, n)
	for _, i := range e.rng.Perm(len(locked))[:n] {
		offers = append(offers, locked[i])
	}
	return offers
}

// inflictCurse grants one uniformly-random not-yet-active curse. Curses are
// never removed once granted.
func (e *Engine) inflictCurse() {
	r := e.Run
	var candidates []string
	for _, id := range CurseIDs() {
		if !r.HasPassive(id) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return
	}
	id := candidates[e.rng.Intn(len(candidates))]
	r.Passives = append(r.Passives, id)
	e.logger.Log(log.NewCurseGrantedEvent(r.Round, Passives[id].Name))
}

// SelectUpgrade unlocks one of the offered upgrade ids and returns to
// RoundOver. Valid only during upgrade selection.
func (e *Engine) SelectUpgrade(id string) {
	r := e.Run
	if r == nil || r.Phase != PhaseUpgradeSelection {
		e.fail("No upgrade selection is pending.")
		return
	}
	offered := false
	for _, o := range r.Offered {
		if o == id {
			offered = true
			break
		}
	}
	if !offered {
		e.fail("That upgrade is not on offer.")
		return
	}

	r.Unlocked = append(r.Unlocked, id)
	r.Offered = nil
	r.Phase = PhaseRoundOver
	r.Status = Upgrades[id].Name + " unlocked in the forge."
	e.logger.Log(log.NewUpgradeSelectedEvent(r.Round, id))
	e.saveRun()
}
