package game

// EffectDelta is the net resource change from dealing a single card.
type EffectDelta struct {
	Credits    int
	Essence    int
	Corruption int
}

// CardEffectDelta folds the card's attached upgrades into a net delta. It is
// pure: the card and catalog are never mutated, and the result depends only
// on the card and the essenceTaxed flag. Shield, critical, on-bust and on-21
// effects fire at round resolution, not here.
func CardEffectDelta(c *Card, essenceTaxed bool) EffectDelta {
	var d EffectDelta
	if !essenceTaxed {
		d.Essence++ // base essence per dealt card
	}
	for _, u := range c.Upgrades {
		for _, e := range u.Effects {
			switch e.Kind {
			case EffectBonusCredits:
				d.Credits += int(e.Value)
			case EffectBonusEssence:
				d.Essence += int(e.Value)
			case EffectReduceCorruption:
				d.Corruption -= int(e.Value)
			case EffectRiskCorruption:
				d.Credits += int(e.Value)
				d.Corruption++
			}
		}
	}
	return d
}

// applyCard applies a freshly dealt or hit card's delta to the run.
// Corruption never drops below zero.
func (e *Engine) applyCard(c *Card) {
	d := CardEffectDelta(c, e.Run.EssenceTaxed())
	e.Run.Credits += d.Credits
	e.Run.Essence += d.Essence
	e.Run.Corruption += d.Corruption
	if e.Run.Corruption < 0 {
		e.Run.Corruption = 0
	}
	if e.Run.Essence < 0 {
		e.Run.Essence = 0
	}
}
