package game

import (
	"fmt"

	"github.com/okn1ce/VoidBJ/internal/log"
)

const (
	naturalWinEssence = 25
	winEssence        = 10
	conduitEssence    = 2
	vipMultiplier     = 0.1
)

// resolveRound adjudicates the finished round, credits the payout, fires the
// progression engine on wins, and checks for game over. Once triggered it
// runs to completion.
func (e *Engine) resolveRound(busted bool) {
	r := e.Run
	ps := Score(r.PlayerHand)
	ds := Score(r.DealerHand)
	r.HoleRevealed = true

	outcome, payout := e.adjudicate(busted, ps, ds)

	// On-bust and on-21 hooks fire independently of the outcome.
	if busted {
		for _, c := range r.PlayerHand {
			r.Essence += int(c.EffectTotal(EffectOnBustEssence))
		}
	}
	if ps == 21 {
		for _, c := range r.PlayerHand {
			r.Credits += int(c.EffectTotal(EffectOn21Credits))
		}
	}

	// The critical multiplier scales only the profit portion, and only on
	// true win outcomes: mitigated busts and low-level tie wins keep their
	// own fixed payout formulas.
	if outcome == OutcomeWin || outcome == OutcomeNaturalWin {
		mult := 1.0
		for _, c := range r.PlayerHand {
			mult += c.EffectTotal(EffectCritical)
		}
		if r.HasPassive("vip") {
			mult += vipMultiplier
		}
		payout = r.Bet + int(float64(payout-r.Bet)*mult)
	}

	r.Credits += payout
	e.logger.Log(log.NewOutcomeEvent(r.Round, outcome.String(), payout))

	switch outcome {
	case OutcomeNaturalWin:
		r.Essence += naturalWinEssence
		e.logger.Log(log.NewEssenceEvent(r.Round, naturalWinEssence, "natural 21"))
	case OutcomeWin:
		if ds <= 21 && ps > ds {
			r.Essence += winEssence
			e.logger.Log(log.NewEssenceEvent(r.Round, winEssence, "win"))
		}
	}
	if outcome.IsWin() && r.HasPassive("essence-conduit") {
		r.Essence += conduitEssence
	}

	r.Status = fmt.Sprintf("%s — payout %d.", outcome, payout)

	// Return the player's cards to the discard pile; the dealer's deck is
	// transient and simply dropped.
	r.DiscardPile = append(r.DiscardPile, r.PlayerHand...)
	r.PlayerHand = nil
	r.DealerHand = nil
	r.DealerShoe = nil
	r.Bet = 0
	r.Phase = PhaseRoundOver

	if outcome.IsWin() {
		e.progressAfterWin()
	}

	// The game-over check overrides any upgrade-selection branch.
	if r.Credits < MinViableBet {
		e.gameOver()
		return
	}
	e.saveRun()
}

// adjudicate determines the outcome and gross payout by the fixed precedence:
// bust (with shield trials), dealer bust, naturals, score comparison, ties by
// house-level band.
func (e *Engine) adjudicate(busted bool, ps, ds int) (Outcome, int) {
	r := e.Run

	if busted {
		if e.shieldTriggers() {
			return OutcomeMitigated, r.Bet / 2
		}
		return OutcomeBust, 0
	}
	if ds > 21 {
		return OutcomeWin, 2 * r.Bet
	}
	playerNatural := IsNatural(r.PlayerHand)
	dealerNatural := IsNatural(r.DealerHand)
	if playerNatural {
		if dealerNatural {
			return OutcomePush, r.Bet
		}
		return OutcomeNaturalWin, r.Bet + (3*r.Bet)/2
	}
	if dealerNatural {
		return OutcomeLoss, 0
	}
	if ps > ds {
		return OutcomeWin, 2 * r.Bet
	}
	if ps == ds {
		switch {
		case r.HouseLevel >= 7 || r.BossRound():
			return OutcomeLoss, 0
		case r.HouseLevel <= 2:
			return OutcomeTieWin, 2 * r.Bet
		default:
			return OutcomePush, r.Bet
		}
	}
	return OutcomeLoss, 0
}

// shieldTriggers rolls every shield upgrade instance in the busted hand
// independently at its own probability; any success mitigates the bust.
func (e *Engine) shieldTriggers() bool {
	for _, c := range e.Run.PlayerHand {
		for _, u := range c.Upgrades {
			for _, eff := range u.Effects {
				if eff.Kind != EffectShield {
					continue
				}
				if e.rng.Float64() < eff.Value {
					return true
				}
			}
		}
	}
	return false
}

// gameOver ends the run and banks fragments into the global state.
func (e *Engine) gameOver() {
	r := e.Run
	fragments := r.HouseLevel*fragmentsPerLevel + r.Essence/fragmentEssenceDiv
	e.Global.Fragments += fragments
	r.Phase = PhaseGameOver
	r.Offered = nil
	r.Status = fmt.Sprintf("The House wins. %d fragments banked.", fragments)
	e.logger.Log(log.NewGameOverEvent(r.Round, r.HouseLevel, fragments))
	e.saveGlobal()
	e.clearRun()
}
