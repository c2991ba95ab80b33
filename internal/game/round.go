package game

import "github.com/okn1ce/VoidBJ/internal/log"

const (
	transactionFeeCost = 2 // credits per hit under the transaction-fee curse
	doubleDownEssence  = 5 // flat essence bonus for doubling down
)

// PlaceBet deducts the bet, builds a fresh dealer shoe, and deals the opening
// hands interleaved: player, dealer hole, player, dealer up-card. Player
// cards apply their effects as they are dealt. Valid from Betting or
// RoundOver.
func (e *Engine) PlaceBet(amount int) {
	r := e.Run
	if r == nil || (r.Phase != PhaseBetting && r.Phase != PhaseRoundOver) {
		e.fail("You can't bet right now.")
		return
	}
	if amount <= 0 {
		e.fail("The bet must be positive.")
		return
	}
	if amount > r.Credits {
		e.fail("Not enough credits for that bet.")
		return
	}

	r.Round++
	r.Bet = amount
	r.Credits -= amount
	r.PlayerHand = nil
	r.DealerHand = nil
	r.HoleRevealed = r.HasPassive("hole-scanner")
	e.logger.Log(log.NewBetEvent(r.Round, amount, r.Credits))

	if r.HasPassive("void-siphon") && r.Essence > 0 {
		r.Essence--
	}

	// The dealer draws from its own freshly shuffled full deck, independent
	// of the player's card pool.
	r.DealerShoe = Shuffle(e.rng, NewDeck())
	if r.BossRound() {
		r.DealerShoe = moveRankToTop(r.DealerShoe, RankKing)
	}

	for i := 0; i < 2; i++ {
		if !e.dealPlayerCard() {
			return
		}
		e.dealDealerCard()
	}

	if IsNatural(r.PlayerHand) {
		r.HoleRevealed = true
		r.Phase = PhaseDealerTurn
		r.Status = "Natural 21! Dealer plays."
	} else {
		r.Phase = PhasePlaying
		r.Status = "Hit, stand, or double down."
	}
	e.saveRun()
}

// Hit draws one card into the player hand. Valid only while playing.
func (e *Engine) Hit() {
	r := e.Run
	if r == nil || r.Phase != PhasePlaying {
		e.fail("You can't hit right now.")
		return
	}

	card, err := e.drawPlayerCard()
	if err != nil {
		e.fail("The deck is exhausted.")
		return
	}
	r.PlayerHand = append(r.PlayerHand, card)
	e.applyCard(card)
	if r.HasPassive("transaction-fee") {
		r.Credits -= transactionFeeCost
	}

	score := Score(r.PlayerHand)
	e.logger.Log(log.NewHitEvent(r.Round, card.String(), score))

	switch {
	case score > 21:
		e.resolveRound(true)
	case score == 21:
		r.HoleRevealed = true
		r.Phase = PhaseDealerTurn
		r.Status = "21! Dealer plays."
		e.saveRun()
	default:
		r.Status = "Hit, stand, or double down."
		e.saveRun()
	}
}

// Stand ends the player's turn.
func (e *Engine) Stand() {
	r := e.Run
	if r == nil || r.Phase != PhasePlaying {
		e.fail("You can't stand right now.")
		return
	}
	e.logger.Log(log.NewStandEvent(r.Round, Score(r.PlayerHand)))
	r.HoleRevealed = true
	r.Phase = PhaseDealerTurn
	r.Status = "Dealer plays."
	e.saveRun()
}

// DoubleDown doubles the bet, draws exactly one card, grants a flat essence
// bonus, and passes to the dealer (or resolves a bust). Only legal on the
// opening two cards with enough credits to cover the doubled stake.
func (e *Engine) DoubleDown() {
	r := e.Run
	if r == nil || r.Phase != PhasePlaying {
		e.fail("You can't double down right now.")
		return
	}
	if len(r.PlayerHand) != 2 {
		e.fail("Double down is only allowed on your first two cards.")
		return
	}
	if r.Credits < r.Bet {
		e.fail("Not enough credits to double down.")
		return
	}

	r.Credits -= r.Bet
	r.Bet *= 2

	card, err := e.drawPlayerCard()
	if err != nil {
		e.fail("The deck is exhausted.")
		return
	}
	r.PlayerHand = append(r.PlayerHand, card)
	e.applyCard(card)
	r.Essence += doubleDownEssence

	score := Score(r.PlayerHand)
	e.logger.Log(log.NewDoubleDownEvent(r.Round, r.Bet, card.String(), score))

	if score > 21 {
		e.resolveRound(true)
		return
	}
	r.HoleRevealed = true
	r.Phase = PhaseDealerTurn
	r.Status = "Doubled down. Dealer plays."
	e.saveRun()
}

// Advance performs exactly one dealer step: a single draw while the dealer is
// under its stand threshold, or round resolution once it is not. Callers pace
// the dealer by invoking this repeatedly; AdvanceUntilResolved produces the
// identical final hand in one call.
func (e *Engine) Advance() {
	r := e.Run
	if r == nil || r.Phase != PhaseDealerTurn {
		e.fail("Nothing to advance.")
		return
	}
	r.HoleRevealed = true

	score := Score(r.DealerHand)
	if score < r.DealerStandsOn() {
		card := e.drawDealerCard()
		if card == nil {
			e.fail("The dealer shoe is exhausted.")
			return
		}
		r.DealerHand = append(r.DealerHand, card)
		e.logger.Log(log.NewDealerDrawEvent(r.Round, card.String(), Score(r.DealerHand)))
		e.saveRun()
		return
	}

	e.logger.Log(log.NewDealerStandEvent(r.Round, score))
	e.resolveRound(false)
}

// AdvanceUntilResolved runs dealer steps to completion.
func (e *Engine) AdvanceUntilResolved() {
	for e.Run != nil && e.Run.Phase == PhaseDealerTurn {
		e.Advance()
	}
}

// drawPlayerCard draws through the run's piles, logging the reshuffle when
// the discard pile gets recycled.
func (e *Engine) drawPlayerCard() (*Card, error) {
	r := e.Run
	recycled := len(r.DrawPile) == 0 && len(r.DiscardPile) > 0
	card, err := r.drawCard(e.rng)
	if err != nil {
		return nil, err
	}
	if recycled {
		e.logger.Log(log.NewShuffleEvent(r.Round, r.Phase.String(), len(r.DrawPile)+1))
	}
	return card, nil
}

// dealPlayerCard draws from the player's pile into the hand and applies card
// effects. Returns false on pile exhaustion, which ends the action.
func (e *Engine) dealPlayerCard() bool {
	r := e.Run
	card, err := e.drawPlayerCard()
	if err != nil {
		e.fail("The deck is exhausted.")
		return false
	}
	r.PlayerHand = append(r.PlayerHand, card)
	e.applyCard(card)
	e.logger.Log(log.NewDealEvent(r.Round, r.Phase.String(), "Player", card.String()))
	return true
}

// dealDealerCard draws from the dealer shoe into the dealer hand.
func (e *Engine) dealDealerCard() {
	r := e.Run
	card := e.drawDealerCard()
	if card == nil {
		return
	}
	r.DealerHand = append(r.DealerHand, card)
	name := card.String()
	if len(r.DealerHand) == 1 && !r.HoleRevealed {
		name = "a hole card"
	}
	e.logger.Log(log.NewDealEvent(r.Round, r.Phase.String(), "Dealer", name))
}

func (e *Engine) drawDealerCard() *Card {
	r := e.Run
	if len(r.DealerShoe) == 0 {
		return nil
	}
	card := r.DealerShoe[len(r.DealerShoe)-1]
	r.DealerShoe = r.DealerShoe[:len(r.DealerShoe)-1]
	return card
}
