package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWinPayout(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankKing, RankQueen), mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	assert.Equal(t, 90+20, e.Run.Credits, "a win pays double the stake")
	assert.Equal(t, winEssence, e.Run.Essence)
	assert.Equal(t, 1, e.Run.Corruption)
	assert.Equal(t, PhaseRoundOver, e.Run.Phase)
}

func TestResolveLossForfeitsStake(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankKing, RankEight), mkHand(RankTen, RankNine), 10)

	e.resolveRound(false)

	assert.Equal(t, 90, e.Run.Credits)
	assert.Zero(t, e.Run.Essence)
	assert.Zero(t, e.Run.Corruption, "losses do not advance corruption")
}

func TestResolveNaturalWin(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankAce, RankKing), mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	assert.Equal(t, 90+25, e.Run.Credits, "naturals pay 3:2 on top of the stake")
	assert.Equal(t, naturalWinEssence, e.Run.Essence)
}

func TestResolveBothNaturalsPush(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankAce, RankKing), mkHand(RankAce, RankQueen), 10)

	e.resolveRound(false)

	assert.Equal(t, 100, e.Run.Credits, "a push returns the stake")
	assert.Zero(t, e.Run.Essence)
}

func TestResolveDealerNaturalLoses(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankKing, RankQueen), mkHand(RankAce, RankKing), 10)

	e.resolveRound(false)

	assert.Equal(t, 90, e.Run.Credits)
}

func TestResolveDealerBustWins(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankKing, RankEight), mkHand(RankTen, RankTen, RankFive), 10)

	e.resolveRound(false)

	assert.Equal(t, 90+20, e.Run.Credits)
	assert.Zero(t, e.Run.Essence, "no score-beating essence when the dealer busts")
	assert.Equal(t, 1, e.Run.Corruption, "a dealer bust still counts as a win")
}

func TestResolveTieBands(t *testing.T) {
	cases := []struct {
		name    string
		level   int
		want    int // credits after resolution, from 100 with a 10 bet
		wantWin bool
	}{
		{"low levels favor the player", 1, 110, true},
		{"mid levels push", 3, 100, false},
		{"high levels go to the house", 7, 90, false},
		{"boss rounds go to the house", 5, 90, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := testEngine(1)
			e.Run.HouseLevel = tc.level
			tableRound(e, mkHand(RankKing, RankNine), mkHand(RankTen, RankNine), 10)

			e.resolveRound(false)

			assert.Equal(t, tc.want, e.Run.Credits)
			if tc.wantWin {
				assert.Equal(t, 1, e.Run.Corruption)
			} else {
				assert.Zero(t, e.Run.Corruption)
			}
		})
	}
}

func TestResolveBustLosesStake(t *testing.T) {
	e := testEngine(1)
	tableRound(e, mkHand(RankKing, RankQueen, RankFive), mkHand(RankTen, RankEight), 10)

	e.resolveRound(true)

	assert.Equal(t, 90, e.Run.Credits)
}

func TestShieldMitigatesBust(t *testing.T) {
	e := testEngine(1)
	sureShield := &Upgrade{ID: "sure-shield", Name: "Sure Shield",
		Effects: []Effect{{Kind: EffectShield, Value: 1.0}}}
	hand := mkHand(RankKing, RankQueen, RankFive)
	hand[0].Upgrades = append(hand[0].Upgrades, sureShield)
	tableRound(e, hand, mkHand(RankTen, RankEight), 10)

	e.resolveRound(true)

	assert.Equal(t, 90+5, e.Run.Credits, "a triggered shield refunds half the stake")
	assert.Zero(t, e.Run.Corruption, "mitigation is not a win")
}

func TestShieldNeverTriggersAtZero(t *testing.T) {
	e := testEngine(1)
	noShield := &Upgrade{ID: "no-shield",
		Effects: []Effect{{Kind: EffectShield, Value: 0}}}
	hand := mkHand(RankKing, RankQueen, RankFive)
	hand[0].Upgrades = append(hand[0].Upgrades, noShield)
	tableRound(e, hand, mkHand(RankTen, RankEight), 10)

	e.resolveRound(true)

	assert.Equal(t, 90, e.Run.Credits)
}

func TestCriticalMultiplierScalesProfit(t *testing.T) {
	e := testEngine(1)
	e.Run.Passives = append(e.Run.Passives, "vip")
	player := []*Card{
		mkCardUp(RankKing, "crit-injector"),
		mkCardUp(RankQueen, "crit-injector"),
	}
	tableRound(e, player, mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	// Profit 10 scaled by 1 + 0.25 + 0.25 + 0.1; the stake itself is never
	// multiplied.
	assert.Equal(t, 90+10+16, e.Run.Credits)
}

func TestNoMultiplierOnMitigatedBust(t *testing.T) {
	e := testEngine(1)
	loaded := &Upgrade{ID: "loaded",
		Effects: []Effect{{Kind: EffectShield, Value: 1.0}, {Kind: EffectCritical, Value: 1.0}}}
	hand := mkHand(RankKing, RankQueen, RankFive)
	hand[0].Upgrades = append(hand[0].Upgrades, loaded)
	tableRound(e, hand, mkHand(RankTen, RankEight), 10)

	e.resolveRound(true)

	assert.Equal(t, 95, e.Run.Credits, "mitigated payouts keep their fixed formula")
}

func TestNoMultiplierOnTieWin(t *testing.T) {
	e := testEngine(1)
	player := []*Card{mkCardUp(RankKing, "crit-injector"), mkCard(RankNine)}
	tableRound(e, player, mkHand(RankTen, RankNine), 10)

	e.resolveRound(false)

	assert.Equal(t, 110, e.Run.Credits, "tie wins pay flat double")
}

func TestOnBustEssenceHook(t *testing.T) {
	e := testEngine(1)
	hand := []*Card{mkCardUp(RankKing, "scrap-harvester"), mkCard(RankQueen), mkCard(RankFive)}
	tableRound(e, hand, mkHand(RankTen, RankEight), 10)

	e.resolveRound(true)

	assert.Equal(t, 8, e.Run.Essence)
}

func TestOn21CreditsHook(t *testing.T) {
	e := testEngine(1)
	hand := []*Card{mkCardUp(RankFive, "jackpot-routine"), mkCard(RankSix), mkCard(RankTen)}
	tableRound(e, hand, mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	assert.Equal(t, 90+15+20, e.Run.Credits)
}

func TestEssenceConduitOnWin(t *testing.T) {
	e := testEngine(1)
	e.Run.Passives = append(e.Run.Passives, "essence-conduit")
	tableRound(e, mkHand(RankKing, RankQueen), mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	assert.Equal(t, winEssence+conduitEssence, e.Run.Essence)
}

func TestResolveReturnsCardsToDiscard(t *testing.T) {
	e := testEngine(1)
	player := mkHand(RankKing, RankQueen)
	tableRound(e, player, mkHand(RankTen, RankEight), 10)

	e.resolveRound(false)

	r := e.Run
	require.Len(t, r.DiscardPile, 2)
	assert.Same(t, player[0], r.DiscardPile[0])
	assert.Nil(t, r.PlayerHand)
	assert.Nil(t, r.DealerHand)
	assert.Nil(t, r.DealerShoe)
	assert.Zero(t, r.Bet)
}

func TestGameOverBanksFragments(t *testing.T) {
	store := &memStore{}
	e := New(Config{Seed: 1, Store: store})
	e.StartRun()
	e.Run.Credits = 15
	e.Run.Essence = 47
	e.Run.HouseLevel = 3
	tableRound(e, mkHand(RankKing, RankEight), mkHand(RankTen, RankNine), 10)

	e.resolveRound(false)

	assert.Equal(t, PhaseGameOver, e.Run.Phase)
	assert.Equal(t, 3*fragmentsPerLevel+47/fragmentEssenceDiv, e.Global.Fragments)
	assert.False(t, e.InProgress())
	assert.Nil(t, store.run, "the dead run is cleared from storage")
	assert.NotNil(t, store.global)
}

func TestGameOverOverridesUpgradeSelection(t *testing.T) {
	e := testEngine(1)
	e.Run.Credits = 5
	e.Run.Corruption = e.Run.Threshold - 1
	tableRound(e, mkHand(RankKing, RankQueen), mkHand(RankTen, RankEight), 2)

	e.resolveRound(false)

	// The win levels the house up, but the payout still leaves the player
	// below the minimum viable bet.
	assert.Equal(t, PhaseGameOver, e.Run.Phase)
	assert.Empty(t, e.Run.Offered)
}
