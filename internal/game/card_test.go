package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	bySuit := make(map[Suit]int)
	byRank := make(map[Rank]int)
	ids := make(map[string]bool)
	for _, c := range deck {
		bySuit[c.Suit]++
		byRank[c.Rank]++
		ids[c.ID] = true
		assert.Equal(t, c.Rank.BlackjackValue(), c.Value)
		assert.Empty(t, c.Upgrades)
	}
	for suit := SuitSpades; suit <= SuitClubs; suit++ {
		assert.Equal(t, 13, bySuit[suit])
	}
	for rank := RankTwo; rank <= RankAce; rank++ {
		assert.Equal(t, 4, byRank[rank])
	}
	assert.Len(t, ids, 52, "card identities must be unique")
}

func TestScore(t *testing.T) {
	cases := []struct {
		name  string
		ranks []Rank
		want  int
	}{
		{"natural", []Rank{RankAce, RankKing}, 21},
		{"two aces", []Rank{RankAce, RankAce}, 12},
		{"soft rescued twice", []Rank{RankAce, RankAce, RankNine}, 21},
		{"hard twenty", []Rank{RankKing, RankQueen}, 20},
		{"bust", []Rank{RankKing, RankQueen, RankTwo}, 22},
		{"soft sixteen", []Rank{RankAce, RankFive}, 16},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(mkHand(tc.ranks...)))
		})
	}
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(mkHand(RankAce, RankKing)))
	assert.False(t, IsNatural(mkHand(RankAce, RankFive, RankFive)), "three-card 21 is not a natural")
	assert.False(t, IsNatural(mkHand(RankKing, RankQueen)))
}

func TestShuffleDoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pile := mkHand(RankTwo, RankThree, RankFour, RankFive, RankSix)
	before := append([]*Card(nil), pile...)

	shuffled := Shuffle(rng, pile)

	assert.Equal(t, before, pile, "input pile order must be untouched")
	assert.ElementsMatch(t, pile, shuffled)
}

func TestDrawRecyclesDiscard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	upgraded := mkCardUp(RankNine, "overclock")
	r := &RunState{DiscardPile: []*Card{upgraded}}

	card, err := r.drawCard(rng)
	require.NoError(t, err)
	assert.Same(t, upgraded, card, "recycled card keeps its identity and upgrades")
	assert.Empty(t, r.DiscardPile)
	assert.Empty(t, r.DrawPile)
}

func TestDrawExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := &RunState{}
	_, err := r.drawCard(rng)
	assert.ErrorIs(t, err, ErrPilesExhausted)
}

func TestMoveValueToTop(t *testing.T) {
	pile := mkHand(RankKing, RankTwo, RankThree)
	pile = moveValueToTop(pile, 10)
	require.Len(t, pile, 3)
	assert.Equal(t, RankKing, pile[len(pile)-1].Rank, "matching card moves to the draw position")

	// No card of that value: pile unchanged.
	pile = mkHand(RankTwo, RankThree)
	moved := moveValueToTop(pile, 10)
	assert.Equal(t, pile, moved)
}

func TestMoveRankToTop(t *testing.T) {
	pile := mkHand(RankKing, RankQueen, RankTwo)
	pile = moveRankToTop(pile, RankQueen)
	assert.Equal(t, RankQueen, pile[len(pile)-1].Rank)
}

func TestEffectTotalSumsStacks(t *testing.T) {
	c := mkCardUp(RankFive, "crit-injector", "crit-injector", "void-engine")
	assert.InDelta(t, 0.60, c.EffectTotal(EffectCritical), 1e-9)
	assert.InDelta(t, 1.0, c.EffectTotal(EffectBonusEssence), 1e-9)
	assert.Zero(t, c.EffectTotal(EffectShield))
}
