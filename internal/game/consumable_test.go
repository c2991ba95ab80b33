package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseRevealHole(t *testing.T) {
	e := testEngine(1)
	e.Run.Inventory = append(e.Run.Inventory, Consumables["hole-scan"])
	rigDraws(e.Run, mkCard(RankFive), mkCard(RankNine))
	e.PlaceBet(10)
	require.False(t, e.Run.HoleRevealed)

	e.UseConsumable(0)

	assert.True(t, e.Run.HoleRevealed)
	assert.Empty(t, e.Run.Inventory)
}

func TestUseRevealHoleNeedsDealerHand(t *testing.T) {
	e := testEngine(1)
	e.Run.Inventory = append(e.Run.Inventory, Consumables["hole-scan"])

	e.UseConsumable(0)

	assert.Len(t, e.Run.Inventory, 1, "the item is not spent on a failed use")
	assert.Equal(t, "The dealer has no hand to peek at.", e.Run.Status)
}

func TestUseEntropyFlush(t *testing.T) {
	e := testEngine(1)
	e.Run.Corruption = 5
	e.Run.Inventory = append(e.Run.Inventory, Consumables["entropy-flush"])

	e.UseConsumable(0)

	assert.Equal(t, 2, e.Run.Corruption)
	assert.Empty(t, e.Run.Inventory)
}

func TestUseEntropyFlushClampsAtZero(t *testing.T) {
	e := testEngine(1)
	e.Run.Corruption = 1
	e.Run.Inventory = append(e.Run.Inventory, Consumables["entropy-flush"])

	e.UseConsumable(0)

	assert.Zero(t, e.Run.Corruption)
}

func TestUseStackedDeck(t *testing.T) {
	e := testEngine(1)
	e.Run.Inventory = append(e.Run.Inventory, Consumables["stacked-deck"])

	e.UseConsumable(0)

	next := e.Run.DrawPile[len(e.Run.DrawPile)-1]
	assert.Equal(t, 10, next.Value, "the next draw is worth ten")
}

func TestUseStackedDeckRecyclesFirst(t *testing.T) {
	e := testEngine(1)
	e.Run.DiscardPile = e.Run.DrawPile
	e.Run.DrawPile = nil
	e.Run.Inventory = append(e.Run.Inventory, Consumables["stacked-deck"])

	e.UseConsumable(0)

	require.NotEmpty(t, e.Run.DrawPile)
	assert.Empty(t, e.Run.DiscardPile)
	assert.Equal(t, 10, e.Run.DrawPile[len(e.Run.DrawPile)-1].Value)
}

func TestUseConsumableBadSlot(t *testing.T) {
	e := testEngine(1)
	e.UseConsumable(0)
	assert.Equal(t, "No item in that slot.", e.Run.Status)

	e.UseConsumable(-1)
	assert.Equal(t, "No item in that slot.", e.Run.Status)
}

func TestUseConsumableBlockedInForge(t *testing.T) {
	e := testEngine(1)
	e.Run.Inventory = append(e.Run.Inventory, Consumables["entropy-flush"])
	e.EnterForge()

	e.UseConsumable(0)

	assert.Len(t, e.Run.Inventory, 1)
	assert.Equal(t, "You can't use items right now.", e.Run.Status)
}

func TestUseMiddleSlotRemovesOnlyThatItem(t *testing.T) {
	e := testEngine(1)
	e.Run.Corruption = 3
	e.Run.Inventory = []*Consumable{
		Consumables["hole-scan"],
		Consumables["entropy-flush"],
		Consumables["stacked-deck"],
	}

	e.UseConsumable(1)

	require.Len(t, e.Run.Inventory, 2)
	assert.Equal(t, "hole-scan", e.Run.Inventory[0].ID)
	assert.Equal(t, "stacked-deck", e.Run.Inventory[1].ID)
	assert.Zero(t, e.Run.Corruption)
}
