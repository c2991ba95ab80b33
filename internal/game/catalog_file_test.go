package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadCatalogFileAddsAndOverrides(t *testing.T) {
	originalOverclock := Upgrades["overclock"]
	orderLen := len(UpgradeOrder)
	t.Cleanup(func() {
		Upgrades["overclock"] = originalOverclock
		delete(Upgrades, "flux-capacitor")
		delete(Consumables, "panic-button")
		delete(Passives, "lucky-charm")
		UpgradeOrder = UpgradeOrder[:orderLen]
	})

	path := writeCatalog(t, `
upgrades:
  - id: flux-capacitor
    name: Flux Capacitor
    text: +4 credits whenever this card is dealt.
    cost: 65
    effects:
      - kind: bonus-credits
        value: 4
  - id: overclock
    name: Overclock Mk2
    text: +6 credits whenever this card is dealt.
    cost: 55
    effects:
      - kind: bonus-credits
        value: 6
consumables:
  - id: panic-button
    name: Panic Button
    text: Reduce corruption by 5.
    cost: 45
    kind: reduce-corruption
    value: 5
passives:
  - id: lucky-charm
    name: Lucky Charm
    text: A rare trinket.
    cost: 70
    rarity: rare
`)

	require.NoError(t, LoadCatalogFile(path))

	added := Upgrades["flux-capacitor"]
	require.NotNil(t, added)
	assert.Equal(t, 65, added.Cost)
	require.Len(t, added.Effects, 1)
	assert.Equal(t, EffectBonusCredits, added.Effects[0].Kind)
	assert.Equal(t, "flux-capacitor", UpgradeOrder[len(UpgradeOrder)-1], "new ids join the catalog order")

	assert.Equal(t, "Overclock Mk2", Upgrades["overclock"].Name, "existing ids are replaced")
	assert.Len(t, UpgradeOrder, orderLen+1, "overrides do not duplicate order entries")

	item := Consumables["panic-button"]
	require.NotNil(t, item)
	assert.Equal(t, ConsumableReduceCorruption, item.Kind)
	assert.Equal(t, 5, item.Value)

	charm := Passives["lucky-charm"]
	require.NotNil(t, charm)
	assert.Equal(t, RarityRare, charm.Rarity)
	assert.False(t, charm.Curse)
}

func TestLoadCatalogFileRejectsUnknownEffectKind(t *testing.T) {
	path := writeCatalog(t, `
upgrades:
  - id: bad-upgrade
    name: Bad
    cost: 10
    effects:
      - kind: does-not-exist
        value: 1
`)
	assert.Error(t, LoadCatalogFile(path))
}

func TestLoadCatalogFileRejectsEffectlessUpgrade(t *testing.T) {
	path := writeCatalog(t, `
upgrades:
  - id: inert
    name: Inert
    cost: 10
`)
	assert.Error(t, LoadCatalogFile(path))
}

func TestLoadCatalogFileMissingFile(t *testing.T) {
	assert.Error(t, LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestLoadCatalogFileRejectsBadYAML(t *testing.T) {
	path := writeCatalog(t, "upgrades: [")
	assert.Error(t, LoadCatalogFile(path))
}
