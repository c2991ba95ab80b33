package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML overlay format. Entries replace built-in catalog
// ids or add new ones; anything not listed keeps its built-in definition.
type CatalogFile struct {
	Upgrades    []UpgradeEntry    `yaml:"upgrades"`
	Consumables []ConsumableEntry `yaml:"consumables"`
	Passives    []PassiveEntry    `yaml:"passives"`
}

type UpgradeEntry struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Text    string        `yaml:"text"`
	Cost    int           `yaml:"cost"`
	Effects []EffectEntry `yaml:"effects"`
}

type EffectEntry struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}

type ConsumableEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Text  string `yaml:"text"`
	Cost  int    `yaml:"cost"`
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

type PassiveEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Text   string `yaml:"text"`
	Cost   int    `yaml:"cost"`
	Rarity string `yaml:"rarity"`
	Curse  bool   `yaml:"curse"`
}

// LoadCatalogFile parses a YAML catalog overlay and merges it into the
// built-in tables.
func LoadCatalogFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parse catalog YAML: %w", err)
	}

	for _, entry := range cf.Upgrades {
		u := &Upgrade{ID: entry.ID, Name: entry.Name, Text: entry.Text, Cost: entry.Cost}
		for _, eff := range entry.Effects {
			kind, err := parseEffectKind(eff.Kind)
			if err != nil {
				return fmt.Errorf("upgrade %q: %w", entry.ID, err)
			}
			u.Effects = append(u.Effects, Effect{Kind: kind, Value: eff.Value})
		}
		if len(u.Effects) == 0 {
			return fmt.Errorf("upgrade %q has no effects", entry.ID)
		}
		if _, exists := Upgrades[entry.ID]; !exists {
			UpgradeOrder = append(UpgradeOrder, entry.ID)
		}
		Upgrades[entry.ID] = u
	}

	for _, entry := range cf.Consumables {
		kind, err := parseConsumableKind(entry.Kind)
		if err != nil {
			return fmt.Errorf("consumable %q: %w", entry.ID, err)
		}
		Consumables[entry.ID] = &Consumable{
			ID: entry.ID, Name: entry.Name, Text: entry.Text,
			Cost: entry.Cost, Kind: kind, Value: entry.Value,
		}
	}

	for _, entry := range cf.Passives {
		rarity := RarityCommon
		if entry.Rarity == "rare" {
			rarity = RarityRare
		}
		Passives[entry.ID] = &Passive{
			ID: entry.ID, Name: entry.Name, Text: entry.Text,
			Cost: entry.Cost, Rarity: rarity, Curse: entry.Curse,
		}
	}

	return nil
}

func parseEffectKind(s string) (EffectKind, error) {
	for kind := EffectBonusCredits; kind <= EffectRiskCorruption; kind++ {
		if kind.String() == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", s)
}

func parseConsumableKind(s string) (ConsumableKind, error) {
	switch s {
	case "reveal-hole":
		return ConsumableRevealHole, nil
	case "reduce-corruption":
		return ConsumableReduceCorruption, nil
	case "force-ten":
		return ConsumableForceTen, nil
	default:
		return 0, fmt.Errorf("unknown consumable kind %q", s)
	}
}
