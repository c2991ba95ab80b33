package game

// Static catalog tables, keyed by stable string ids. All entries are
// read-only; the engine holds references, never copies with local state.

// UpgradeOrder fixes the iteration order for upgrade offers and shop
// listings. Every id in Upgrades must appear here exactly once.
var UpgradeOrder = []string{
	"overclock",
	"data-siphon",
	"null-shield",
	"crit-injector",
	"entropy-damper",
	"scrap-harvester",
	"jackpot-routine",
	"volatile-core",
	"glitched-ace",
	"void-engine",
}

var Upgrades = map[string]*Upgrade{
	"overclock": {
		ID: "overclock", Name: "Overclock", Cost: 40,
		Text:    "+3 credits whenever this card is dealt.",
		Effects: []Effect{{Kind: EffectBonusCredits, Value: 3}},
	},
	"data-siphon": {
		ID: "data-siphon", Name: "Data Siphon", Cost: 35,
		Text:    "+2 essence whenever this card is dealt.",
		Effects: []Effect{{Kind: EffectBonusEssence, Value: 2}},
	},
	"null-shield": {
		ID: "null-shield", Name: "Null Shield", Cost: 60,
		Text:    "25% chance to refund half the bet when this card is in a busted hand.",
		Effects: []Effect{{Kind: EffectShield, Value: 0.25}},
	},
	"crit-injector": {
		ID: "crit-injector", Name: "Crit Injector", Cost: 70,
		Text:    "+25% win profit while this card is in the winning hand.",
		Effects: []Effect{{Kind: EffectCritical, Value: 0.25}},
	},
	"entropy-damper": {
		ID: "entropy-damper", Name: "Entropy Damper", Cost: 50,
		Text:    "-1 corruption whenever this card is dealt.",
		Effects: []Effect{{Kind: EffectReduceCorruption, Value: 1}},
	},
	"scrap-harvester": {
		ID: "scrap-harvester", Name: "Scrap Harvester", Cost: 45,
		Text:    "+8 essence if the hand holding this card busts.",
		Effects: []Effect{{Kind: EffectOnBustEssence, Value: 8}},
	},
	"jackpot-routine": {
		ID: "jackpot-routine", Name: "Jackpot Routine", Cost: 55,
		Text:    "+15 credits when the hand holding this card totals exactly 21.",
		Effects: []Effect{{Kind: EffectOn21Credits, Value: 15}},
	},
	"volatile-core": {
		ID: "volatile-core", Name: "Volatile Core", Cost: 30,
		Text:    "+5 credits whenever this card is dealt, but +1 corruption.",
		Effects: []Effect{{Kind: EffectRiskCorruption, Value: 5}},
	},
	"glitched-ace": {
		ID: "glitched-ace", Name: "Glitched Ace", Cost: 80,
		Text: "+2 credits whenever this card is dealt, and a 10% bust shield.",
		Effects: []Effect{
			{Kind: EffectBonusCredits, Value: 2},
			{Kind: EffectShield, Value: 0.10},
		},
	},
	"void-engine": {
		ID: "void-engine", Name: "Void Engine", Cost: 85,
		Text: "+1 essence whenever this card is dealt, and +10% win profit.",
		Effects: []Effect{
			{Kind: EffectBonusEssence, Value: 1},
			{Kind: EffectCritical, Value: 0.10},
		},
	},
}

// DefaultUnlocked is the starter shop catalog. It is also the backfill value
// for snapshots written before the unlock system existed.
func DefaultUnlocked() []string {
	return []string{"overclock", "data-siphon"}
}

// LockedUpgrades returns catalog-ordered upgrade ids not yet in the unlocked
// set.
func LockedUpgrades(unlocked []string) []string {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}
	var locked []string
	for _, id := range UpgradeOrder {
		if !have[id] {
			locked = append(locked, id)
		}
	}
	return locked
}

var Consumables = map[string]*Consumable{
	"hole-scan": {
		ID: "hole-scan", Name: "Hole Scan", Cost: 30,
		Text: "Reveal the dealer's hole card this round.",
		Kind: ConsumableRevealHole,
	},
	"entropy-flush": {
		ID: "entropy-flush", Name: "Entropy Flush", Cost: 40,
		Text: "Reduce corruption by 3.", Kind: ConsumableReduceCorruption, Value: 3,
	},
	"stacked-deck": {
		ID: "stacked-deck", Name: "Stacked Deck", Cost: 50,
		Text: "Your next drawn card is guaranteed to be worth 10.",
		Kind: ConsumableForceTen,
	},
}

// Passive ids with engine-side behavior:
//
//	vip             +0.1 payout multiplier on wins
//	essence-conduit +2 essence on every win
//	hole-scanner    dealer hole card revealed from the deal
//	encryption-error shop prices ×1.2
//	transaction-fee  every hit costs 2 credits
//	void-siphon      placing a bet drains 1 essence
var Passives = map[string]*Passive{
	"vip": {
		ID: "vip", Name: "VIP Chip", Cost: 120, Rarity: RarityRare,
		Text: "+10% win profit.",
	},
	"essence-conduit": {
		ID: "essence-conduit", Name: "Essence Conduit", Cost: 90, Rarity: RarityCommon,
		Text: "+2 essence on every win.",
	},
	"hole-scanner": {
		ID: "hole-scanner", Name: "Hole Scanner", Cost: 110, Rarity: RarityRare,
		Text: "The dealer's hole card is always revealed.",
	},
	"encryption-error": {
		ID: "encryption-error", Name: "Encryption Error", Curse: true, Rarity: RarityCommon,
		Text: "All shop prices are 20% higher.",
	},
	"transaction-fee": {
		ID: "transaction-fee", Name: "Transaction Fee", Curse: true, Rarity: RarityCommon,
		Text: "Every hit costs 2 credits.",
	},
	"void-siphon": {
		ID: "void-siphon", Name: "Void Siphon", Curse: true, Rarity: RarityRare,
		Text: "Placing a bet drains 1 essence.",
	},
}

// CurseIDs returns all curse passive ids in a fixed order.
func CurseIDs() []string {
	return []string{"encryption-error", "transaction-fee", "void-siphon"}
}

var MetaUpgrades = map[string]*MetaUpgrade{
	"priority-access": {
		ID: "priority-access", Name: "Priority Access", Cost: 150,
		Text: "All run shop prices ×0.9.", Kind: MetaPriceDiscount,
	},
	"slush-fund": {
		ID: "slush-fund", Name: "Slush Fund", Cost: 100,
		Text: "+50 starting credits.", Kind: MetaStartCredits, Value: 50,
	},
	"essence-cache": {
		ID: "essence-cache", Name: "Essence Cache", Cost: 80,
		Text: "+25 starting essence.", Kind: MetaStartEssence, Value: 25,
	},
	"firmware-patch": {
		ID: "firmware-patch", Name: "Firmware Patch", Cost: 120,
		Text: "+2 starting corruption threshold.", Kind: MetaStartThreshold, Value: 2,
	},
	"care-package": {
		ID: "care-package", Name: "Care Package", Cost: 60,
		Text: "Start each run with a Hole Scan.", Kind: MetaStartConsumable, ConsumableID: "hole-scan",
	},
}

// MetaOrder fixes iteration order for applying hacks and listing the
// meta-shop.
var MetaOrder = []string{
	"priority-access",
	"slush-fund",
	"essence-cache",
	"firmware-patch",
	"care-package",
}

// HouseDebuffs describes what each house level band does to the player.
// The rules themselves live in the engine; this table is display data.
var HouseDebuffs = map[int]string{
	3: "Essence tax: cards no longer grant their base +1 essence.",
	4: "Inflation: card upgrade prices ×1.5.",
	5: "Boss round: the dealer's first card is always a King (repeats every 5 levels).",
	7: "House edge: ties go to the House.",
}
