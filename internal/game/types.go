package game

import "strconv"

// --- Enums ---

type Phase int

const (
	PhaseBetting Phase = iota
	PhasePlaying
	PhaseDealerTurn
	PhaseRoundOver
	PhaseUpgradeSelection
	PhaseForge
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "Betting"
	case PhasePlaying:
		return "Playing"
	case PhaseDealerTurn:
		return "DealerTurn"
	case PhaseRoundOver:
		return "RoundOver"
	case PhaseUpgradeSelection:
		return "UpgradeSelection"
	case PhaseForge:
		return "Forge"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

type Suit int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	default:
		return "?"
	}
}

// Rank values 2–10 match the printed rank; 11–14 are J, Q, K, A.
type Rank int

const (
	RankTwo Rank = iota + 2
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// BlackjackValue returns the rank's base blackjack value. Aces count 11 here;
// Score handles the soft reduction to 1.
func (r Rank) BlackjackValue() int {
	switch {
	case r == RankAce:
		return 11
	case r >= RankJack:
		return 10
	default:
		return int(r)
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeNaturalWin
	OutcomeTieWin // tie awarded to the player at low house levels
	OutcomePush
	OutcomeLoss
	OutcomeBust
	OutcomeMitigated // bust softened by a shield upgrade
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeNaturalWin:
		return "Natural 21"
	case OutcomeTieWin:
		return "Tie (house folds)"
	case OutcomePush:
		return "Push"
	case OutcomeLoss:
		return "Loss"
	case OutcomeBust:
		return "Bust"
	case OutcomeMitigated:
		return "Bust (shield mitigated)"
	default:
		return "None"
	}
}

// IsWin reports whether the outcome triggers win-side progression.
func (o Outcome) IsWin() bool {
	switch o {
	case OutcomeWin, OutcomeNaturalWin, OutcomeTieWin:
		return true
	default:
		return false
	}
}

// --- Effects (tagged variants; one entry per discrete effect) ---

type EffectKind int

const (
	EffectBonusCredits EffectKind = iota
	EffectBonusEssence
	EffectShield           // chance to refund half the bet on bust
	EffectCritical         // additive payout multiplier on wins
	EffectReduceCorruption // lowers corruption when the card is dealt
	EffectOnBustEssence    // essence granted if the hand busts
	EffectOn21Credits      // credits granted on an exact 21
	EffectRiskCorruption   // credits now, corruption later
)

func (k EffectKind) String() string {
	switch k {
	case EffectBonusCredits:
		return "bonus-credits"
	case EffectBonusEssence:
		return "bonus-essence"
	case EffectShield:
		return "shield"
	case EffectCritical:
		return "critical"
	case EffectReduceCorruption:
		return "reduce-corruption"
	case EffectOnBustEssence:
		return "on-bust-essence"
	case EffectOn21Credits:
		return "on-21-credits"
	case EffectRiskCorruption:
		return "risk-corruption"
	default:
		return "unknown"
	}
}

// Effect is a single discrete effect carried by an upgrade.
type Effect struct {
	Kind  EffectKind
	Value float64
}

// Upgrade is an immutable catalog entry. Cards hold references to these;
// the same upgrade may be attached more than once and stacks.
type Upgrade struct {
	ID      string
	Name    string
	Text    string
	Cost    int
	Effects []Effect
}

// --- Consumables ---

type ConsumableKind int

const (
	ConsumableRevealHole ConsumableKind = iota
	ConsumableReduceCorruption
	ConsumableForceTen
)

type Consumable struct {
	ID    string
	Name  string
	Text  string
	Cost  int
	Kind  ConsumableKind
	Value int // magnitude for ConsumableReduceCorruption
}

// --- Passives (boons and curses) ---

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
)

func (r Rarity) String() string {
	if r == RarityRare {
		return "rare"
	}
	return "common"
}

// Passive is a permanent run-scoped modifier. Curses have no cost: they are
// never purchased, only inflicted by the progression engine.
type Passive struct {
	ID     string
	Name   string
	Text   string
	Cost   int
	Rarity Rarity
	Curse  bool
}

// --- Meta-upgrades (permanent hacks bought with fragments) ---

type MetaKind int

const (
	MetaStartCredits MetaKind = iota
	MetaStartEssence
	MetaStartThreshold
	MetaStartConsumable
	MetaPriceDiscount
)

type MetaUpgrade struct {
	ID           string
	Name         string
	Text         string
	Cost         int
	Kind         MetaKind
	Value        int
	ConsumableID string // for MetaStartConsumable
}
