package log

// EventType enumerates all observable run events.
type EventType int

const (
	EventRunStart EventType = iota
	EventBet
	EventDeal
	EventHit
	EventStand
	EventDoubleDown
	EventDealerDraw
	EventDealerStand
	EventShuffle
	EventOutcome
	EventEssence
	EventLevelUp
	EventCurseGranted
	EventUpgradeOffer
	EventUpgradeSelected
	EventPurchase
	EventPurge
	EventConsumable
	EventMetaPurchase
	EventGameOver
	EventPhaseChange
)

func (e EventType) String() string {
	switch e {
	case EventRunStart:
		return "RunStart"
	case EventBet:
		return "Bet"
	case EventDeal:
		return "Deal"
	case EventHit:
		return "Hit"
	case EventStand:
		return "Stand"
	case EventDoubleDown:
		return "DoubleDown"
	case EventDealerDraw:
		return "DealerDraw"
	case EventDealerStand:
		return "DealerStand"
	case EventShuffle:
		return "Shuffle"
	case EventOutcome:
		return "Outcome"
	case EventEssence:
		return "Essence"
	case EventLevelUp:
		return "LevelUp"
	case EventCurseGranted:
		return "CurseGranted"
	case EventUpgradeOffer:
		return "UpgradeOffer"
	case EventUpgradeSelected:
		return "UpgradeSelected"
	case EventPurchase:
		return "Purchase"
	case EventPurge:
		return "Purge"
	case EventConsumable:
		return "Consumable"
	case EventMetaPurchase:
		return "MetaPurchase"
	case EventGameOver:
		return "GameOver"
	case EventPhaseChange:
		return "PhaseChange"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a run.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 before the first bet)
	Phase   string    // current phase name (e.g. "Playing")
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
