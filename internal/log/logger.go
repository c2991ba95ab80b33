package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging run events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 16 chars for alignment
	for len(phase) < 16 {
		phase += " "
	}
	return fmt.Sprintf("R%-3d %s| %s", e.Round, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRunStartEvent(credits, essence int) GameEvent {
	return GameEvent{
		Phase:   "Betting",
		Type:    EventRunStart,
		Details: fmt.Sprintf("=== New run: %d credits, %d essence ===", credits, essence),
	}
}

func NewBetEvent(round, amount, credits int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Betting",
		Type:    EventBet,
		Details: fmt.Sprintf("Bet %d placed (%d credits left)", amount, credits),
	}
}

func NewDealEvent(round int, phase string, who, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   phase,
		Type:    EventDeal,
		Card:    cardName,
		Details: fmt.Sprintf("%s is dealt %s", who, cardName),
	}
}

func NewHitEvent(round int, cardName string, score int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Playing",
		Type:    EventHit,
		Card:    cardName,
		Details: fmt.Sprintf("Hit: %s (score %d)", cardName, score),
	}
}

func NewStandEvent(round, score int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Playing",
		Type:    EventStand,
		Details: fmt.Sprintf("Stand on %d", score),
	}
}

func NewDoubleDownEvent(round, bet int, cardName string, score int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Playing",
		Type:    EventDoubleDown,
		Card:    cardName,
		Details: fmt.Sprintf("Double down to %d: %s (score %d)", bet, cardName, score),
	}
}

func NewDealerDrawEvent(round int, cardName string, score int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "DealerTurn",
		Type:    EventDealerDraw,
		Card:    cardName,
		Details: fmt.Sprintf("Dealer draws %s (score %d)", cardName, score),
	}
}

func NewDealerStandEvent(round, score int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "DealerTurn",
		Type:    EventDealerStand,
		Details: fmt.Sprintf("Dealer stands on %d", score),
	}
}

func NewShuffleEvent(round int, phase string, count int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   phase,
		Type:    EventShuffle,
		Details: fmt.Sprintf("Discard pile reshuffled into draw pile (%d cards)", count),
	}
}

func NewOutcomeEvent(round int, outcome string, payout int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "RoundOver",
		Type:    EventOutcome,
		Details: fmt.Sprintf("%s (payout %d)", outcome, payout),
	}
}

func NewEssenceEvent(round, amount int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "RoundOver",
		Type:    EventEssence,
		Details: fmt.Sprintf("+%d essence (%s)", amount, reason),
	}
}

func NewLevelUpEvent(round, level, threshold int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "RoundOver",
		Type:    EventLevelUp,
		Details: fmt.Sprintf("The House rises to level %d (next at %d wins)", level, threshold),
	}
}

func NewCurseGrantedEvent(round int, name string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "RoundOver",
		Type:    EventCurseGranted,
		Card:    name,
		Details: fmt.Sprintf("The House inflicts a curse: %s", name),
	}
}

func NewUpgradeOfferEvent(round int, ids []string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "UpgradeSelection",
		Type:    EventUpgradeOffer,
		Details: fmt.Sprintf("Upgrade unlock offered: %s", strings.Join(ids, ", ")),
	}
}

func NewUpgradeSelectedEvent(round int, id string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "UpgradeSelection",
		Type:    EventUpgradeSelected,
		Card:    id,
		Details: fmt.Sprintf("Unlocked upgrade %s", id),
	}
}

func NewPurchaseEvent(round int, name string, cost int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Forge",
		Type:    EventPurchase,
		Card:    name,
		Details: fmt.Sprintf("Bought %s for %d essence", name, cost),
	}
}

func NewPurgeEvent(round int, cardName string, cost int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "Forge",
		Type:    EventPurge,
		Card:    cardName,
		Details: fmt.Sprintf("Purged %s for %d essence", cardName, cost),
	}
}

func NewConsumableEvent(round int, phase string, name string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   phase,
		Type:    EventConsumable,
		Card:    name,
		Details: fmt.Sprintf("Used %s", name),
	}
}

func NewMetaPurchaseEvent(name string, cost int) GameEvent {
	return GameEvent{
		Type:    EventMetaPurchase,
		Card:    name,
		Details: fmt.Sprintf("Unlocked hack %s for %d fragments", name, cost),
	}
}

func NewGameOverEvent(round, level, fragments int) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   "GameOver",
		Type:    EventGameOver,
		Details: fmt.Sprintf("Run over at house level %d — %d fragments banked", level, fragments),
	}
}

func NewPhaseChangeEvent(round int, phase string) GameEvent {
	return GameEvent{
		Round:   round,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}
