package game

import (
	"math/rand"
	"time"

	"github.com/okn1ce/VoidBJ/internal/log"
)

// Store is the injected persistence collaborator. A nil snapshot with a nil
// error means "nothing saved"; implementations degrade corrupt snapshots to
// that same answer rather than failing startup.
type Store interface {
	SaveRun(*RunSnapshot) error
	LoadRun() (*RunSnapshot, error)
	ClearRun() error
	SaveGlobal(*GlobalSnapshot) error
	LoadGlobal() (*GlobalSnapshot, error)
}

// Config holds configuration for creating an engine.
type Config struct {
	Seed   int64 // RNG seed (0 = time-based)
	Logger log.EventLogger
	Store  Store // nil for in-memory play
}

// Engine owns the run and global state and exposes the full action surface.
// Actions are processed to completion one at a time; there is no concurrent
// mutation. Domain failures set Run.Status and leave state unchanged; Go
// errors are reserved for internal faults and storage problems.
type Engine struct {
	Run    *RunState
	Global *GlobalState

	rng    *rand.Rand
	logger log.EventLogger
	store  Store
}

// New creates an engine, loading persisted global and run state when a store
// is provided. A missing or unreadable run snapshot means no run in progress.
func New(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	e := &Engine{
		Global: &GlobalState{},
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		store:  cfg.Store,
	}

	if cfg.Store != nil {
		if snap, err := cfg.Store.LoadGlobal(); err == nil && snap != nil {
			e.Global = RestoreGlobal(snap)
		}
		if snap, err := cfg.Store.LoadRun(); err == nil && snap != nil {
			if run, err := RestoreRun(snap); err == nil {
				e.Run = run
			}
		}
	}
	return e
}

// InProgress reports whether a run is loaded and still alive.
func (e *Engine) InProgress() bool {
	return e.Run != nil && e.Run.Phase != PhaseGameOver
}

// StartRun creates a fresh run, applies every unlocked permanent hack as a
// flat one-time adjustment, and bumps the lifetime run counter.
func (e *Engine) StartRun() {
	r := NewRunState()
	r.DrawPile = Shuffle(e.rng, r.MasterDeck)

	for _, id := range MetaOrder {
		if !e.Global.HasHack(id) {
			continue
		}
		hack := MetaUpgrades[id]
		switch hack.Kind {
		case MetaStartCredits:
			r.Credits += hack.Value
		case MetaStartEssence:
			r.Essence += hack.Value
		case MetaStartThreshold:
			r.Threshold += hack.Value
		case MetaStartConsumable:
			if c, ok := Consumables[hack.ConsumableID]; ok && len(r.Inventory) < InventoryCap {
				r.Inventory = append(r.Inventory, c)
			}
		}
		// MetaPriceDiscount is an ongoing pricing modifier, handled in Price().
	}

	r.Status = "New run started. Place your bet."
	e.Run = r
	e.Global.Runs++

	e.logger.Log(log.NewRunStartEvent(r.Credits, r.Essence))
	e.saveRun()
	e.saveGlobal()
}

// fail records a domain failure without touching state.
func (e *Engine) fail(msg string) {
	if e.Run != nil {
		e.Run.Status = msg
	}
}

func (e *Engine) saveRun() {
	if e.store == nil || e.Run == nil {
		return
	}
	_ = e.store.SaveRun(e.Run.Snapshot())
}

func (e *Engine) saveGlobal() {
	if e.store == nil {
		return
	}
	_ = e.store.SaveGlobal(e.Global.Snapshot())
}

func (e *Engine) clearRun() {
	if e.store == nil {
		return
	}
	_ = e.store.ClearRun()
}

// Events exposes the engine's event log.
func (e *Engine) Events() []log.GameEvent {
	return e.logger.Events()
}
