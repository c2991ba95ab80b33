package game

import (
	"fmt"

	"github.com/okn1ce/VoidBJ/internal/log"
)

// BuyMetaUpgrade spends fragments on a permanent hack. The meta-shop lives
// outside the run, so this is valid in any phase (or with no run at all).
func (e *Engine) BuyMetaUpgrade(id string) {
	m, ok := MetaUpgrades[id]
	if !ok {
		e.fail("No such hack.")
		return
	}
	if e.Global.HasHack(id) {
		e.fail(m.Name + " is already unlocked.")
		return
	}
	if e.Global.Fragments < m.Cost {
		e.fail(fmt.Sprintf("Need %d fragments for %s.", m.Cost, m.Name))
		return
	}

	e.Global.Fragments -= m.Cost
	e.Global.Hacks = append(e.Global.Hacks, id)
	if e.Run != nil {
		e.Run.Status = m.Name + " unlocked for future runs."
	}
	e.logger.Log(log.NewMetaPurchaseEvent(m.Name, m.Cost))
	e.saveGlobal()
}
