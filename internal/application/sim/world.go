package sim

import (
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
)

// World holds the live combatants of a run and the next entity ID
type World struct {
	nextID entity.EntityID

	live    []system.Combatant
	pending []system.Combatant

	kills int
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{nextID: 1} // 0 is "nil"
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Add queues a combatant; it joins the live set at the next FlushPending
func (w *World) Add(c system.Combatant) {
	w.pending = append(w.pending, c)
}

// FlushPending moves queued combatants into the live set
func (w *World) FlushPending() int {
	n := len(w.pending)
	w.live = append(w.live, w.pending...)
	w.pending = w.pending[:0]
	return n
}

// Combatants returns the live combatants in spawn order
func (w *World) Combatants() []system.Combatant {
	return w.live
}

// Pending returns the number of queued combatants
func (w *World) Pending() int { return len(w.pending) }

// Targets returns the live enemies as projectile targets
func (w *World) Targets() []system.Target {
	targets := make([]system.Target, 0, len(w.live))
	for _, c := range w.live {
		targets = append(targets, c.Enemy())
	}
	return targets
}

// Enemies returns the bodies of live and queued combatants
func (w *World) Enemies() []*entity.Enemy {
	enemies := make([]*entity.Enemy, 0, len(w.live)+len(w.pending))
	for _, c := range w.live {
		enemies = append(enemies, c.Enemy())
	}
	for _, c := range w.pending {
		enemies = append(enemies, c.Enemy())
	}
	return enemies
}

// Find returns the combatant with the given id
func (w *World) Find(id entity.EntityID) (system.Combatant, bool) {
	for _, c := range w.live {
		if c.Enemy().ID == id {
			return c, true
		}
	}
	for _, c := range w.pending {
		if c.Enemy().ID == id {
			return c, true
		}
	}
	return nil, false
}

// CountEnemies returns the number of live combatants
func (w *World) CountEnemies() int {
	return len(w.live)
}

// Kills returns the number of dead combatants swept so far
func (w *World) Kills() int { return w.kills }

// Sweep removes dead combatants, releasing their listeners.
// forget is called with each removed id.
func (w *World) Sweep(forget func(entity.EntityID)) int {
	kept := w.live[:0]
	removed := 0
	for _, c := range w.live {
		e := c.Enemy()
		if e.Alive() {
			kept = append(kept, c)
			continue
		}
		e.Health.Release()
		if forget != nil {
			forget(e.ID)
		}
		removed++
	}
	for i := len(kept); i < len(w.live); i++ {
		w.live[i] = nil
	}
	w.live = kept
	w.kills += removed
	return removed
}
