package entity

import "math"

const (
	minMoveSpeed  = 0.1
	minMultiplier = 0.01
)

// EnemyStats holds the scalable combat stats of an enemy
type EnemyStats struct {
	MaxHP         int
	ContactDamage int
	MoveSpeed     float64
}

// Enemy is a hostile combatant body
type Enemy struct {
	ID     EntityID
	Kind   string
	Boss   bool
	Pos    Vec2
	Size   float64
	Health *Health

	base  EnemyStats
	stats EnemyStats
}

// NewEnemy creates an enemy with the given base stats at full health
func NewEnemy(id EntityID, kind string, pos Vec2, size float64, stats EnemyStats) *Enemy {
	e := &Enemy{
		ID:     id,
		Kind:   kind,
		Pos:    pos,
		Size:   size,
		Health: NewHealth(stats.MaxHP),
	}
	e.SetStats(stats)
	return e
}

// SetStats replaces the base stats and resets current stats and health to them
func (e *Enemy) SetStats(s EnemyStats) {
	if s.MaxHP < 1 {
		s.MaxHP = 1
	}
	if s.ContactDamage < 0 {
		s.ContactDamage = 0
	}
	s.MoveSpeed = math.Max(minMoveSpeed, s.MoveSpeed)
	e.base = s
	e.stats = s
	e.Health.SetMax(s.MaxHP)
}

// ApplyWaveMultipliers recomputes current stats from the base stats.
// Applying the same multipliers twice yields the same result.
func (e *Enemy) ApplyWaveMultipliers(hpMul, dmgMul, speedMul float64) {
	hpMul = math.Max(minMultiplier, hpMul)
	dmgMul = math.Max(minMultiplier, dmgMul)
	speedMul = math.Max(minMultiplier, speedMul)

	e.stats = EnemyStats{
		MaxHP:         max(1, int(math.Round(float64(e.base.MaxHP)*hpMul))),
		ContactDamage: max(1, int(math.Round(float64(e.base.ContactDamage)*dmgMul))),
		MoveSpeed:     math.Max(minMoveSpeed, e.base.MoveSpeed*speedMul),
	}
	if e.base.ContactDamage == 0 {
		// ranged-only kinds keep no contact damage
		e.stats.ContactDamage = 0
	}
	e.Health.SetMax(e.stats.MaxHP)
}

// Stats returns the current (possibly wave-scaled) stats
func (e *Enemy) Stats() EnemyStats { return e.stats }

// BaseStats returns the unscaled stats
func (e *Enemy) BaseStats() EnemyStats { return e.base }

// AgentID implements the navigation agent contract
func (e *Enemy) AgentID() EntityID { return e.ID }

// Position returns the enemy position
func (e *Enemy) Position() Vec2 { return e.Pos }

// SetPosition moves the enemy
func (e *Enemy) SetPosition(p Vec2) { e.Pos = p }

// Speed returns the current move speed
func (e *Enemy) Speed() float64 { return e.stats.MoveSpeed }

// Radius returns the collision radius
func (e *Enemy) Radius() float64 { return e.Size }

// Alive reports whether the enemy has hit points left
func (e *Enemy) Alive() bool { return !e.Health.IsDead() }

// TakeDamage forwards damage to the enemy's health
func (e *Enemy) TakeDamage(amount int) bool { return e.Health.TakeDamage(amount) }

// Faction returns FactionEnemy
func (e *Enemy) Faction() Faction { return FactionEnemy }
