package system

import "github.com/younwookim/horde/internal/domain/entity"

// Agent is anything the navigator can move
type Agent interface {
	AgentID() entity.EntityID
	Position() entity.Vec2
	SetPosition(entity.Vec2)
	Speed() float64
}

// Navigator is the opaque movement capability
type Navigator interface {
	// SetDestination makes the agent walk toward point on subsequent steps
	SetDestination(agent Agent, point entity.Vec2)
	// Stop halts the agent in place
	Stop(agent Agent)
	// SampleWalkable snaps point to the nearest walkable location within radius
	SampleWalkable(point entity.Vec2, radius float64) (entity.Vec2, bool)
}

// Terrain answers point walkability queries
type Terrain interface {
	Walkable(p entity.Vec2) bool
}

// LineOfSight answers visibility queries between two points
type LineOfSight interface {
	Clear(from, to entity.Vec2) bool
}

// Damageable accepts hits
type Damageable interface {
	TakeDamage(amount int) bool
	Alive() bool
}

// Target is a damageable body with a position
type Target interface {
	Damageable
	Position() entity.Vec2
	Radius() float64
	Faction() entity.Faction
}

// TargetProvider resolves the current target; it may be unresolved
type TargetProvider interface {
	Target() (Target, bool)
}

// TargetFunc adapts a function to TargetProvider
type TargetFunc func() (Target, bool)

// Target implements TargetProvider
func (f TargetFunc) Target() (Target, bool) { return f() }

// Combatant is a spawned enemy driven by a policy
type Combatant interface {
	Enemy() *entity.Enemy
	Update(now, dt float64)
}

// Spawner instantiates a combatant of the given kind at pos
type Spawner interface {
	Spawn(kind string, pos entity.Vec2) (Combatant, bool)
}

// ProgressionSink receives persistent progression updates
type ProgressionSink interface {
	ReportWaveCleared(wave int)
	GrantCurrency(amount int)
	GrantExperience(amount int)
	UnlockAbility(name string)
}

// NopProgression discards progression updates
type NopProgression struct{}

func (NopProgression) ReportWaveCleared(int) {}
func (NopProgression) GrantCurrency(int)     {}
func (NopProgression) GrantExperience(int)   {}
func (NopProgression) UnlockAbility(string)  {}
