package entity

import "math"

// ProjectileBaseRadius is the collision radius of a projectile at scale 1
const ProjectileBaseRadius = 0.15

// MinProjectileScale is the smallest visual scale a projectile may have
const MinProjectileScale = 0.01

// MinProjectileSpeed keeps every fired projectile moving toward its range
const MinProjectileSpeed = 0.1

// Projectile is a straight-line bullet owned by a pool.
// While active, Traveled grows every Advance until it reaches MaxRange.
type Projectile struct {
	Pos      Vec2
	Dir      Vec2
	Speed    float64
	MaxRange float64
	Damage   int
	Scale    float64
	Traveled float64
	Faction  Faction
	Active   bool
}

// Fire launches the projectile from origin toward dir.
// A zero direction fires along +X. Speed is floored at MinProjectileSpeed
// and a negative range expires on the first Advance.
func (p *Projectile) Fire(origin, dir Vec2, b BulletSpec, faction Faction) {
	d := dir.Normalize()
	if d.IsZero() {
		d = Vec2{X: 1}
	}
	p.Pos = origin
	p.Dir = d
	p.Speed = math.Max(MinProjectileSpeed, b.Speed)
	p.MaxRange = math.Max(0, b.Range)
	p.Damage = b.Damage
	p.Scale = math.Max(MinProjectileScale, b.Size)
	p.Traveled = 0
	p.Faction = faction
	p.Active = true
}

// Advance moves the projectile one step.
// Returns false once the projectile has covered its range.
func (p *Projectile) Advance(dt float64) bool {
	if !p.Active {
		return false
	}
	step := p.Speed * dt
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	p.Traveled += step
	return p.Traveled < p.MaxRange
}

// Deactivate marks the projectile idle
func (p *Projectile) Deactivate() {
	p.Active = false
	p.Traveled = 0
}

// Radius returns the collision radius
func (p *Projectile) Radius() float64 {
	return ProjectileBaseRadius * p.Scale
}
