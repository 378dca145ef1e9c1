package system

import "github.com/younwookim/horde/internal/domain/entity"

// PoolStats is a point-in-time view of a projectile pool
type PoolStats struct {
	Capacity int
	Active   int
	Idle     int
}

// ProjectilePool recycles projectiles for one faction.
// Capacity only grows; Acquire never blocks.
type ProjectilePool struct {
	faction entity.Faction
	terrain Terrain

	capacity int
	idle     []*entity.Projectile
	inUse    []*entity.Projectile
	isIdle   map[*entity.Projectile]bool
}

// NewProjectilePool creates a pool with prewarm idle instances
func NewProjectilePool(faction entity.Faction, prewarm int) *ProjectilePool {
	p := &ProjectilePool{
		faction: faction,
		idle:    make([]*entity.Projectile, 0, max(0, prewarm)),
		inUse:   make([]*entity.Projectile, 0, max(0, prewarm)),
		isIdle:  make(map[*entity.Projectile]bool, max(0, prewarm)),
	}
	p.Prewarm(prewarm)
	return p
}

// SetTerrain makes projectiles stop when they enter non-walkable ground
func (p *ProjectilePool) SetTerrain(t Terrain) {
	p.terrain = t
}

// Faction returns the faction every projectile of this pool belongs to
func (p *ProjectilePool) Faction() entity.Faction {
	return p.faction
}

// Prewarm allocates n additional idle instances
func (p *ProjectilePool) Prewarm(n int) {
	for i := 0; i < n; i++ {
		proj := &entity.Projectile{Faction: p.faction}
		p.capacity++
		p.idle = append(p.idle, proj)
		p.isIdle[proj] = true
	}
}

// Acquire returns an idle projectile, creating one if the pool is drained
func (p *ProjectilePool) Acquire() *entity.Projectile {
	var proj *entity.Projectile
	if n := len(p.idle); n > 0 {
		proj = p.idle[n-1]
		p.idle = p.idle[:n-1]
	} else {
		proj = &entity.Projectile{Faction: p.faction}
		p.capacity++
	}
	p.isIdle[proj] = false
	p.inUse = append(p.inUse, proj)
	return proj
}

// Fire acquires a projectile and launches it
func (p *ProjectilePool) Fire(origin, dir entity.Vec2, b entity.BulletSpec) *entity.Projectile {
	proj := p.Acquire()
	proj.Fire(origin, dir, b, p.faction)
	return proj
}

// Release returns proj to the idle set. Releasing an idle projectile is a no-op.
func (p *ProjectilePool) Release(proj *entity.Projectile) {
	if proj == nil {
		return
	}
	idle, known := p.isIdle[proj]
	if !known || idle {
		return
	}
	proj.Deactivate()
	p.isIdle[proj] = true
	p.idle = append(p.idle, proj)
	for i, q := range p.inUse {
		if q == proj {
			p.inUse = append(p.inUse[:i], p.inUse[i+1:]...)
			break
		}
	}
}

// Update advances every active projectile, applies hits and reclaims spent ones.
// Each projectile damages at most one target.
func (p *ProjectilePool) Update(dt float64, targets []Target) {
	kept := p.inUse[:0]
	for _, proj := range p.inUse {
		if !proj.Active {
			// acquired but not fired yet
			kept = append(kept, proj)
			continue
		}

		inRange := proj.Advance(dt)

		if t := p.firstHit(proj, targets); t != nil {
			t.TakeDamage(proj.Damage)
			p.reclaim(proj)
			continue
		}

		if !inRange || (p.terrain != nil && !p.terrain.Walkable(proj.Pos)) {
			p.reclaim(proj)
			continue
		}

		kept = append(kept, proj)
	}
	for i := len(kept); i < len(p.inUse); i++ {
		p.inUse[i] = nil
	}
	p.inUse = kept
}

func (p *ProjectilePool) firstHit(proj *entity.Projectile, targets []Target) Target {
	for _, t := range targets {
		if t == nil || !t.Alive() || !proj.Faction.Opposes(t.Faction()) {
			continue
		}
		if proj.Pos.Dist(t.Position()) <= proj.Radius()+t.Radius() {
			return t
		}
	}
	return nil
}

func (p *ProjectilePool) reclaim(proj *entity.Projectile) {
	proj.Deactivate()
	p.isIdle[proj] = true
	p.idle = append(p.idle, proj)
}

// Active returns the projectiles currently in flight
func (p *ProjectilePool) Active() []*entity.Projectile {
	out := make([]*entity.Projectile, 0, len(p.inUse))
	for _, proj := range p.inUse {
		if proj.Active {
			out = append(out, proj)
		}
	}
	return out
}

// Stats reports capacity and occupancy.
// Active counts projectiles in flight, matching Active().
func (p *ProjectilePool) Stats() PoolStats {
	active := 0
	for _, proj := range p.inUse {
		if proj.Active {
			active++
		}
	}
	return PoolStats{
		Capacity: p.capacity,
		Active:   active,
		Idle:     len(p.idle),
	}
}
