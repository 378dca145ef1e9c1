package entity

// PlayerStats holds the upgradable player stats
type PlayerStats struct {
	MoveSpeed  float64
	MaxHP      int
	FireRate   float64 // shots per second
	Bullet     BulletSpec
	Count      int
	SpreadDeg  float64
	MirrorFire bool
}

// DefaultPlayerStats returns the stats of a fresh, un-upgraded player
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MoveSpeed: 5,
		MaxHP:     5,
		FireRate:  4,
		Bullet: BulletSpec{
			Speed:  12,
			Range:  8,
			Damage: 1,
			Size:   1,
		},
		Count: 1,
	}
}

// FireInterval returns seconds between shots
func (s PlayerStats) FireInterval() float64 {
	return 1.0 / max(0.01, s.FireRate)
}

// Volley returns the player's shot pattern
func (s PlayerStats) Volley() Volley {
	return Volley{Bullet: s.Bullet, Count: max(1, s.Count), SpreadDeg: s.SpreadDeg}
}

// Player is the controllable combatant
type Player struct {
	ID     EntityID
	Pos    Vec2
	Size   float64
	Health *Health
	Stats  PlayerStats
}

// NewPlayer creates a player at pos with full health
func NewPlayer(id EntityID, pos Vec2, size float64, stats PlayerStats) *Player {
	return &Player{
		ID:     id,
		Pos:    pos,
		Size:   size,
		Health: NewHealth(stats.MaxHP),
		Stats:  stats,
	}
}

// Position returns the player position
func (p *Player) Position() Vec2 { return p.Pos }

// Radius returns the collision radius
func (p *Player) Radius() float64 { return p.Size }

// Alive reports whether the player has hit points left
func (p *Player) Alive() bool { return !p.Health.IsDead() }

// TakeDamage forwards damage to the player's health
func (p *Player) TakeDamage(amount int) bool { return p.Health.TakeDamage(amount) }

// Faction returns FactionPlayer
func (p *Player) Faction() Faction { return FactionPlayer }
