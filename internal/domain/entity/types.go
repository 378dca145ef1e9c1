package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Faction identifies which side an entity or projectile fights for
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// String returns the string representation of the faction
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "Player"
	case FactionEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Opposes reports whether a projectile of faction f may hit an entity of faction other
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

// BulletSpec describes a single projectile launch
type BulletSpec struct {
	Speed  float64
	Range  float64
	Damage int
	Size   float64
}

// Volley describes a fan of projectiles fired at once
type Volley struct {
	Bullet    BulletSpec
	Count     int
	SpreadDeg float64
}

// Medkit is a healing pickup placed during intermissions
type Medkit struct {
	ID        EntityID
	Pos       Vec2
	Radius    float64
	Heal      int
	Collected bool
}
