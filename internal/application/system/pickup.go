package system

import (
	"math/rand"

	"github.com/younwookim/horde/internal/domain/entity"
)

// MedkitConfig configures intermission medkits
type MedkitConfig struct {
	CountMin  int
	CountMax  int
	HealMin   int
	HealMax   int
	RadiusMin float64
	RadiusMax float64
	Size      float64
}

// DefaultMedkitConfig returns the stock medkit settings
func DefaultMedkitConfig() MedkitConfig {
	return MedkitConfig{
		CountMin:  1,
		CountMax:  2,
		HealMin:   1,
		HealMax:   2,
		RadiusMin: 2,
		RadiusMax: 8,
		Size:      0.4,
	}
}

// PickupField owns the medkits placed between waves
type PickupField struct {
	cfg      MedkitConfig
	resolver *SpawnResolver
	rng      *rand.Rand

	medkits []*entity.Medkit
	nextID  entity.EntityID
}

// NewPickupField creates an empty field
func NewPickupField(resolver *SpawnResolver, rng *rand.Rand, cfg MedkitConfig) *PickupField {
	return &PickupField{cfg: cfg, resolver: resolver, rng: rng, nextID: 1}
}

// SpawnMedkits places a random number of medkits around origin
func (f *PickupField) SpawnMedkits(origin entity.Vec2) int {
	lo := max(0, min(f.cfg.CountMin, f.cfg.CountMax))
	hi := max(lo, max(f.cfg.CountMin, f.cfg.CountMax))
	if hi <= 0 {
		return 0
	}
	count := lo + f.rng.Intn(hi-lo+1)

	healLo := max(1, min(f.cfg.HealMin, f.cfg.HealMax))
	healHi := max(healLo, max(f.cfg.HealMin, f.cfg.HealMax))

	for i := 0; i < count; i++ {
		pos := f.resolver.Ring(origin, f.cfg.RadiusMin, f.cfg.RadiusMax)
		f.medkits = append(f.medkits, &entity.Medkit{
			ID:     f.nextID,
			Pos:    pos,
			Radius: f.cfg.Size,
			Heal:   healLo + f.rng.Intn(healHi-healLo+1),
		})
		f.nextID++
	}
	return count
}

// Collect heals the player from every touched medkit.
// A medkit is consumed only if the heal succeeds.
func (f *PickupField) Collect(p *entity.Player) int {
	if p == nil || !p.Alive() {
		return 0
	}
	collected := 0
	kept := f.medkits[:0]
	for _, m := range f.medkits {
		if p.Pos.Dist(m.Pos) <= p.Radius()+m.Radius && p.Health.Heal(m.Heal) {
			m.Collected = true
			collected++
			continue
		}
		kept = append(kept, m)
	}
	f.medkits = kept
	return collected
}

// Clear removes every medkit
func (f *PickupField) Clear() {
	f.medkits = f.medkits[:0]
}

// Medkits returns the medkits on the field
func (f *PickupField) Medkits() []*entity.Medkit {
	return f.medkits
}
