package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/horde/internal/domain/entity"
)

const minRingAttempts = 4

// SpawnConfig configures spawn position resolution
type SpawnConfig struct {
	Points       []entity.Vec2
	Jitter       float64
	Shuffle      bool
	SampleRadius float64
	RingMin      float64
	RingMax      float64
	Attempts     int
}

// DefaultSpawnConfig returns the stock spawn ring settings
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Jitter:       0.75,
		Shuffle:      true,
		SampleRadius: 2,
		RingMin:      6,
		RingMax:      12,
		Attempts:     16,
	}
}

// SpawnResolver picks walkable spawn positions.
// Predefined points are consumed in (optionally shuffled) order; ring sampling
// around the origin is the fallback.
type SpawnResolver struct {
	cfg   SpawnConfig
	nav   Navigator
	rng   *rand.Rand
	queue []entity.Vec2
}

// NewSpawnResolver creates a resolver. A nil nav accepts every candidate.
func NewSpawnResolver(nav Navigator, rng *rand.Rand, cfg SpawnConfig) *SpawnResolver {
	cfg.SampleRadius = math.Max(0.01, cfg.SampleRadius)
	cfg.Jitter = math.Max(0, cfg.Jitter)
	return &SpawnResolver{cfg: cfg, nav: nav, rng: rng}
}

// PrepareWave resets the point queue for a new wave
func (r *SpawnResolver) PrepareWave() {
	r.queue = r.queue[:0]
	r.refill()
}

func (r *SpawnResolver) refill() {
	if len(r.cfg.Points) == 0 {
		return
	}
	start := len(r.queue)
	r.queue = append(r.queue, r.cfg.Points...)
	if r.cfg.Shuffle {
		fresh := r.queue[start:]
		r.rng.Shuffle(len(fresh), func(i, j int) { fresh[i], fresh[j] = fresh[j], fresh[i] })
	}
}

// Next returns the next enemy spawn position around origin
func (r *SpawnResolver) Next(origin entity.Vec2) entity.Vec2 {
	if len(r.cfg.Points) > 0 {
		if len(r.queue) == 0 {
			r.refill()
		}
		if len(r.queue) > 0 {
			point := r.queue[0]
			r.queue = r.queue[1:]
			if r.cfg.Jitter > 0 {
				point = point.Add(r.insideDisc(r.cfg.Jitter))
			}
			if snapped, ok := r.sample(point); ok {
				return snapped
			}
		}
	}
	return r.Ring(origin, r.cfg.RingMin, r.cfg.RingMax)
}

// Ring samples a walkable point at a distance in [minR, maxR] from origin.
// Returns origin when every attempt fails.
func (r *SpawnResolver) Ring(origin entity.Vec2, minR, maxR float64) entity.Vec2 {
	lo := math.Max(0, math.Min(minR, maxR))
	hi := math.Max(lo, math.Max(minR, maxR))
	if hi <= 0 {
		return origin
	}

	attempts := max(minRingAttempts, r.cfg.Attempts)
	for i := 0; i < attempts; i++ {
		dir := r.insideDisc(1)
		if dir.Len() < 0.01 {
			dir = entity.Vec2{Y: 1}
		}
		dir = dir.Normalize()
		dist := lo + r.rng.Float64()*(hi-lo)
		if snapped, ok := r.sample(origin.Add(dir.Scale(dist))); ok {
			return snapped
		}
	}
	return origin
}

func (r *SpawnResolver) sample(p entity.Vec2) (entity.Vec2, bool) {
	if r.nav == nil {
		return p, true
	}
	return r.nav.SampleWalkable(p, r.cfg.SampleRadius)
}

// insideDisc returns a uniform random point within a disc of the given radius
func (r *SpawnResolver) insideDisc(radius float64) entity.Vec2 {
	angle := r.rng.Float64() * 2 * math.Pi
	dist := radius * math.Sqrt(r.rng.Float64())
	return entity.FromAngle(angle).Scale(dist)
}

// Pending returns how many predefined points remain queued
func (r *SpawnResolver) Pending() int { return len(r.queue) }
