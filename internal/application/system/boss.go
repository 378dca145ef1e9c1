package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/horde/internal/domain/entity"
)

const (
	minBossFireInterval   = 0.1
	minSummonInterval     = 0.5
	maxLOSRetryDelay      = 1.25
	minSummonRadiusSpread = 0.1
	summonSnapRadius      = 1.0
)

// BossConfig configures the boss policy
type BossConfig struct {
	StopDistance    float64
	FireInterval    float64
	MinFireDistance float64
	RequireLOS      bool
	Volley          entity.Volley
	ContactCooldown float64

	MinionKind      string
	SummonInterval  float64
	SummonRadiusMin float64
	SummonRadiusMax float64
	SummonCountMin  int
	SummonCountMax  int
}

// DefaultBossConfig returns the stock boss tuning
func DefaultBossConfig() BossConfig {
	return BossConfig{
		StopDistance: 1.5,
		FireInterval: 3.5,
		RequireLOS:   true,
		Volley: entity.Volley{
			Bullet: entity.BulletSpec{Speed: 4, Range: 10, Damage: 12, Size: 2.5},
			Count:  1,
		},
		ContactCooldown: 1.0,
		MinionKind:      "slime",
		SummonInterval:  6,
		SummonRadiusMin: 1.5,
		SummonRadiusMax: 3,
		SummonCountMin:  1,
		SummonCountMax:  2,
	}
}

// Boss pursues to melee range, fires heavy volleys and periodically summons minions
type Boss struct {
	pursuer
	cfg     BossConfig
	pool    *ProjectilePool
	los     LineOfSight
	spawner Spawner
	events  EventSink
	rng     *rand.Rand

	nextShot   float64
	nextSummon float64
	started    bool
	announced  bool
	warned     bool
}

// NewBoss creates a boss policy for e.
// Death of the body emits BossDefeated on events.
func NewBoss(e *entity.Enemy, nav Navigator, targets TargetProvider, pool *ProjectilePool, los LineOfSight,
	spawner Spawner, events EventSink, rng *rand.Rand, cfg BossConfig) *Boss {
	cfg.FireInterval = math.Max(minBossFireInterval, cfg.FireInterval)
	cfg.SummonInterval = math.Max(minSummonInterval, cfg.SummonInterval)
	cfg.SummonCountMin = max(1, cfg.SummonCountMin)
	cfg.SummonCountMax = max(cfg.SummonCountMin, cfg.SummonCountMax)
	lo := math.Max(0, math.Min(cfg.SummonRadiusMin, cfg.SummonRadiusMax))
	hi := math.Max(lo+minSummonRadiusSpread, math.Max(cfg.SummonRadiusMin, cfg.SummonRadiusMax))
	cfg.SummonRadiusMin, cfg.SummonRadiusMax = lo, hi
	if events == nil {
		events = NopEvents{}
	}

	b := &Boss{
		pursuer: newPursuer(e, nav, targets, cfg.ContactCooldown),
		cfg:     cfg,
		pool:    pool,
		los:     los,
		spawner: spawner,
		events:  events,
		rng:     rng,
	}
	e.Boss = true
	e.Health.OnDeath(func() {
		b.events.BossDefeated(b.enemy.ID)
	})
	return b
}

// Update runs one tick
func (b *Boss) Update(now, _ float64) {
	if b.checkDead() {
		return
	}

	if !b.started {
		// timers are relative to the first tick the boss is alive
		b.started = true
		b.nextShot = now + b.rng.Float64()*b.cfg.FireInterval*0.5
		b.nextSummon = now + b.rng.Float64()*b.cfg.SummonInterval*0.5
	}
	if !b.announced {
		b.announced = true
		b.events.BossSpawned(b.enemy.ID)
	}

	t, ok := b.target()
	if ok {
		b.move(t)
		b.tryContact(now, t)
		b.shoot(now, t)
	} else {
		b.stop()
	}
	b.summon(now)
}

func (b *Boss) move(t Target) {
	if b.enemy.Pos.Dist(t.Position()) <= b.cfg.StopDistance {
		b.state = PolicyHolding
		b.stop()
		return
	}
	b.state = PolicySeeking
	b.moveTo(t.Position())
}

func (b *Boss) shoot(now float64, t Target) {
	if b.pool == nil {
		if !b.warned {
			log.Printf("[Boss] Warning: boss %d has no projectile pool, shooting disabled", b.enemy.ID)
			b.warned = true
		}
		return
	}
	if now < b.nextShot {
		return
	}
	if b.enemy.Pos.Dist(t.Position()) < b.cfg.MinFireDistance {
		return
	}
	if b.cfg.RequireLOS && b.los != nil && !b.los.Clear(b.enemy.Pos, t.Position()) {
		b.nextShot = now + math.Min(b.cfg.FireInterval*0.5, maxLOSRetryDelay)
		return
	}

	FireVolley(b.pool, b.enemy.Pos, t.Position().Sub(b.enemy.Pos), b.cfg.Volley)
	b.nextShot = now + b.cfg.FireInterval
}

func (b *Boss) summon(now float64) {
	if b.spawner == nil || b.cfg.MinionKind == "" || now < b.nextSummon {
		return
	}
	b.nextSummon = now + b.cfg.SummonInterval

	count := b.cfg.SummonCountMin + b.rng.Intn(b.cfg.SummonCountMax-b.cfg.SummonCountMin+1)
	for i := 0; i < count; i++ {
		radius := b.cfg.SummonRadiusMin + b.rng.Float64()*(b.cfg.SummonRadiusMax-b.cfg.SummonRadiusMin)
		angle := b.rng.Float64() * 2 * math.Pi
		pos := b.enemy.Pos.Add(entity.FromAngle(angle).Scale(radius))
		if b.nav != nil {
			if snapped, ok := b.nav.SampleWalkable(pos, summonSnapRadius); ok {
				pos = snapped
			}
		}
		b.spawner.Spawn(b.cfg.MinionKind, pos)
	}
}

// NextSummon returns the game time of the next summon
func (b *Boss) NextSummon() float64 { return b.nextSummon }

// NextShot returns the game time of the next shot attempt
func (b *Boss) NextShot() float64 { return b.nextShot }
