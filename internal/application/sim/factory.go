package sim

import (
	"log"
	"math/rand"

	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/config"
)

// Factory builds combatants from enemy kind config.
// It implements system.Spawner; spawned combatants join the world at the end of the frame.
type Factory struct {
	world       *World
	kinds       map[string]config.EnemyKindConfig
	nav         system.Navigator
	los         system.LineOfSight
	targets     system.TargetProvider
	pool        *system.ProjectilePool
	events      system.EventSink
	progression system.ProgressionSink
	rng         *rand.Rand

	warned map[string]bool
}

var _ system.Spawner = (*Factory)(nil)

// FactoryDeps are the collaborators every spawned combatant shares
type FactoryDeps struct {
	World       *World
	Nav         system.Navigator
	LOS         system.LineOfSight
	Targets     system.TargetProvider
	Pool        *system.ProjectilePool
	Events      system.EventSink
	Progression system.ProgressionSink
	RNG         *rand.Rand
}

// NewFactory creates a factory for the given kinds
func NewFactory(kinds map[string]config.EnemyKindConfig, deps FactoryDeps) *Factory {
	if deps.Events == nil {
		deps.Events = system.NopEvents{}
	}
	if deps.Progression == nil {
		deps.Progression = system.NopProgression{}
	}
	return &Factory{
		world:       deps.World,
		kinds:       kinds,
		nav:         deps.Nav,
		los:         deps.LOS,
		targets:     deps.Targets,
		pool:        deps.Pool,
		events:      deps.Events,
		progression: deps.Progression,
		rng:         deps.RNG,
		warned:      make(map[string]bool),
	}
}

// Spawn implements system.Spawner
func (f *Factory) Spawn(kind string, pos entity.Vec2) (system.Combatant, bool) {
	k, ok := f.kinds[kind]
	if !ok {
		if !f.warned[kind] {
			log.Printf("[EnemyFactory] Warning: unknown enemy kind %q, spawn skipped", kind)
			f.warned[kind] = true
		}
		return nil, false
	}

	id := f.world.NewEntity()
	e := entity.NewEnemy(id, kind, pos, k.Radius, entity.EnemyStats{
		MaxHP:         k.Stats.MaxHP,
		ContactDamage: k.Stats.ContactDamage,
		MoveSpeed:     k.Stats.MoveSpeed,
	})

	var c system.Combatant
	switch k.Policy {
	case config.PolicyShooter:
		c = system.NewShooter(e, f.nav, f.targets, f.pool, f.los, shooterConfig(k))
	case config.PolicyBoss:
		c = system.NewBoss(e, f.nav, f.targets, f.pool, f.los, f, f.events, f.rng, bossConfig(k))
	default:
		c = system.NewChaser(e, f.nav, f.targets, system.ChaserConfig{ContactCooldown: k.ContactCooldown})
	}

	reward := system.RewardRange{
		CoinsMin: k.Reward.Coins.Min,
		CoinsMax: k.Reward.Coins.Max,
		ExpMin:   k.Reward.Exp.Min,
		ExpMax:   k.Reward.Exp.Max,
	}
	system.RewardOnDeath(e, reward, f.progression, f.rng)
	e.Health.OnDamage(func(amount, current int) {
		f.events.DamageTaken(id, entity.FactionEnemy, amount, current)
	})

	f.world.Add(c)
	return c, true
}

func bullet(b config.BulletConfig) entity.BulletSpec {
	return entity.BulletSpec{Speed: b.Speed, Range: b.Range, Damage: b.Damage, Size: b.Size}
}

func shooterConfig(k config.EnemyKindConfig) system.ShooterConfig {
	cfg := system.DefaultShooterConfig()
	cfg.ContactCooldown = k.ContactCooldown
	if s := k.Shooter; s != nil {
		cfg.DesiredRange = s.DesiredRange
		cfg.ReengageDelta = s.ReengageDelta
		cfg.FireInterval = s.FireInterval
		cfg.MinFireDistance = s.MinFireDistance
		cfg.RequireLOS = s.RequireLOS
		cfg.Volley = entity.Volley{Bullet: bullet(s.Bullet), Count: max(1, s.Count), SpreadDeg: s.SpreadDeg}
	}
	return cfg
}

func bossConfig(k config.EnemyKindConfig) system.BossConfig {
	cfg := system.DefaultBossConfig()
	cfg.ContactCooldown = k.ContactCooldown
	if b := k.Boss; b != nil {
		cfg.StopDistance = b.StopDistance
		cfg.FireInterval = b.FireInterval
		cfg.RequireLOS = b.RequireLOS
		cfg.Volley = entity.Volley{Bullet: bullet(b.Bullet), Count: max(1, b.Count), SpreadDeg: b.SpreadDeg}
		cfg.MinionKind = b.MinionKind
		cfg.SummonInterval = b.SummonInterval
		cfg.SummonRadiusMin = b.SummonRadius.Min
		cfg.SummonRadiusMax = b.SummonRadius.Max
		cfg.SummonCountMin = b.SummonCount.Min
		cfg.SummonCountMax = b.SummonCount.Max
	}
	return cfg
}
