package system

import (
	"log"
	"math"

	"github.com/younwookim/horde/internal/domain/entity"
)

// ShooterConfig configures the ranged policy
type ShooterConfig struct {
	DesiredRange    float64
	ReengageDelta   float64
	FireInterval    float64
	MinFireDistance float64
	RequireLOS      bool
	Volley          entity.Volley
	ContactCooldown float64
}

// DefaultShooterConfig returns the stock ranged tuning
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		DesiredRange:    4,
		ReengageDelta:   0.6,
		FireInterval:    0.8,
		MinFireDistance: 0.5,
		RequireLOS:      true,
		Volley: entity.Volley{
			Bullet: entity.BulletSpec{Speed: 10, Range: 10, Damage: 1, Size: 1},
			Count:  1,
		},
		ContactCooldown: 0.5,
	}
}

// Shooter keeps its distance from the target and fires volleys.
// Movement uses hysteresis around DesiredRange so it does not jitter at the edge.
type Shooter struct {
	pursuer
	cfg  ShooterConfig
	pool *ProjectilePool
	los  LineOfSight

	stopped  bool
	nextShot float64
	warned   bool
}

// NewShooter creates a ranged policy for e. A nil pool disables shooting.
func NewShooter(e *entity.Enemy, nav Navigator, targets TargetProvider, pool *ProjectilePool, los LineOfSight, cfg ShooterConfig) *Shooter {
	cfg.FireInterval = math.Max(0.01, cfg.FireInterval)
	cfg.ReengageDelta = math.Max(0, cfg.ReengageDelta)
	return &Shooter{
		pursuer: newPursuer(e, nav, targets, cfg.ContactCooldown),
		cfg:     cfg,
		pool:    pool,
		los:     los,
	}
}

// Advancing reports whether the shooter is currently walking toward its target
func (s *Shooter) Advancing() bool { return !s.stopped }

// Update runs one tick
func (s *Shooter) Update(now, _ float64) {
	if s.checkDead() {
		return
	}

	t, ok := s.target()
	if !ok {
		s.stop()
		return
	}

	dist := s.enemy.Pos.Dist(t.Position())
	s.updateHold(dist)
	if s.stopped {
		s.state = PolicyHolding
		s.stop()
	} else {
		s.state = PolicySeeking
		s.moveTo(t.Position())
	}

	s.tryContact(now, t)

	if now >= s.nextShot && s.canShoot(dist, t) {
		s.shootAt(t.Position())
		s.nextShot = now + s.cfg.FireInterval
	}
}

// updateHold applies the stop/resume hysteresis; inside the band the previous state holds
func (s *Shooter) updateHold(dist float64) {
	if dist <= s.cfg.DesiredRange-s.cfg.ReengageDelta {
		s.stopped = true
	} else if dist >= s.cfg.DesiredRange+s.cfg.ReengageDelta {
		s.stopped = false
	}
}

func (s *Shooter) canShoot(dist float64, t Target) bool {
	if s.pool == nil {
		if !s.warned {
			log.Printf("[Shooter] Warning: enemy %d has no projectile pool, shooting disabled", s.enemy.ID)
			s.warned = true
		}
		return false
	}
	if dist < s.cfg.MinFireDistance {
		return false
	}
	if s.cfg.RequireLOS && s.los != nil && !s.los.Clear(s.enemy.Pos, t.Position()) {
		return false
	}
	return true
}

func (s *Shooter) shootAt(point entity.Vec2) {
	FireVolley(s.pool, s.enemy.Pos, point.Sub(s.enemy.Pos), s.cfg.Volley)
}
