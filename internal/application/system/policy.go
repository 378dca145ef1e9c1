package system

import (
	"math"

	"github.com/younwookim/horde/internal/domain/entity"
)

// PolicyState is the coarse state of an enemy policy
type PolicyState int

const (
	PolicySeeking PolicyState = iota
	PolicyHolding
	PolicyDead
)

// String returns the string representation of the policy state
func (s PolicyState) String() string {
	switch s {
	case PolicySeeking:
		return "Seeking"
	case PolicyHolding:
		return "Holding"
	case PolicyDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// FireVolley fires v.Count projectiles fanned symmetrically around aim.
// Adjacent shots are v.SpreadDeg degrees apart. Returns the number fired.
func FireVolley(pool *ProjectilePool, origin, aim entity.Vec2, v entity.Volley) int {
	if pool == nil {
		return 0
	}
	count := max(1, v.Count)
	base := aim.Angle() * 180 / math.Pi
	start := base - v.SpreadDeg*float64(count-1)*0.5
	for i := 0; i < count; i++ {
		angle := (start + float64(i)*v.SpreadDeg) * math.Pi / 180
		pool.Fire(origin, entity.FromAngle(angle), v.Bullet)
	}
	return count
}

// pursuer is the movement and contact-damage core shared by every enemy policy
type pursuer struct {
	enemy           *entity.Enemy
	nav             Navigator
	targets         TargetProvider
	contactCooldown float64
	nextContact     float64
	state           PolicyState
}

func newPursuer(e *entity.Enemy, nav Navigator, targets TargetProvider, contactCooldown float64) pursuer {
	return pursuer{
		enemy:           e,
		nav:             nav,
		targets:         targets,
		contactCooldown: math.Max(0, contactCooldown),
		state:           PolicySeeking,
	}
}

// Enemy implements Combatant
func (p *pursuer) Enemy() *entity.Enemy { return p.enemy }

// State returns the current policy state
func (p *pursuer) State() PolicyState { return p.state }

// checkDead moves to the terminal state once the body has died
func (p *pursuer) checkDead() bool {
	if p.state == PolicyDead {
		return true
	}
	if !p.enemy.Alive() {
		p.state = PolicyDead
		if p.nav != nil {
			p.nav.Stop(p.enemy)
		}
		return true
	}
	return false
}

// target resolves the current target, refreshing it each tick
func (p *pursuer) target() (Target, bool) {
	if p.targets == nil {
		return nil, false
	}
	t, ok := p.targets.Target()
	if !ok || t == nil || !t.Alive() {
		return nil, false
	}
	return t, true
}

func (p *pursuer) moveTo(point entity.Vec2) {
	if p.nav != nil {
		p.nav.SetDestination(p.enemy, point)
	}
}

func (p *pursuer) stop() {
	if p.nav != nil {
		p.nav.Stop(p.enemy)
	}
}

// touching reports whether the bodies overlap
func (p *pursuer) touching(t Target) bool {
	return p.enemy.Pos.Dist(t.Position()) <= p.enemy.Radius()+t.Radius()
}

// tryContact applies contact damage at most once per cooldown window
func (p *pursuer) tryContact(now float64, t Target) bool {
	dmg := p.enemy.Stats().ContactDamage
	if dmg <= 0 || now < p.nextContact || !p.touching(t) {
		return false
	}
	t.TakeDamage(dmg)
	p.nextContact = now + p.contactCooldown
	return true
}
