package system

import "github.com/younwookim/horde/internal/domain/entity"

// ChaserConfig configures the regular melee policy
type ChaserConfig struct {
	ContactCooldown float64
}

// DefaultChaserConfig returns the stock melee tuning
func DefaultChaserConfig() ChaserConfig {
	return ChaserConfig{ContactCooldown: 0.5}
}

// Chaser walks toward its target and deals contact damage
type Chaser struct {
	pursuer
}

// NewChaser creates a melee policy for e
func NewChaser(e *entity.Enemy, nav Navigator, targets TargetProvider, cfg ChaserConfig) *Chaser {
	return &Chaser{pursuer: newPursuer(e, nav, targets, cfg.ContactCooldown)}
}

// Update runs one tick
func (c *Chaser) Update(now, _ float64) {
	if c.checkDead() {
		return
	}

	t, ok := c.target()
	if !ok {
		c.stop()
		return
	}

	c.moveTo(t.Position())
	c.tryContact(now, t)
}
