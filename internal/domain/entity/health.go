package entity

// DamageListener is notified after every applied hit
type DamageListener func(amount, current int)

// Health is the damage/heal/death state shared by every combatant.
//
// Death listeners fire exactly once per lifetime, on the transition to zero.
// SetMax starts a new lifetime.
type Health struct {
	current int
	max     int
	dead    bool

	nextToken uint64
	onDeath   []deathObserver
	onDamage  []damageObserver
}

type deathObserver struct {
	token uint64
	fn    func()
}

type damageObserver struct {
	token uint64
	fn    DamageListener
}

// NewHealth creates a Health at full hit points
func NewHealth(maxHP int) *Health {
	h := &Health{}
	h.SetMax(maxHP)
	return h
}

// Current returns the current hit points
func (h *Health) Current() int { return h.current }

// Max returns the maximum hit points
func (h *Health) Max() int { return h.max }

// IsDead reports whether the entity has reached zero hit points
func (h *Health) IsDead() bool { return h.dead }

// Fraction returns current/max in [0,1]
func (h *Health) Fraction() float64 {
	if h.max <= 0 {
		return 0
	}
	return float64(h.current) / float64(h.max)
}

// TakeDamage applies max(1, amount) damage. Returns false if already dead.
func (h *Health) TakeDamage(amount int) bool {
	if h.dead || h.current <= 0 {
		return false
	}
	if amount < 1 {
		amount = 1
	}
	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}

	for _, o := range append([]damageObserver(nil), h.onDamage...) {
		o.fn(amount, h.current)
	}

	if h.current == 0 && !h.dead {
		h.dead = true
		for _, o := range append([]deathObserver(nil), h.onDeath...) {
			o.fn()
		}
	}
	return true
}

// Heal restores max(1, amount) hit points capped at max.
// Fails when dead or already full.
func (h *Health) Heal(amount int) bool {
	if h.dead || h.current <= 0 || h.current >= h.max {
		return false
	}
	if amount < 1 {
		amount = 1
	}
	before := h.current
	h.current += amount
	if h.current > h.max {
		h.current = h.max
	}
	return h.current > before
}

// SetMax sets max = max(1, value) and refills current hit points
func (h *Health) SetMax(value int) {
	if value < 1 {
		value = 1
	}
	h.max = value
	h.current = value
	h.dead = false
}

// OnDeath registers fn to run on death. The returned func unregisters it.
func (h *Health) OnDeath(fn func()) (cancel func()) {
	h.nextToken++
	token := h.nextToken
	h.onDeath = append(h.onDeath, deathObserver{token: token, fn: fn})
	return func() {
		for i, o := range h.onDeath {
			if o.token == token {
				h.onDeath = append(h.onDeath[:i], h.onDeath[i+1:]...)
				return
			}
		}
	}
}

// OnDamage registers fn to run after each applied hit. The returned func unregisters it.
func (h *Health) OnDamage(fn DamageListener) (cancel func()) {
	h.nextToken++
	token := h.nextToken
	h.onDamage = append(h.onDamage, damageObserver{token: token, fn: fn})
	return func() {
		for i, o := range h.onDamage {
			if o.token == token {
				h.onDamage = append(h.onDamage[:i], h.onDamage[i+1:]...)
				return
			}
		}
	}
}

// Release drops every registered listener
func (h *Health) Release() {
	h.onDeath = nil
	h.onDamage = nil
}

// ListenerCount returns the number of registered listeners
func (h *Health) ListenerCount() int {
	return len(h.onDeath) + len(h.onDamage)
}
