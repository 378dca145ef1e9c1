package progression

import (
	"errors"
	"log"
	"sort"

	"github.com/younwookim/horde/internal/application/system"
)

const (
	keyCoins    = "coins"
	keyExp      = "exp"
	keyBestWave = "bestWave"

	abilityKeyPrefix = "ability:"
)

// ErrInsufficientCoins is returned when a purchase costs more than the wallet holds
var ErrInsufficientCoins = errors.New("insufficient coins")

// Store persists named integer counters
type Store interface {
	LoadInt(key string) (int, error)
	SaveInt(key string, value int) error
}

var _ system.ProgressionSink = (*Meta)(nil)

// Meta is the progression that survives between runs: wallet, experience,
// best wave and unlocked abilities. Every change is written through to the store.
type Meta struct {
	store         Store
	bossUnlockExp int

	coins     int
	exp       int
	bestWave  int
	abilities map[string]bool

	newBest  bool
	runCoins int
	runExp   int
}

// NewMeta loads the counters from store
func NewMeta(store Store, bossUnlockExp int) (*Meta, error) {
	m := &Meta{
		store:         store,
		bossUnlockExp: max(0, bossUnlockExp),
		abilities:     make(map[string]bool),
	}
	for key, dst := range map[string]*int{keyCoins: &m.coins, keyExp: &m.exp, keyBestWave: &m.bestWave} {
		v, err := store.LoadInt(key)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return m, nil
}

func (m *Meta) save(key string, v int) {
	if err := m.store.SaveInt(key, v); err != nil {
		log.Printf("[Progression] Warning: failed to save %s: %v", key, err)
	}
}

// Coins returns the wallet balance
func (m *Meta) Coins() int { return m.coins }

// Exp returns the accumulated experience
func (m *Meta) Exp() int { return m.exp }

// BestWave returns the highest wave ever cleared
func (m *Meta) BestWave() int { return m.bestWave }

// NewBest reports whether the best wave was raised during this run
func (m *Meta) NewBest() bool { return m.newBest }

// RunCoins returns coins earned since the last BeginRun
func (m *Meta) RunCoins() int { return m.runCoins }

// RunExp returns experience earned since the last BeginRun
func (m *Meta) RunExp() int { return m.runExp }

// BossUnlocked reports whether enough experience was earned to meet the boss
func (m *Meta) BossUnlocked() bool { return m.exp >= m.bossUnlockExp }

// BeginRun resets the per-run counters
func (m *Meta) BeginRun() {
	m.newBest = false
	m.runCoins = 0
	m.runExp = 0
}

// AddCoins credits the wallet; non-positive amounts are ignored
func (m *Meta) AddCoins(n int) {
	if n <= 0 {
		return
	}
	m.coins += n
	m.runCoins += n
	m.save(keyCoins, m.coins)
}

// AddExp adds experience; non-positive amounts are ignored
func (m *Meta) AddExp(n int) {
	if n <= 0 {
		return
	}
	m.exp += n
	m.runExp += n
	m.save(keyExp, m.exp)
}

// SpendCoins debits the wallet, leaving it untouched when n exceeds the balance
func (m *Meta) SpendCoins(n int) error {
	if n < 0 {
		n = 0
	}
	if n > m.coins {
		return ErrInsufficientCoins
	}
	m.coins -= n
	m.save(keyCoins, m.coins)
	return nil
}

// HasAbility reports whether name was unlocked in this or an earlier run
func (m *Meta) HasAbility(name string) bool {
	if unlocked, ok := m.abilities[name]; ok {
		return unlocked
	}
	v, err := m.store.LoadInt(abilityKeyPrefix + name)
	if err != nil {
		log.Printf("[Progression] Warning: failed to load ability %s: %v", name, err)
		return false
	}
	m.abilities[name] = v > 0
	return v > 0
}

// Abilities returns the names of abilities known to be unlocked, sorted
func (m *Meta) Abilities() []string {
	var names []string
	for name, unlocked := range m.abilities {
		if unlocked {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ReportWaveCleared implements system.ProgressionSink. Only raises the best wave.
func (m *Meta) ReportWaveCleared(wave int) {
	if wave <= m.bestWave {
		return
	}
	m.bestWave = wave
	m.newBest = true
	m.save(keyBestWave, m.bestWave)
}

// GrantCurrency implements system.ProgressionSink
func (m *Meta) GrantCurrency(amount int) { m.AddCoins(amount) }

// GrantExperience implements system.ProgressionSink
func (m *Meta) GrantExperience(amount int) { m.AddExp(amount) }

// UnlockAbility implements system.ProgressionSink
func (m *Meta) UnlockAbility(name string) {
	if name == "" || m.HasAbility(name) {
		return
	}
	m.abilities[name] = true
	m.save(abilityKeyPrefix+name, 1)
}
