package system

import (
	"errors"
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/horde/internal/application/state"
	"github.com/younwookim/horde/internal/domain/entity"
)

var (
	// ErrWaveRunning is returned when a wave is started while one is in progress
	ErrWaveRunning = errors.New("wave already running")
	// ErrNoEnemyKinds is returned when no enemy kind is configured
	ErrNoEnemyKinds = errors.New("no enemy kinds configured")
	// ErrRunOver is returned when the run has ended
	ErrRunOver = errors.New("run is over")
)

// EnemyKind is a spawnable kind gated by the first wave it may appear in
type EnemyKind struct {
	Name       string
	UnlockWave int
}

// WaveConfig configures wave pacing and scaling
type WaveConfig struct {
	BaseEnemies       int
	Growth            float64
	Intermission      float64
	WavesPerStep      int
	HPBonusPerStep    float64
	DmgBonusPerStep   float64
	SpeedBonusPerStep float64
	Kinds             []EnemyKind
	Origin            entity.Vec2
}

// DefaultWaveConfig returns the stock pacing
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		BaseEnemies:       4,
		Growth:            1.5,
		Intermission:      6,
		WavesPerStep:      3,
		HPBonusPerStep:    0.15,
		DmgBonusPerStep:   0.1,
		SpeedBonusPerStep: 0.05,
	}
}

// EnemyCount returns the number of enemies spawned in wave
func (c WaveConfig) EnemyCount(wave int) int {
	n := float64(c.BaseEnemies) + float64(wave-1)*c.Growth
	return max(1, int(math.Round(n)))
}

// Multipliers returns the hp, damage and speed multipliers of wave
func (c WaveConfig) Multipliers(wave int) (hp, dmg, speed float64) {
	if c.WavesPerStep <= 0 {
		return 1, 1, 1
	}
	steps := float64(max(0, (wave-1)/c.WavesPerStep))
	hp = math.Max(0.01, 1+steps*c.HPBonusPerStep)
	dmg = math.Max(0.01, 1+steps*c.DmgBonusPerStep)
	speed = math.Max(0.01, 1+steps*c.SpeedBonusPerStep)
	return hp, dmg, speed
}

// WaveDeps are the collaborators of a WaveOrchestrator
type WaveDeps struct {
	Spawner     Spawner
	Resolver    *SpawnResolver
	Targets     TargetProvider
	Progression ProgressionSink
	Events      EventSink
	Pickups     *PickupField
	RNG         *rand.Rand
}

// WaveOrchestrator schedules waves, tracks live enemies and runs intermissions
type WaveOrchestrator struct {
	cfg  WaveConfig
	deps WaveDeps

	phase        state.Phase
	wave         int
	remaining    int
	intermission float64
	deferred     bool

	listeners   map[entity.EntityID]func()
	warnedKinds bool
}

// NewWaveOrchestrator creates an orchestrator waiting for its target
func NewWaveOrchestrator(deps WaveDeps, cfg WaveConfig) *WaveOrchestrator {
	if deps.Progression == nil {
		deps.Progression = NopProgression{}
	}
	if deps.Events == nil {
		deps.Events = NopEvents{}
	}
	if deps.RNG == nil {
		deps.RNG = rand.New(rand.NewSource(1))
	}
	if deps.Resolver == nil {
		deps.Resolver = NewSpawnResolver(nil, deps.RNG, DefaultSpawnConfig())
	}
	cfg.Intermission = math.Max(0, cfg.Intermission)
	return &WaveOrchestrator{
		cfg:       cfg,
		deps:      deps,
		phase:     state.PhaseAwaitingTarget,
		listeners: make(map[entity.EntityID]func()),
	}
}

// Phase returns the current phase
func (o *WaveOrchestrator) Phase() state.Phase { return o.phase }

// Wave returns the 1-based index of the current (or last) wave; 0 before the first
func (o *WaveOrchestrator) Wave() int { return o.wave }

// EnemiesRemaining returns the live enemies of the current wave
func (o *WaveOrchestrator) EnemiesRemaining() int { return o.remaining }

// WaveRunning reports whether a wave is in progress
func (o *WaveOrchestrator) WaveRunning() bool { return o.phase == state.PhaseWaveRunning }

// IntermissionRemaining returns seconds until the next wave
func (o *WaveOrchestrator) IntermissionRemaining() float64 { return o.intermission }

// InIntermission reports whether the countdown is active
func (o *WaveOrchestrator) InIntermission() bool { return o.phase == state.PhaseIntermission }

// Update advances timers by dt
func (o *WaveOrchestrator) Update(dt float64) {
	switch o.phase {
	case state.PhaseAwaitingTarget:
		if _, ok := o.target(); ok {
			_ = o.StartNextWave()
		}
	case state.PhaseIntermission:
		if o.deferred {
			o.deferred = false
			_ = o.StartNextWave()
			return
		}
		o.intermission = math.Max(0, o.intermission-dt)
		o.deps.Events.IntermissionTick(o.intermission)
		if o.intermission <= 0 {
			_ = o.StartNextWave()
		}
	}
}

// ForceStartNextWave skips the intermission. Rejected while a wave is running.
func (o *WaveOrchestrator) ForceStartNextWave() error {
	if o.phase == state.PhaseWaveRunning {
		log.Printf("[WaveOrchestrator] Warning: cannot force start a new wave while wave %d is running", o.wave)
		return ErrWaveRunning
	}
	o.intermission = 0
	o.deferred = false
	return o.StartNextWave()
}

// StartNextWave begins the next wave
func (o *WaveOrchestrator) StartNextWave() error {
	switch o.phase {
	case state.PhaseWaveRunning:
		return ErrWaveRunning
	case state.PhaseGameOver:
		return ErrRunOver
	}

	if o.deps.Pickups != nil {
		o.deps.Pickups.Clear()
	}

	if len(o.cfg.Kinds) == 0 || o.deps.Spawner == nil {
		if !o.warnedKinds {
			log.Printf("[WaveOrchestrator] Warning: no enemy kinds configured")
			o.warnedKinds = true
		}
		return ErrNoEnemyKinds
	}

	o.intermission = 0
	o.deferred = false
	o.wave++
	o.remaining = 0
	o.phase = state.PhaseWaveRunning
	o.deps.Events.WaveStarted(o.wave)

	o.deps.Resolver.PrepareWave()
	count := o.cfg.EnemyCount(o.wave)
	origin := o.origin()
	hp, dmg, speed := o.cfg.Multipliers(o.wave)

	for i := 0; i < count; i++ {
		kind := o.pickKind(o.wave)
		pos := o.deps.Resolver.Next(origin)
		c, ok := o.deps.Spawner.Spawn(kind, pos)
		if !ok || c == nil {
			continue
		}
		e := c.Enemy()
		e.ApplyWaveMultipliers(hp, dmg, speed)
		o.remaining++
		o.track(e)
	}

	if o.remaining == 0 {
		o.handleWaveCleared(true)
	}
	return nil
}

// Stop ends the run; no further waves start
func (o *WaveOrchestrator) Stop() {
	o.cancelListeners()
	o.phase = state.PhaseGameOver
	o.intermission = 0
	o.deferred = false
}

func (o *WaveOrchestrator) track(e *entity.Enemy) {
	if _, dup := o.listeners[e.ID]; dup {
		return
	}
	id := e.ID
	o.listeners[id] = e.Health.OnDeath(func() {
		if cancel, ok := o.listeners[id]; ok {
			cancel()
			delete(o.listeners, id)
		}
		o.onEnemyKilled()
	})
}

func (o *WaveOrchestrator) onEnemyKilled() {
	o.remaining = max(0, o.remaining-1)
	if o.remaining == 0 && o.phase == state.PhaseWaveRunning {
		o.handleWaveCleared(false)
	}
}

func (o *WaveOrchestrator) handleWaveCleared(emptyWave bool) {
	o.phase = state.PhaseIntermission
	o.cancelListeners()

	o.deps.Progression.ReportWaveCleared(o.wave)
	o.deps.Events.WaveCompleted(o.wave)

	if o.cfg.Intermission > 0 {
		if o.deps.Pickups != nil {
			o.deps.Pickups.SpawnMedkits(o.origin())
		}
		o.intermission = o.cfg.Intermission
		o.deps.Events.IntermissionTick(o.intermission)
		return
	}

	if emptyWave {
		// start on the next tick instead of recursing through empty waves
		o.deferred = true
		return
	}
	if err := o.StartNextWave(); err != nil {
		log.Printf("[WaveOrchestrator] Failed to start wave %d: %v", o.wave+1, err)
	}
}

func (o *WaveOrchestrator) cancelListeners() {
	for id, cancel := range o.listeners {
		cancel()
		delete(o.listeners, id)
	}
}

// pickKind chooses uniformly among unlocked kinds, else the earliest-unlocking kind
func (o *WaveOrchestrator) pickKind(wave int) string {
	candidates := make([]string, 0, len(o.cfg.Kinds))
	fallback := ""
	fallbackUnlock := math.MaxInt
	for _, k := range o.cfg.Kinds {
		if k.Name == "" {
			continue
		}
		unlock := max(1, k.UnlockWave)
		if wave >= unlock {
			candidates = append(candidates, k.Name)
		} else if unlock < fallbackUnlock {
			fallbackUnlock = unlock
			fallback = k.Name
		}
	}
	if len(candidates) == 0 {
		return fallback
	}
	return candidates[o.deps.RNG.Intn(len(candidates))]
}

func (o *WaveOrchestrator) target() (Target, bool) {
	if o.deps.Targets == nil {
		return nil, false
	}
	t, ok := o.deps.Targets.Target()
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

func (o *WaveOrchestrator) origin() entity.Vec2 {
	if t, ok := o.target(); ok {
		return t.Position()
	}
	return o.cfg.Origin
}

// TrackedEnemies returns the number of live death subscriptions
func (o *WaveOrchestrator) TrackedEnemies() int { return len(o.listeners) }
