package sim

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/younwookim/horde/internal/application/state"
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/config"
	"github.com/younwookim/horde/internal/infrastructure/navigation"
)

// Options tune a simulation beyond the loaded config
type Options struct {
	Seed int64
	// Stats overrides the configured player stats (e.g. after upgrades)
	Stats *entity.PlayerStats
	// Progression receives rewards; nil discards them
	Progression system.ProgressionSink
	// Events receives presentation events after each frame
	Events system.EventSink
	// BossLocked keeps boss kinds out of waves
	BossLocked bool
	// Arena overrides the generated arena
	Arena *navigation.Arena
}

// Simulation composes one run
type Simulation struct {
	seed int64

	arena      *navigation.Arena
	world      *World
	factory    *Factory
	player     *entity.Player
	controller *system.PlayerController
	playerPool *system.ProjectilePool
	enemyPool  *system.ProjectilePool
	pickups    *system.PickupField
	waves      *system.WaveOrchestrator
	tracker    *system.BossTracker
	ledger     *ledger
	queue      *system.EventQueue
	sink       system.EventSink

	clock   float64
	frames  int
	over    bool
	summary RunSummary
}

// New builds a run from cfg. The same seed and inputs replay the same run.
func New(cfg *config.GameConfig, opts Options) *Simulation {
	rng := rand.New(rand.NewSource(opts.Seed))
	run := cfg.Run

	s := &Simulation{
		seed:  opts.Seed,
		world: NewWorld(),
		queue: system.NewEventQueue(),
	}

	s.arena = opts.Arena
	if s.arena == nil {
		s.arena = generateArena(run, opts.Seed)
	}
	origin := s.arena.Center()

	stats := PlayerStats(run.Player)
	if opts.Stats != nil {
		stats = *opts.Stats
	}
	s.player = entity.NewPlayer(s.world.NewEntity(), origin, run.Player.Radius, stats)
	s.player.Health.OnDamage(func(amount, current int) {
		s.queue.DamageTaken(s.player.ID, entity.FactionPlayer, amount, current)
	})

	s.playerPool = system.NewProjectilePool(entity.FactionPlayer, run.Pools.PlayerPrewarm)
	s.playerPool.SetTerrain(s.arena)
	s.enemyPool = system.NewProjectilePool(entity.FactionEnemy, run.Pools.EnemyPrewarm)
	s.enemyPool.SetTerrain(s.arena)
	s.controller = system.NewPlayerController(s.player, s.playerPool, s.arena)

	var progression system.ProgressionSink = system.NopProgression{}
	if opts.Progression != nil {
		progression = opts.Progression
	}
	s.ledger = &ledger{next: progression}

	s.tracker = system.NewBossTracker(s.ledger, system.BossRewardConfig{
		Coins:   run.BossReward.Coins,
		Ability: run.BossReward.Ability,
	})
	s.tracker.OnVictory = func(entity.EntityID) {
		if run.BossReward.Ability == system.AbilityMirrorFire {
			s.player.Stats.MirrorFire = true
		}
	}
	s.sink = system.Events{s.tracker}
	if opts.Events != nil {
		s.sink = system.Events{s.tracker, opts.Events}
	}

	resolver := system.NewSpawnResolver(s.arena, rng, spawnConfig(run.Spawn))
	s.pickups = system.NewPickupField(resolver, rng, system.MedkitConfig{
		CountMin:  run.Medkits.Count.Min,
		CountMax:  run.Medkits.Count.Max,
		HealMin:   run.Medkits.Heal.Min,
		HealMax:   run.Medkits.Heal.Max,
		RadiusMin: run.Medkits.Radius.Min,
		RadiusMax: run.Medkits.Radius.Max,
		Size:      run.Medkits.Size,
	})

	s.factory = NewFactory(cfg.Enemies.Kinds, FactoryDeps{
		World:       s.world,
		Nav:         s.arena,
		LOS:         s.arena,
		Targets:     s.controller,
		Pool:        s.enemyPool,
		Events:      s.queue,
		Progression: s.ledger,
		RNG:         rng,
	})

	s.waves = system.NewWaveOrchestrator(system.WaveDeps{
		Spawner:     s.factory,
		Resolver:    resolver,
		Targets:     s.controller,
		Progression: s.ledger,
		Events:      s.queue,
		Pickups:     s.pickups,
		RNG:         rng,
	}, waveConfig(run.Wave, cfg.Enemies, opts.BossLocked, origin))

	return s
}

func generateArena(run *config.RunConfig, seed int64) *navigation.Arena {
	a := run.Arena
	w, h := float64(a.Cols)*a.CellSize, float64(a.Rows)*a.CellSize
	keep := []entity.Vec2{{X: w / 2, Y: h / 2}}
	for _, p := range run.Spawn.Points {
		keep = append(keep, entity.Vec2{X: p.X, Y: p.Y})
	}
	return navigation.Generate(navigation.Config{
		Cols:        a.Cols,
		Rows:        a.Rows,
		CellSize:    a.CellSize,
		NoiseScale:  a.NoiseScale,
		Threshold:   a.Threshold,
		ClearRadius: a.ClearRadius,
		Seed:        seed,
	}, keep...)
}

// PlayerStats converts the configured base player stats
func PlayerStats(p config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		MoveSpeed: p.MoveSpeed,
		MaxHP:     p.MaxHP,
		FireRate:  p.FireRate,
		Bullet:    bullet(p.Bullet),
		Count:     max(1, p.Count),
		SpreadDeg: p.SpreadDeg,
	}
}

func spawnConfig(c config.SpawnConfig) system.SpawnConfig {
	points := make([]entity.Vec2, 0, len(c.Points))
	for _, p := range c.Points {
		points = append(points, entity.Vec2{X: p.X, Y: p.Y})
	}
	return system.SpawnConfig{
		Points:       points,
		Jitter:       c.Jitter,
		Shuffle:      c.Shuffle,
		SampleRadius: c.SampleRadius,
		RingMin:      c.Ring.Min,
		RingMax:      c.Ring.Max,
		Attempts:     c.Attempts,
	}
}

func waveConfig(c config.WaveConfig, enemies *config.EnemiesConfig, bossLocked bool, origin entity.Vec2) system.WaveConfig {
	var kinds []system.EnemyKind
	for _, name := range enemies.Names() {
		k := enemies.Kinds[name]
		if k.ExcludeFromWaves || (bossLocked && k.Policy == config.PolicyBoss) {
			continue
		}
		kinds = append(kinds, system.EnemyKind{Name: name, UnlockWave: k.UnlockWave})
	}
	return system.WaveConfig{
		BaseEnemies:       c.BaseEnemies,
		Growth:            c.Growth,
		Intermission:      c.Intermission,
		WavesPerStep:      c.WavesPerStep,
		HPBonusPerStep:    c.HPBonusPerStep,
		DmgBonusPerStep:   c.DmgBonusPerStep,
		SpeedBonusPerStep: c.SpeedBonusPerStep,
		Kinds:             kinds,
		Origin:            origin,
	}
}

// Update runs one frame
func (s *Simulation) Update(in system.InputState, dt float64) {
	if s.over {
		return
	}
	s.clock += dt
	s.frames++

	s.controller.Update(in, dt)
	if in.SkipIntermission && s.waves.InIntermission() {
		_ = s.waves.ForceStartNextWave()
	}
	s.waves.Update(dt)

	for _, c := range s.world.Combatants() {
		c.Update(s.clock, dt)
	}
	s.arena.Step(dt)

	s.playerPool.Update(dt, s.world.Targets())
	s.enemyPool.Update(dt, []system.Target{s.player})
	s.pickups.Collect(s.player)

	s.world.Sweep(s.arena.Forget)
	s.world.FlushPending()

	if !s.player.Alive() {
		s.finish()
	}
	s.queue.Flush(s.sink)
}

func (s *Simulation) finish() {
	s.waves.Stop()
	s.over = true
	s.summary = RunSummary{
		ID:           uuid.NewString(),
		Seed:         s.seed,
		Wave:         s.waves.Wave(),
		WavesCleared: s.ledger.cleared,
		Kills:        s.world.Kills(),
		Coins:        s.ledger.coins,
		Exp:          s.ledger.exp,
		Duration:     s.clock,
		Frames:       s.frames,
		BossDefeated: s.tracker.Granted(),
	}
}

// ForceStartNextWave skips the intermission
func (s *Simulation) ForceStartNextWave() error {
	if s.over {
		return system.ErrRunOver
	}
	return s.waves.ForceStartNextWave()
}

// Over reports whether the player died
func (s *Simulation) Over() bool { return s.over }

// Summary returns the run summary once the run is over
func (s *Simulation) Summary() (RunSummary, bool) { return s.summary, s.over }

// Earned returns the coins and experience gained so far this run
func (s *Simulation) Earned() (coins, exp int) { return s.ledger.coins, s.ledger.exp }

// Kills returns the enemies killed so far this run
func (s *Simulation) Kills() int { return s.world.Kills() }

// Seed returns the run seed
func (s *Simulation) Seed() int64 { return s.seed }

// Clock returns simulated seconds
func (s *Simulation) Clock() float64 { return s.clock }

// Frames returns the number of simulated frames
func (s *Simulation) Frames() int { return s.frames }

// Player returns the player body
func (s *Simulation) Player() *entity.Player { return s.player }

// Enemies returns the live enemy bodies
func (s *Simulation) Enemies() []*entity.Enemy { return s.world.Enemies() }

// Arena returns the navigation arena
func (s *Simulation) Arena() *navigation.Arena { return s.arena }

// Projectiles returns the active player and enemy projectiles
func (s *Simulation) Projectiles() (player, enemy []*entity.Projectile) {
	return s.playerPool.Active(), s.enemyPool.Active()
}

// PoolStats returns the occupancy of the player and enemy pools
func (s *Simulation) PoolStats() (player, enemy system.PoolStats) {
	return s.playerPool.Stats(), s.enemyPool.Stats()
}

// Medkits returns the medkits on the ground
func (s *Simulation) Medkits() []*entity.Medkit { return s.pickups.Medkits() }

// Phase returns the wave cycle phase
func (s *Simulation) Phase() state.Phase { return s.waves.Phase() }

// Wave returns the current wave index
func (s *Simulation) Wave() int { return s.waves.Wave() }

// EnemiesRemaining returns the live wave enemies
func (s *Simulation) EnemiesRemaining() int { return s.waves.EnemiesRemaining() }

// IntermissionRemaining returns seconds until the next wave
func (s *Simulation) IntermissionRemaining() float64 { return s.waves.IntermissionRemaining() }

// BossActive returns the tracked boss, if one is alive
func (s *Simulation) BossActive() (*entity.Enemy, bool) {
	id, ok := s.tracker.Active()
	if !ok {
		return nil, false
	}
	c, ok := s.world.Find(id)
	if !ok {
		return nil, false
	}
	return c.Enemy(), true
}

// ledger counts what the run earned and forwards it
type ledger struct {
	next    system.ProgressionSink
	coins   int
	exp     int
	cleared int
}

func (l *ledger) ReportWaveCleared(wave int) {
	l.cleared = max(l.cleared, wave)
	l.next.ReportWaveCleared(wave)
}

func (l *ledger) GrantCurrency(amount int) {
	l.coins += max(0, amount)
	l.next.GrantCurrency(amount)
}

func (l *ledger) GrantExperience(amount int) {
	l.exp += max(0, amount)
	l.next.GrantExperience(amount)
}

func (l *ledger) UnlockAbility(name string) {
	l.next.UnlockAbility(name)
}
