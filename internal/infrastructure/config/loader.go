package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Run      *RunConfig
	Enemies  *EnemiesConfig
	Upgrades *UpgradesConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadRun loads game.yaml
func (l *Loader) LoadRun() (*RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := l.decode("game.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.yaml: %w", err)
	}
	return cfg, nil
}

// LoadEnemies loads enemies.yaml
func (l *Loader) LoadEnemies() (*EnemiesConfig, error) {
	var cfg EnemiesConfig
	if err := l.decode("enemies.yaml", &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("enemies.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadUpgrades loads upgrades.yaml
func (l *Loader) LoadUpgrades() (*UpgradesConfig, error) {
	var cfg UpgradesConfig
	if err := l.decode("upgrades.yaml", &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadAll loads all configurations (run, enemies, upgrades)
func (l *Loader) LoadAll() (*GameConfig, error) {
	run, err := l.LoadRun()
	if err != nil {
		return nil, err
	}

	enemies, err := l.LoadEnemies()
	if err != nil {
		return nil, err
	}

	upgrades, err := l.LoadUpgrades()
	if err != nil {
		return nil, err
	}

	if err := enemies.validateMinions(); err != nil {
		return nil, fmt.Errorf("enemies.yaml: %w", err)
	}

	return &GameConfig{
		Run:      run,
		Enemies:  enemies,
		Upgrades: upgrades,
	}, nil
}

// DefaultRunConfig returns the stock game.yaml values.
// Keys missing from the file keep these values.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Display: DisplayConfig{ScreenWidth: 640, ScreenHeight: 480, Framerate: 60, PixelsPerUnit: 16},
		Arena:   ArenaConfig{Cols: 40, Rows: 30, CellSize: 1, NoiseScale: 0.12, Threshold: 0.68, ClearRadius: 4},
		Player: PlayerConfig{
			Radius:    0.4,
			MoveSpeed: 5,
			MaxHP:     5,
			FireRate:  4,
			Bullet:    BulletConfig{Speed: 12, Range: 8, Damage: 1, Size: 1},
			Count:     1,
		},
		Pools: PoolConfig{PlayerPrewarm: 16, EnemyPrewarm: 16},
		Wave: WaveConfig{
			BaseEnemies:       4,
			Growth:            1.5,
			Intermission:      6,
			WavesPerStep:      3,
			HPBonusPerStep:    0.15,
			DmgBonusPerStep:   0.1,
			SpeedBonusPerStep: 0.05,
		},
		Spawn: SpawnConfig{
			Jitter:       0.75,
			Shuffle:      true,
			SampleRadius: 2,
			Ring:         RangeF{Min: 6, Max: 12},
			Attempts:     16,
		},
		Medkits: MedkitConfig{
			Count:  RangeI{Min: 1, Max: 2},
			Heal:   RangeI{Min: 1, Max: 2},
			Radius: RangeF{Min: 2, Max: 8},
			Size:   0.4,
		},
		BossReward:  BossRewardConfig{Coins: 100, Ability: "mirror_fire"},
		Progression: ProgressionConfig{BossUnlockExp: 100},
	}
}

// Validate checks value ranges
func (c *RunConfig) Validate() error {
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive, got %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.Arena.Cols <= 0 || c.Arena.Rows <= 0 || c.Arena.CellSize <= 0 {
		return fmt.Errorf("%w: arena size must be positive", ErrInvalidConfig)
	}
	if c.Wave.BaseEnemies < 1 {
		return fmt.Errorf("%w: wave.baseEnemies must be >= 1, got %d", ErrInvalidConfig, c.Wave.BaseEnemies)
	}
	if c.Wave.Growth < 0 || c.Wave.Intermission < 0 {
		return fmt.Errorf("%w: wave.growth and wave.intermission must be >= 0", ErrInvalidConfig)
	}
	if c.Spawn.Ring.Min > c.Spawn.Ring.Max {
		return fmt.Errorf("%w: spawn ring invalid: min(%.1f) > max(%.1f)", ErrInvalidConfig, c.Spawn.Ring.Min, c.Spawn.Ring.Max)
	}
	if c.Medkits.Radius.Min > c.Medkits.Radius.Max {
		return fmt.Errorf("%w: medkit radius invalid: min(%.1f) > max(%.1f)", ErrInvalidConfig, c.Medkits.Radius.Min, c.Medkits.Radius.Max)
	}
	if err := c.Player.Bullet.validate("player.bullet"); err != nil {
		return err
	}
	return nil
}

// validate rejects bullets that would never cover their range
func (b BulletConfig) validate(field string) error {
	if b.Speed <= 0 {
		return fmt.Errorf("%w: %s.speed must be positive, got %.2f", ErrInvalidConfig, field, b.Speed)
	}
	if b.Range <= 0 {
		return fmt.Errorf("%w: %s.range must be positive, got %.2f", ErrInvalidConfig, field, b.Range)
	}
	return nil
}

func (c *EnemiesConfig) applyDefaults() {
	for name, k := range c.Kinds {
		if k.Policy == "" {
			k.Policy = PolicyChaser
		}
		if k.Radius <= 0 {
			k.Radius = 0.4
		}
		if k.UnlockWave < 1 {
			k.UnlockWave = 1
		}
		c.Kinds[name] = k
	}
}

// Validate checks policy names and per-policy sections
func (c *EnemiesConfig) Validate() error {
	if len(c.Kinds) == 0 {
		return fmt.Errorf("%w: no enemy kinds", ErrInvalidConfig)
	}
	for _, name := range c.Names() {
		k := c.Kinds[name]
		switch k.Policy {
		case PolicyChaser:
		case PolicyShooter:
			if k.Shooter == nil {
				return fmt.Errorf("%w: kind %q uses policy shooter without a shooter section", ErrInvalidConfig, name)
			}
			if err := k.Shooter.Bullet.validate(name + ".shooter.bullet"); err != nil {
				return err
			}
		case PolicyBoss:
			if k.Boss == nil {
				return fmt.Errorf("%w: kind %q uses policy boss without a boss section", ErrInvalidConfig, name)
			}
			if err := k.Boss.Bullet.validate(name + ".boss.bullet"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: kind %q has unknown policy %q", ErrInvalidConfig, name, k.Policy)
		}
	}
	return nil
}

func (c *EnemiesConfig) validateMinions() error {
	for _, name := range c.Names() {
		k := c.Kinds[name]
		if k.Boss == nil || k.Boss.MinionKind == "" {
			continue
		}
		if _, ok := c.Kinds[k.Boss.MinionKind]; !ok {
			return fmt.Errorf("%w: kind %q summons unknown kind %q", ErrInvalidConfig, name, k.Boss.MinionKind)
		}
	}
	return nil
}

// Names returns kind names in sorted order
func (c *EnemiesConfig) Names() []string {
	names := make([]string, 0, len(c.Kinds))
	for name := range c.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *UpgradesConfig) applyDefaults() {
	for name, u := range c.Upgrades {
		if u.StartCost <= 0 {
			u.StartCost = 10
		}
		if u.CostStep < 0 {
			u.CostStep = 0
		}
		if u.MaxLevel <= 0 {
			u.MaxLevel = 10
		}
		c.Upgrades[name] = u
	}
}

// Names returns upgrade names in sorted order
func (c *UpgradesConfig) Names() []string {
	names := make([]string, 0, len(c.Upgrades))
	for name := range c.Upgrades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
