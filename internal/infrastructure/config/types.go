package config

// RunConfig mirrors game.yaml
type RunConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Pools       PoolConfig        `yaml:"pools"`
	Wave        WaveConfig        `yaml:"wave"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Medkits     MedkitConfig      `yaml:"medkits"`
	BossReward  BossRewardConfig  `yaml:"bossReward"`
	Progression ProgressionConfig `yaml:"progression"`
}

// DisplayConfig holds window settings
type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screenWidth"`
	ScreenHeight  int     `yaml:"screenHeight"`
	Framerate     int     `yaml:"framerate"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// ArenaConfig holds procedural arena settings
type ArenaConfig struct {
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	CellSize    float64 `yaml:"cellSize"`
	NoiseScale  float64 `yaml:"noiseScale"`
	Threshold   float64 `yaml:"threshold"`
	ClearRadius float64 `yaml:"clearRadius"`
}

// RangeF is an inclusive float range
type RangeF struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RangeI is an inclusive int range
type RangeI struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// BulletConfig describes a projectile launch
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Range  float64 `yaml:"range"`
	Damage int     `yaml:"damage"`
	Size   float64 `yaml:"size"`
}

// PlayerConfig holds base player stats
type PlayerConfig struct {
	Radius    float64      `yaml:"radius"`
	MoveSpeed float64      `yaml:"moveSpeed"`
	MaxHP     int          `yaml:"maxHP"`
	FireRate  float64      `yaml:"fireRate"`
	Bullet    BulletConfig `yaml:"bullet"`
	Count     int          `yaml:"count"`
	SpreadDeg float64      `yaml:"spreadDeg"`
}

// PoolConfig holds projectile pool prewarm sizes
type PoolConfig struct {
	PlayerPrewarm int `yaml:"playerPrewarm"`
	EnemyPrewarm  int `yaml:"enemyPrewarm"`
}

// WaveConfig holds wave pacing and scaling
type WaveConfig struct {
	BaseEnemies       int     `yaml:"baseEnemies"`
	Growth            float64 `yaml:"growth"`
	Intermission      float64 `yaml:"intermission"`
	WavesPerStep      int     `yaml:"wavesPerStep"`
	HPBonusPerStep    float64 `yaml:"hpBonusPerStep"`
	DmgBonusPerStep   float64 `yaml:"damageBonusPerStep"`
	SpeedBonusPerStep float64 `yaml:"speedBonusPerStep"`
}

// PointConfig is a world position
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpawnConfig holds spawn position settings
type SpawnConfig struct {
	Points       []PointConfig `yaml:"points"`
	Jitter       float64       `yaml:"jitter"`
	Shuffle      bool          `yaml:"shuffle"`
	SampleRadius float64       `yaml:"sampleRadius"`
	Ring         RangeF        `yaml:"ring"`
	Attempts     int           `yaml:"attempts"`
}

// MedkitConfig holds intermission medkit settings
type MedkitConfig struct {
	Count  RangeI  `yaml:"count"`
	Heal   RangeI  `yaml:"heal"`
	Radius RangeF  `yaml:"radius"`
	Size   float64 `yaml:"size"`
}

// BossRewardConfig holds the one-time boss reward
type BossRewardConfig struct {
	Coins   int    `yaml:"coins"`
	Ability string `yaml:"ability"`
}

// ProgressionConfig holds meta-progression thresholds
type ProgressionConfig struct {
	BossUnlockExp int `yaml:"bossUnlockExp"`
}

// EnemiesConfig mirrors enemies.yaml
type EnemiesConfig struct {
	Kinds map[string]EnemyKindConfig `yaml:"kinds"`
}

// Policy names
const (
	PolicyChaser  = "chaser"
	PolicyShooter = "shooter"
	PolicyBoss    = "boss"
)

// EnemyKindConfig describes one enemy kind
type EnemyKindConfig struct {
	Policy           string         `yaml:"policy"`
	UnlockWave       int            `yaml:"unlockWave"`
	ExcludeFromWaves bool           `yaml:"excludeFromWaves"`
	Radius           float64        `yaml:"radius"`
	Stats            EnemyStats     `yaml:"stats"`
	ContactCooldown  float64        `yaml:"contactCooldown"`
	Reward           RewardConfig   `yaml:"reward"`
	Shooter          *ShooterConfig `yaml:"shooter,omitempty"`
	Boss             *BossConfig    `yaml:"boss,omitempty"`
}

// EnemyStats holds base enemy stats
type EnemyStats struct {
	MaxHP         int     `yaml:"maxHP"`
	ContactDamage int     `yaml:"contactDamage"`
	MoveSpeed     float64 `yaml:"moveSpeed"`
}

// RewardConfig holds kill rewards
type RewardConfig struct {
	Coins RangeI `yaml:"coins"`
	Exp   RangeI `yaml:"exp"`
}

// ShooterConfig holds ranged policy settings
type ShooterConfig struct {
	DesiredRange    float64      `yaml:"desiredRange"`
	ReengageDelta   float64      `yaml:"reengageDelta"`
	FireInterval    float64      `yaml:"fireInterval"`
	MinFireDistance float64      `yaml:"minFireDistance"`
	RequireLOS      bool         `yaml:"requireLineOfSight"`
	Bullet          BulletConfig `yaml:"bullet"`
	Count           int          `yaml:"count"`
	SpreadDeg       float64      `yaml:"spreadDeg"`
}

// BossConfig holds boss policy settings
type BossConfig struct {
	StopDistance   float64      `yaml:"stopDistance"`
	FireInterval   float64      `yaml:"fireInterval"`
	RequireLOS     bool         `yaml:"requireLineOfSight"`
	Bullet         BulletConfig `yaml:"bullet"`
	Count          int          `yaml:"count"`
	SpreadDeg      float64      `yaml:"spreadDeg"`
	MinionKind     string       `yaml:"minionKind"`
	SummonInterval float64      `yaml:"summonInterval"`
	SummonRadius   RangeF       `yaml:"summonRadius"`
	SummonCount    RangeI       `yaml:"summonCount"`
}

// UpgradesConfig mirrors upgrades.yaml
type UpgradesConfig struct {
	Upgrades map[string]UpgradeConfig `yaml:"upgrades"`
}

// UpgradeConfig describes one purchasable upgrade track
type UpgradeConfig struct {
	StartCost int     `yaml:"startCost"`
	CostStep  int     `yaml:"costStep"`
	MaxLevel  int     `yaml:"maxLevel"`
	AddValue  float64 `yaml:"addValue"`
	UnlockExp int     `yaml:"unlockExp"`
}
