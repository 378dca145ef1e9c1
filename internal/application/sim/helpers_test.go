package sim

import (
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/config"
	"github.com/younwookim/horde/internal/infrastructure/navigation"
)

func testKinds() map[string]config.EnemyKindConfig {
	return map[string]config.EnemyKindConfig{
		"slime": {
			Policy:          config.PolicyChaser,
			UnlockWave:      1,
			Radius:          0.4,
			Stats:           config.EnemyStats{MaxHP: 3, ContactDamage: 1, MoveSpeed: 2},
			ContactCooldown: 0.5,
			Reward: config.RewardConfig{
				Coins: config.RangeI{Min: 2, Max: 2},
				Exp:   config.RangeI{Min: 1, Max: 1},
			},
		},
	}
}

// testConfig spawns four slimes per wave with no intermission
func testConfig() *config.GameConfig {
	run := config.DefaultRunConfig()
	run.Spawn.Points = nil
	run.Wave.Growth = 0
	run.Wave.Intermission = 0
	return &config.GameConfig{
		Run:      run,
		Enemies:  &config.EnemiesConfig{Kinds: testKinds()},
		Upgrades: &config.UpgradesConfig{},
	}
}

func testOptions() Options {
	return Options{Seed: 12345, Arena: navigation.NewOpen(40, 30, 1)}
}

func killAll(enemies []*entity.Enemy) {
	for _, e := range enemies {
		e.TakeDamage(1000)
	}
}

type recordingEvents struct {
	system.NopEvents
	started   []int
	completed []int
	damage    []entity.Faction
	spawned   []entity.EntityID
}

func (r *recordingEvents) WaveStarted(w int)   { r.started = append(r.started, w) }
func (r *recordingEvents) WaveCompleted(w int) { r.completed = append(r.completed, w) }
func (r *recordingEvents) DamageTaken(_ entity.EntityID, f entity.Faction, _, _ int) {
	r.damage = append(r.damage, f)
}
func (r *recordingEvents) BossSpawned(id entity.EntityID) { r.spawned = append(r.spawned, id) }

type recordingProgression struct {
	coins, exp int
	cleared    []int
	abilities  []string
}

func (p *recordingProgression) ReportWaveCleared(w int) { p.cleared = append(p.cleared, w) }
func (p *recordingProgression) GrantCurrency(n int)     { p.coins += n }
func (p *recordingProgression) GrantExperience(n int)   { p.exp += n }
func (p *recordingProgression) UnlockAbility(n string)  { p.abilities = append(p.abilities, n) }
