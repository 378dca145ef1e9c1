package system

import (
	"log"

	"github.com/younwookim/horde/internal/domain/entity"
)

// AbilityMirrorFire makes the player also fire backwards
const AbilityMirrorFire = "mirror_fire"

// BossRewardConfig configures the one-time boss victory reward
type BossRewardConfig struct {
	Coins   int
	Ability string
}

// DefaultBossRewardConfig returns the stock reward
func DefaultBossRewardConfig() BossRewardConfig {
	return BossRewardConfig{Coins: 100, Ability: AbilityMirrorFire}
}

// BossTracker follows a single boss encounter and grants its reward once
type BossTracker struct {
	NopEvents

	progression ProgressionSink
	reward      BossRewardConfig

	active   entity.EntityID
	tracking bool
	granted  bool

	// OnVictory runs once when the tracked boss dies
	OnVictory func(boss entity.EntityID)
}

// NewBossTracker creates a tracker that reports into progression
func NewBossTracker(progression ProgressionSink, reward BossRewardConfig) *BossTracker {
	if progression == nil {
		progression = NopProgression{}
	}
	return &BossTracker{progression: progression, reward: reward}
}

// BossSpawned starts tracking boss unless another boss is already tracked
func (t *BossTracker) BossSpawned(boss entity.EntityID) {
	if t.tracking {
		if boss != t.active {
			log.Printf("[BossTracker] Ignoring boss %d: boss %d is already active", boss, t.active)
		}
		return
	}
	t.active = boss
	t.tracking = true
}

// BossDefeated grants the reward if boss is the tracked one
func (t *BossTracker) BossDefeated(boss entity.EntityID) {
	if !t.tracking || boss != t.active {
		return
	}
	t.tracking = false

	if t.granted {
		return
	}
	t.granted = true
	if t.reward.Ability != "" {
		t.progression.UnlockAbility(t.reward.Ability)
	}
	if t.reward.Coins > 0 {
		t.progression.GrantCurrency(t.reward.Coins)
	}
	if t.OnVictory != nil {
		t.OnVictory(boss)
	}
}

// Active returns the tracked boss, if any
func (t *BossTracker) Active() (entity.EntityID, bool) {
	return t.active, t.tracking
}

// Granted reports whether the victory reward has been given
func (t *BossTracker) Granted() bool { return t.granted }
