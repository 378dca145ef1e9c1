package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/horde/internal/domain/entity"
)

func newTestField(cfg MedkitConfig) *PickupField {
	rng := testRNG()
	return NewPickupField(NewSpawnResolver(newFakeNav(), rng, DefaultSpawnConfig()), rng, cfg)
}

func TestPickupField_SpawnMedkits(t *testing.T) {
	f := newTestField(DefaultMedkitConfig())

	n := f.SpawnMedkits(entity.Vec2{})

	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 2)
	require.Len(t, f.Medkits(), n)
	for _, m := range f.Medkits() {
		assert.GreaterOrEqual(t, m.Heal, 1)
		assert.LessOrEqual(t, m.Heal, 2)
		d := m.Pos.Len()
		assert.GreaterOrEqual(t, d, 2.0-1e-9)
		assert.LessOrEqual(t, d, 8.0+1e-9)
	}
}

func TestPickupField_ZeroCount(t *testing.T) {
	cfg := DefaultMedkitConfig()
	cfg.CountMin, cfg.CountMax = 0, 0
	f := newTestField(cfg)

	assert.Equal(t, 0, f.SpawnMedkits(entity.Vec2{}))
	assert.Empty(t, f.Medkits())
}

func TestPickupField_CollectOnlyWhenHealSucceeds(t *testing.T) {
	f := newTestField(DefaultMedkitConfig())
	f.medkits = []*entity.Medkit{{ID: 1, Pos: entity.Vec2{X: 0.5}, Radius: 0.4, Heal: 2}}
	p := newTestPlayer(entity.Vec2{})

	// full health: medkit stays
	assert.Equal(t, 0, f.Collect(p))
	assert.Len(t, f.Medkits(), 1)

	p.TakeDamage(5)
	assert.Equal(t, 1, f.Collect(p))
	assert.Empty(t, f.Medkits())
	assert.Equal(t, 97, p.Health.Current())
}

func TestPickupField_OutOfReach(t *testing.T) {
	f := newTestField(DefaultMedkitConfig())
	f.medkits = []*entity.Medkit{{ID: 1, Pos: entity.Vec2{X: 5}, Radius: 0.4, Heal: 2}}
	p := newTestPlayer(entity.Vec2{})
	p.TakeDamage(5)

	assert.Equal(t, 0, f.Collect(p))
	assert.Len(t, f.Medkits(), 1)
}

func TestPickupField_Clear(t *testing.T) {
	f := newTestField(DefaultMedkitConfig())
	f.SpawnMedkits(entity.Vec2{})

	f.Clear()

	assert.Empty(t, f.Medkits())
}

func TestRewardOnDeath(t *testing.T) {
	sink := &recordingProgression{}
	e := newTestEnemy(1, entity.Vec2{})
	RewardOnDeath(e, DefaultRewardRange(), sink, testRNG())

	e.TakeDamage(1)
	assert.Equal(t, 0, sink.coins)

	e.TakeDamage(100)
	assert.GreaterOrEqual(t, sink.coins, 1)
	assert.LessOrEqual(t, sink.coins, 3)
	assert.GreaterOrEqual(t, sink.exp, 1)
	assert.LessOrEqual(t, sink.exp, 2)
}

func TestRewardOnDeath_Cancel(t *testing.T) {
	sink := &recordingProgression{}
	e := newTestEnemy(1, entity.Vec2{})
	cancel := RewardOnDeath(e, RewardRange{CoinsMin: 5, CoinsMax: 5}, sink, testRNG())

	cancel()
	e.TakeDamage(100)

	assert.Equal(t, 0, sink.coins)
}

func TestRewardOnDeath_InvertedRange(t *testing.T) {
	sink := &recordingProgression{}
	e := newTestEnemy(1, entity.Vec2{})
	RewardOnDeath(e, RewardRange{CoinsMin: 4, CoinsMax: 1, ExpMin: -3, ExpMax: -1}, sink, testRNG())

	e.TakeDamage(100)

	assert.Equal(t, 4, sink.coins)
	assert.Equal(t, 0, sink.exp)
}
