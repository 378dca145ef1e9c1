package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, "slime", Vec2{3, 4}, 0.4, EnemyStats{MaxHP: 10, ContactDamage: 2, MoveSpeed: 3.5})

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(1), enemy.ID)
	assert.Equal(t, "slime", enemy.Kind)
	assert.Equal(t, Vec2{3, 4}, enemy.Position())
	assert.Equal(t, 0.4, enemy.Radius())
	assert.Equal(t, 10, enemy.Health.Current())
	assert.True(t, enemy.Alive())
	assert.Equal(t, FactionEnemy, enemy.Faction())
}

func TestEnemy_SetStatsSanitizes(t *testing.T) {
	enemy := NewEnemy(1, "slime", Vec2{}, 0.4, EnemyStats{MaxHP: 0, ContactDamage: -1, MoveSpeed: 0})

	stats := enemy.Stats()
	assert.Equal(t, 1, stats.MaxHP)
	assert.Equal(t, 0, stats.ContactDamage)
	assert.Equal(t, 0.1, stats.MoveSpeed)
}

func TestEnemy_ApplyWaveMultipliers(t *testing.T) {
	tests := []struct {
		name              string
		base              EnemyStats
		h, d, s           float64
		wantHP, wantDmg   int
		wantSpeed         float64
	}{
		{"identity", EnemyStats{100, 10, 4}, 1, 1, 1, 100, 10, 4},
		{"scaled", EnemyStats{100, 10, 4}, 1.15, 1.1, 1.05, 115, 11, 4.2},
		{"rounds", EnemyStats{3, 3, 1}, 1.5, 1.5, 1, 5, 5, 1},
		{"hp floor", EnemyStats{1, 1, 1}, 0.1, 0.1, 1, 1, 1, 1},
		{"multiplier floor", EnemyStats{1000, 100, 10}, -5, 0, 0, 10, 1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy(1, "slime", Vec2{}, 0.4, tt.base)
			enemy.ApplyWaveMultipliers(tt.h, tt.d, tt.s)

			stats := enemy.Stats()
			assert.Equal(t, tt.wantHP, stats.MaxHP)
			assert.Equal(t, tt.wantDmg, stats.ContactDamage)
			assert.InDelta(t, tt.wantSpeed, stats.MoveSpeed, 1e-9)
			assert.Equal(t, tt.wantHP, enemy.Health.Current())
			assert.Equal(t, tt.base, enemy.BaseStats())
		})
	}
}

func TestEnemy_ApplyWaveMultipliersIsIdempotent(t *testing.T) {
	enemy := NewEnemy(1, "slime", Vec2{}, 0.4, EnemyStats{MaxHP: 100, ContactDamage: 10, MoveSpeed: 3})

	enemy.ApplyWaveMultipliers(1.3, 1.2, 1.1)
	once := enemy.Stats()
	enemy.ApplyWaveMultipliers(1.3, 1.2, 1.1)

	assert.Equal(t, once, enemy.Stats())
	assert.Equal(t, 130, once.MaxHP)
}

func TestEnemy_RangedKeepsZeroContactDamage(t *testing.T) {
	enemy := NewEnemy(1, "shooter", Vec2{}, 0.4, EnemyStats{MaxHP: 5, ContactDamage: 0, MoveSpeed: 3})
	enemy.ApplyWaveMultipliers(2, 2, 1)

	assert.Equal(t, 0, enemy.Stats().ContactDamage)
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy(1, "slime", Vec2{}, 0.4, EnemyStats{MaxHP: 3, ContactDamage: 1, MoveSpeed: 1})

	assert.True(t, enemy.TakeDamage(2))
	assert.True(t, enemy.Alive())
	assert.True(t, enemy.TakeDamage(2))
	assert.False(t, enemy.Alive())
	assert.False(t, enemy.TakeDamage(1))
}
