package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaction_String(t *testing.T) {
	assert.Equal(t, "Player", FactionPlayer.String())
	assert.Equal(t, "Enemy", FactionEnemy.String())
	assert.Equal(t, "Unknown", Faction(9).String())
}

func TestFaction_Opposes(t *testing.T) {
	assert.True(t, FactionPlayer.Opposes(FactionEnemy))
	assert.True(t, FactionEnemy.Opposes(FactionPlayer))
	assert.False(t, FactionEnemy.Opposes(FactionEnemy))
}

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 1}

	assert.Equal(t, Vec2{4, 5}, a.Add(b))
	assert.Equal(t, Vec2{2, 3}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 5.0, a.Dist(Vec2{}))
	assert.InDelta(t, 1.0, a.Normalize().Len(), 1e-9)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, b.IsZero())
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, 1e-9)
	assert.InDelta(t, 1.0, v.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, v.Angle(), 1e-9)
}

func TestPlayerStats(t *testing.T) {
	stats := DefaultPlayerStats()

	assert.InDelta(t, 0.25, stats.FireInterval(), 1e-9)
	assert.Equal(t, 1, stats.Volley().Count)

	stats.FireRate = 0
	assert.InDelta(t, 100.0, stats.FireInterval(), 1e-9)

	stats.Count = 0
	assert.Equal(t, 1, stats.Volley().Count)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(1, Vec2{1, 1}, 0.5, DefaultPlayerStats())

	assert.Equal(t, 5, p.Health.Current())
	assert.True(t, p.Alive())
	assert.Equal(t, FactionPlayer, p.Faction())
	assert.Equal(t, 0.5, p.Radius())

	p.TakeDamage(10)
	assert.False(t, p.Alive())
}
