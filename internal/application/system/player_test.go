package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/horde/internal/domain/entity"
)

func TestInputState_MoveVector(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  entity.Vec2
	}{
		{"idle", InputState{}, entity.Vec2{}},
		{"left", InputState{Left: true}, entity.Vec2{X: -1}},
		{"up", InputState{Up: true}, entity.Vec2{Y: -1}},
		{"opposites cancel", InputState{Left: true, Right: true}, entity.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.MoveVector())
		})
	}

	diag := InputState{Right: true, Down: true}.MoveVector()
	assert.InDelta(t, 1.0, diag.Len(), 1e-9)
}

func TestInputState_ShootVector(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  entity.Vec2
	}{
		{"none", InputState{}, entity.Vec2{}},
		{"right", InputState{ShootRight: true}, entity.Vec2{X: 1}},
		{"left", InputState{ShootLeft: true}, entity.Vec2{X: -1}},
		{"down", InputState{ShootDown: true}, entity.Vec2{Y: 1}},
		{"vertical wins", InputState{ShootUp: true, ShootRight: true}, entity.Vec2{Y: -1}},
		{"opposites cancel", InputState{ShootLeft: true, ShootRight: true}, entity.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.ShootVector())
		})
	}
}

func TestPlayerController_Moves(t *testing.T) {
	p := newTestPlayer(entity.Vec2{})
	c := NewPlayerController(p, nil, nil)

	c.Update(InputState{Right: true}, 0.5)

	assert.InDelta(t, 2.5, p.Pos.X, 1e-9)
}

func TestPlayerController_SlidesAlongWalls(t *testing.T) {
	p := newTestPlayer(entity.Vec2{})
	c := NewPlayerController(p, nil, blockAbove{x: 0.5})

	c.Update(InputState{Right: true, Down: true}, 0.2)

	assert.Equal(t, 0.0, p.Pos.X, "x blocked")
	assert.Greater(t, p.Pos.Y, 0.0, "slides along y")
}

func TestPlayerController_FireCooldown(t *testing.T) {
	pool := NewProjectilePool(entity.FactionPlayer, 0)
	p := newTestPlayer(entity.Vec2{})
	c := NewPlayerController(p, pool, nil)
	shoot := InputState{ShootRight: true}

	c.Update(shoot, 1.0/60)
	assert.Len(t, pool.Active(), 1)

	for i := 0; i < 10; i++ {
		c.Update(shoot, 1.0/60)
	}
	assert.Len(t, pool.Active(), 1, "fire rate 4/s")

	for i := 0; i < 10; i++ {
		c.Update(shoot, 1.0/60)
	}
	assert.Len(t, pool.Active(), 2)
}

func TestPlayerController_MirrorFire(t *testing.T) {
	pool := NewProjectilePool(entity.FactionPlayer, 0)
	p := newTestPlayer(entity.Vec2{})
	p.Stats.MirrorFire = true
	c := NewPlayerController(p, pool, nil)

	c.Update(InputState{ShootUp: true}, 1.0/60)

	active := pool.Active()
	require.Len(t, active, 2)
	assert.InDelta(t, -1.0, active[0].Dir.Y, 1e-9)
	assert.InDelta(t, 1.0, active[1].Dir.Y, 1e-9)
}

func TestPlayerController_DeadPlayer(t *testing.T) {
	pool := NewProjectilePool(entity.FactionPlayer, 0)
	p := newTestPlayer(entity.Vec2{})
	c := NewPlayerController(p, pool, nil)

	_, ok := c.Target()
	assert.True(t, ok)

	p.TakeDamage(1000)
	c.Update(InputState{Right: true, ShootRight: true}, 0.1)

	_, ok = c.Target()
	assert.False(t, ok)
	assert.Equal(t, entity.Vec2{}, p.Pos)
	assert.Empty(t, pool.Active())
}
