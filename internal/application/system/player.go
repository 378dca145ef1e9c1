package system

import "github.com/younwookim/horde/internal/domain/entity"

// PlayerController applies input to the player: movement and shooting
type PlayerController struct {
	player   *entity.Player
	pool     *ProjectilePool
	terrain  Terrain
	cooldown float64
}

// NewPlayerController creates a controller firing into pool
func NewPlayerController(p *entity.Player, pool *ProjectilePool, terrain Terrain) *PlayerController {
	return &PlayerController{player: p, pool: pool, terrain: terrain}
}

// Player returns the controlled player
func (c *PlayerController) Player() *entity.Player { return c.player }

// Target implements TargetProvider; unresolved once the player is dead
func (c *PlayerController) Target() (Target, bool) {
	if c.player == nil || !c.player.Alive() {
		return nil, false
	}
	return c.player, true
}

// Update moves and fires for one frame
func (c *PlayerController) Update(in InputState, dt float64) {
	if c.player == nil || !c.player.Alive() {
		return
	}
	c.move(in.MoveVector(), dt)
	c.shoot(in.ShootVector(), dt)
}

// move slides along each axis separately when the full step is blocked
func (c *PlayerController) move(dir entity.Vec2, dt float64) {
	if dir.IsZero() {
		return
	}
	step := dir.Scale(c.player.Stats.MoveSpeed * dt)
	from := c.player.Pos

	candidates := []entity.Vec2{
		from.Add(step),
		{X: from.X + step.X, Y: from.Y},
		{X: from.X, Y: from.Y + step.Y},
	}
	for _, to := range candidates {
		if c.walkable(to) {
			c.player.Pos = to
			return
		}
	}
}

func (c *PlayerController) walkable(p entity.Vec2) bool {
	return c.terrain == nil || c.terrain.Walkable(p)
}

func (c *PlayerController) shoot(dir entity.Vec2, dt float64) {
	if c.cooldown > 0 {
		c.cooldown -= dt
	}
	if dir.IsZero() || c.cooldown > 0 {
		return
	}
	c.cooldown = c.player.Stats.FireInterval()

	volley := c.player.Stats.Volley()
	FireVolley(c.pool, c.player.Pos, dir, volley)
	if c.player.Stats.MirrorFire {
		FireVolley(c.pool, c.player.Pos, dir.Scale(-1), volley)
	}
}
