package system

import "github.com/younwookim/horde/internal/domain/entity"

// InputState holds the player's intent for one frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	ShootLeft  bool
	ShootRight bool
	ShootUp    bool
	ShootDown  bool

	// SkipIntermission starts the next wave early
	SkipIntermission bool
}

// MoveVector returns the normalized movement direction (screen axes, +Y down)
func (s InputState) MoveVector() entity.Vec2 {
	var v entity.Vec2
	if s.Left {
		v.X--
	}
	if s.Right {
		v.X++
	}
	if s.Up {
		v.Y--
	}
	if s.Down {
		v.Y++
	}
	return v.Normalize()
}

// ShootVector returns a single cardinal shooting direction, or zero.
// Vertical keys win over horizontal ones when both are held.
func (s InputState) ShootVector() entity.Vec2 {
	switch {
	case s.ShootUp && !s.ShootDown:
		return entity.Vec2{Y: -1}
	case s.ShootDown && !s.ShootUp:
		return entity.Vec2{Y: 1}
	case s.ShootLeft && !s.ShootRight:
		return entity.Vec2{X: -1}
	case s.ShootRight && !s.ShootLeft:
		return entity.Vec2{X: 1}
	default:
		return entity.Vec2{}
	}
}
