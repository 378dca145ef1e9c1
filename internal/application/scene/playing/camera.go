package playing

import "github.com/younwookim/horde/internal/domain/entity"

// camera maps world units to screen pixels, following a focus point
// while keeping the arena edge on screen
type camera struct {
	ppu     float64
	screenW float64
	screenH float64
	worldW  float64
	worldH  float64
	offX    float64
	offY    float64
}

func newCamera(ppu float64, screenW, screenH int, worldW, worldH float64) *camera {
	if ppu <= 0 {
		ppu = 1
	}
	return &camera{
		ppu:     ppu,
		screenW: float64(screenW),
		screenH: float64(screenH),
		worldW:  worldW * ppu,
		worldH:  worldH * ppu,
	}
}

// follow centers the view on focus. An arena smaller than the screen is centered instead.
func (c *camera) follow(focus entity.Vec2) {
	c.offX = axisOffset(focus.X*c.ppu, c.screenW, c.worldW)
	c.offY = axisOffset(focus.Y*c.ppu, c.screenH, c.worldH)
}

func axisOffset(focus, screen, world float64) float64 {
	if world <= screen {
		return (world - screen) / 2
	}
	return min(max(focus-screen/2, 0), world-screen)
}

// toScreen converts a world position to pixels
func (c *camera) toScreen(p entity.Vec2) (x, y float64) {
	return p.X*c.ppu - c.offX, p.Y*c.ppu - c.offY
}

// scale converts a world length to pixels
func (c *camera) scale(v float64) float64 {
	return v * c.ppu
}
