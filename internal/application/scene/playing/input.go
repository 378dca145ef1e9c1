package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/horde/internal/application/system"
)

// keyboard abstracts key polling so the scene can be driven in tests
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// readInput maps WASD to movement, arrow keys to shooting and N to skipping the intermission
func readInput(kb keyboard) system.InputState {
	return system.InputState{
		Left:  kb.Pressed(ebiten.KeyA),
		Right: kb.Pressed(ebiten.KeyD),
		Up:    kb.Pressed(ebiten.KeyW),
		Down:  kb.Pressed(ebiten.KeyS),

		ShootLeft:  kb.Pressed(ebiten.KeyArrowLeft),
		ShootRight: kb.Pressed(ebiten.KeyArrowRight),
		ShootUp:    kb.Pressed(ebiten.KeyArrowUp),
		ShootDown:  kb.Pressed(ebiten.KeyArrowDown),

		SkipIntermission: kb.JustPressed(ebiten.KeyN),
	}
}

var shopKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// shopSelection returns the index of the digit key pressed this frame
func shopSelection(kb keyboard) (int, bool) {
	for i, k := range shopKeys {
		if kb.JustPressed(k) {
			return i, true
		}
	}
	return 0, false
}
