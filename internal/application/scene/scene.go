// Package scene defines the Scene interface for game screens.
//
// The arena run and its game-over summary are scenes. The game loop
// delegates to whichever scene is current.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game cleanly
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Name identifies the scene in logs
	Name() string

	// Update advances the scene by dt seconds (one fixed tick).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to close the window, any other error to abort.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for flushing recordings and run history.
	OnExit()
}
