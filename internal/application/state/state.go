package state

// GameState represents the current state of the game screen
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Phase is the wave cycle phase of a run
type Phase int

const (
	PhaseAwaitingTarget Phase = iota
	PhaseWaveRunning
	PhaseIntermission
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingTarget:
		return "AwaitingTarget"
	case PhaseWaveRunning:
		return "WaveRunning"
	case PhaseIntermission:
		return "Intermission"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further waves will start
func (p Phase) Terminal() bool {
	return p == PhaseGameOver
}
