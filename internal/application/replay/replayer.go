package replay

import (
	"time"

	"github.com/younwookim/horde/internal/application/sim"
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/infrastructure/config"
)

const defaultDT = 1.0 / 60

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// DT returns the recorded fixed step
func (r *Replayer) DT() float64 {
	if r.data.DT <= 0 {
		return defaultDT
	}
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Play re-simulates the recording headlessly.
// opts.Seed is replaced by the recorded seed, and a recorded loadout
// replaces opts.Stats and opts.BossLocked.
func Play(cfg *config.GameConfig, data ReplayData, opts sim.Options) *sim.Simulation {
	r := NewReplayer(data)
	opts.Seed = r.Seed()
	if data.Loadout != nil {
		stats := data.Loadout.Stats
		opts.Stats = &stats
		opts.BossLocked = data.Loadout.BossLocked
	}
	s := sim.New(cfg, opts)
	for !s.Over() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		s.Update(in, r.DT())
	}
	return s
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		DT:        defaultDT,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}
