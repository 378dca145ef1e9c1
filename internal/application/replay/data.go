package replay

import (
	"github.com/younwookim/horde/internal/application/system"
	"github.com/younwookim/horde/internal/domain/entity"
)

// Version is written into every replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	SL bool `json:"sl,omitempty"` // ShootLeft
	SR bool `json:"sr,omitempty"` // ShootRight
	SU bool `json:"su,omitempty"` // ShootUp
	SD bool `json:"sd,omitempty"` // ShootDown
	N  bool `json:"n,omitempty"`  // SkipIntermission
}

// Loadout is the player setup a run started with
type Loadout struct {
	Stats      entity.PlayerStats `json:"stats"`
	BossLocked bool               `json:"bossLocked,omitempty"`
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Loadout   *Loadout     `json:"loadout,omitempty"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		SL: in.ShootLeft,
		SR: in.ShootRight,
		SU: in.ShootUp,
		SD: in.ShootDown,
		N:  in.SkipIntermission,
	}
}

// Input converts the frame back to controller input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:             fi.L,
		Right:            fi.R,
		Up:               fi.U,
		Down:             fi.D,
		ShootLeft:        fi.SL,
		ShootRight:       fi.SR,
		ShootUp:          fi.SU,
		ShootDown:        fi.SD,
		SkipIntermission: fi.N,
	}
}
