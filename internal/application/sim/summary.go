package sim

import (
	"time"

	"github.com/younwookim/horde/internal/infrastructure/storage"
)

// RunSummary describes a finished run
type RunSummary struct {
	ID           string
	Seed         int64
	Wave         int
	WavesCleared int
	Kills        int
	Coins        int
	Exp          int
	Duration     float64
	Frames       int
	BossDefeated bool
}

// Record converts the summary into a history entry ending at endedAt
func (s RunSummary) Record(endedAt time.Time) storage.RunRecord {
	return storage.RunRecord{
		ID:       s.ID,
		Seed:     s.Seed,
		Wave:     s.Wave,
		Kills:    s.Kills,
		Coins:    s.Coins,
		Exp:      s.Exp,
		Duration: s.Duration,
		BossWon:  s.BossDefeated,
		EndedAt:  endedAt,
	}
}
