package main

import (
	"fmt"
	"io"

	"github.com/younwookim/horde/internal/application/replay"
	"github.com/younwookim/horde/internal/application/sim"
	"github.com/younwookim/horde/internal/infrastructure/config"
)

// runReplay re-simulates a recording without a window.
// Rewards are discarded so the save data is untouched.
func runReplay(w io.Writer, cfg *config.GameConfig, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	s := replay.Play(cfg, *data, sim.Options{})
	sum, over := s.Summary()
	if !over {
		coins, exp := s.Earned()
		fmt.Fprintf(w, "Replay ended after %d frames at wave %d with the player alive\n", s.Frames(), s.Wave())
		fmt.Fprintf(w, "Kills %d  Coins +%d  Exp +%d\n", s.Kills(), coins, exp)
		return nil
	}
	printSummary(w, sum)
	return nil
}

func printSummary(w io.Writer, sum sim.RunSummary) {
	fmt.Fprintf(w, "Run %s (seed %d)\n", sum.ID, sum.Seed)
	fmt.Fprintf(w, "Died on wave %d after %.1fs (%d frames)\n", sum.Wave, sum.Duration, sum.Frames)
	fmt.Fprintf(w, "Cleared %d  Kills %d  Coins +%d  Exp +%d\n", sum.WavesCleared, sum.Kills, sum.Coins, sum.Exp)
	if sum.BossDefeated {
		fmt.Fprintln(w, "Boss defeated")
	}
}
