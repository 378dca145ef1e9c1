package playing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/horde/internal/application/progression"
	"github.com/younwookim/horde/internal/application/sim"
	"github.com/younwookim/horde/internal/application/state"
)

func hudLines(s *sim.Simulation) []string {
	p := s.Player()
	coins, exp := s.Earned()
	lines := []string{
		fmt.Sprintf("Wave %d  Enemies %d", s.Wave(), s.EnemiesRemaining()),
		fmt.Sprintf("HP %d/%d", p.Health.Current(), p.Health.Max()),
		fmt.Sprintf("Coins +%d  Exp +%d", coins, exp),
	}
	if s.Phase() == state.PhaseIntermission {
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs (N to skip)", s.IntermissionRemaining()))
	}
	if boss, ok := s.BossActive(); ok {
		lines = append(lines, fmt.Sprintf("BOSS %s %d/%d", boss.Kind, boss.Health.Current(), boss.Health.Max()))
	}
	if p.Stats.MirrorFire {
		lines = append(lines, "Mirror fire")
	}
	return lines
}

func summaryText(sum sim.RunSummary, profile *progression.Profile) string {
	var b strings.Builder
	b.WriteString("GAME OVER\n\n")
	fmt.Fprintf(&b, "Wave %d  Cleared %d  Kills %d\n", sum.Wave, sum.WavesCleared, sum.Kills)
	fmt.Fprintf(&b, "Coins +%d  Exp +%d\n", sum.Coins, sum.Exp)
	if sum.BossDefeated {
		b.WriteString("Boss defeated!\n")
	}
	if profile != nil {
		best := fmt.Sprintf("Best wave %d", profile.Meta.BestWave())
		if profile.Meta.NewBest() {
			best += " (new)"
		}
		fmt.Fprintf(&b, "%s\nWallet %d coins  %d exp\n\n", best, profile.Meta.Coins(), profile.Meta.Exp())
		for _, line := range shopLines(profile.Upgrades) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("\nZ: restart  Q: quit")
	return b.String()
}

// shopLines lists the first tracks, one per digit key
func shopLines(u *progression.Upgrades) []string {
	var lines []string
	for i, t := range u.Types() {
		if i >= len(shopKeys) {
			break
		}
		status := ""
		switch err := u.Available(t); {
		case errors.Is(err, progression.ErrUpgradeLocked):
			status = "locked"
		case errors.Is(err, progression.ErrUpgradeMaxed):
			status = "max"
		default:
			price, _ := u.Price(t)
			status = fmt.Sprintf("%d coins", price)
		}
		lines = append(lines, fmt.Sprintf("%d) %-12s lv %-2d %s", i+1, t, u.Level(t), status))
	}
	return lines
}
