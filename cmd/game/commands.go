package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/younwookim/horde/internal/application/progression"
	"github.com/younwookim/horde/internal/infrastructure/storage"
)

func buyUpgrade(w io.Writer, profile *progression.Profile, name string) error {
	t := progression.UpgradeType(name)
	if err := profile.Upgrades.TryBuy(t); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s lv %d (%d coins left)\n", t, profile.Upgrades.Level(t), profile.Meta.Coins())
	return nil
}

func printHistory(w io.Writer, history *storage.History, limit int) error {
	runs, err := history.List(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs yet")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENDED\tWAVE\tKILLS\tCOINS\tEXP\tBOSS\tID")
	for _, r := range runs {
		boss := "-"
		if r.BossWon {
			boss = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.EndedAt.Format("2006-01-02 15:04"), r.Wave, r.Kills, r.Coins, r.Exp, boss, r.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	best, ok, err := history.Best()
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(w, "\nBest: wave %d with %d kills (%s)\n", best.Wave, best.Kills, best.ID)
	}
	return nil
}
