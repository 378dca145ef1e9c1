package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/horde/internal/application/game"
	"github.com/younwookim/horde/internal/application/progression"
	"github.com/younwookim/horde/internal/application/scene/playing"
	"github.com/younwookim/horde/internal/infrastructure/config"
	"github.com/younwookim/horde/internal/infrastructure/metrics"
	"github.com/younwookim/horde/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

const appName = "horde"

type options struct {
	record  string
	replay  string
	history int
	buy     string
	seed    int64
	data    string
	metrics string
}

func main() {
	var opts options
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record run.json.zst)")
	flag.StringVar(&opts.replay, "replay", "", "Re-simulate a recorded run headlessly and print its summary")
	flag.IntVar(&opts.history, "history", 0, "Print the last N finished runs and exit")
	flag.StringVar(&opts.buy, "buy", "", "Buy one level of an upgrade (e.g., -buy fireRate) and exit")
	flag.Int64Var(&opts.seed, "seed", 0, "Run seed (0 picks one from the clock)")
	flag.StringVar(&opts.data, "data", "", "Directory for run history (default: user config dir)")
	flag.StringVar(&opts.metrics, "metrics", "", "Serve prometheus metrics on addr (e.g., :9090)")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if opts.replay != "" {
		return runReplay(os.Stdout, cfg, opts.replay)
	}

	store, err := storage.OpenGdataStore(appName)
	if err != nil {
		return err
	}
	profile, err := progression.OpenProfile(store, cfg)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if opts.buy != "" {
		return buyUpgrade(os.Stdout, profile, opts.buy)
	}

	dataDir := opts.data
	if dataDir == "" {
		if dataDir, err = defaultDataDir(); err != nil {
			return err
		}
	}
	history, err := storage.OpenHistory(dataDir)
	if err != nil {
		return err
	}
	defer history.Close()

	if opts.history > 0 {
		return printHistory(os.Stdout, history, opts.history)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var recorder *metrics.Recorder
	if opts.metrics != "" {
		recorder = metrics.NewRecorder()
		go func() {
			if err := recorder.Serve(ctx, opts.metrics); err != nil {
				log.Printf("[Metrics] Warning: %v", err)
			}
		}()
		log.Printf("Metrics on http://%s/metrics", opts.metrics)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	display := cfg.Run.Display
	arena := playing.New(cfg, playing.Deps{
		Profile: profile,
		History: history,
		Metrics: recorder,
	}, seed, opts.record)
	g := game.New(arena, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle("Horde")
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}

// loadConfig loads the embedded configs
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func defaultDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}
