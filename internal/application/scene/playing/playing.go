// Package playing provides the arena gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/horde/internal/application/progression"
	"github.com/younwookim/horde/internal/application/replay"
	"github.com/younwookim/horde/internal/application/scene"
	"github.com/younwookim/horde/internal/application/sim"
	"github.com/younwookim/horde/internal/application/state"
	"github.com/younwookim/horde/internal/domain/entity"
	"github.com/younwookim/horde/internal/infrastructure/config"
	"github.com/younwookim/horde/internal/infrastructure/metrics"
	"github.com/younwookim/horde/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorWall        = color.RGBA{80, 80, 100, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorEnemy       = color.RGBA{200, 100, 100, 255}
	colorBoss        = color.RGBA{170, 60, 200, 255}
	colorPlayerShot  = color.RGBA{255, 200, 100, 255}
	colorEnemyShot   = color.RGBA{255, 100, 100, 255}
	colorMedkit      = color.RGBA{240, 240, 240, 255}
	colorMedkitCross = color.RGBA{220, 40, 40, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
)

// Deps are the services a run reports to. Every field is optional.
type Deps struct {
	Profile *progression.Profile
	History *storage.History
	Metrics *metrics.Recorder
}

// Playing is the arena gameplay scene
type Playing struct {
	config  *config.GameConfig
	deps    Deps
	sim     *sim.Simulation
	state   state.GameState
	keys    keyboard
	cam     *camera
	screenW int
	screenH int
	dt      float64
	seed    int64

	summary     sim.RunSummary
	shopMessage string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates the scene and starts the first run with seed
func New(cfg *config.GameConfig, deps Deps, seed int64, recordFilename string) *Playing {
	display := cfg.Run.Display
	p := &Playing{
		config:         cfg,
		deps:           deps,
		keys:           ebitenKeys{},
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		dt:             1.0 / float64(display.Framerate),
		recordFilename: recordFilename,
	}
	p.start(seed)

	if recordFilename != "" {
		log.Printf("Recording enabled: %s (seed: %d)", recordFilename, seed)
	}
	return p
}

// Name implements scene.Scene
func (p *Playing) Name() string { return "playing" }

func (p *Playing) start(seed int64) {
	p.seed = seed
	stats := sim.PlayerStats(p.config.Run.Player)
	opts := sim.Options{Seed: seed}
	if pr := p.deps.Profile; pr != nil {
		pr.Meta.BeginRun()
		stats = pr.RunStats(stats)
		opts.Progression = pr.Meta
		opts.BossLocked = pr.BossLocked()
	}
	opts.Stats = &stats
	if p.deps.Metrics != nil {
		opts.Events = p.deps.Metrics
	}

	p.sim = sim.New(p.config, opts)
	w, h := p.sim.Arena().Size()
	p.cam = newCamera(p.config.Run.Display.PixelsPerUnit, p.screenW, p.screenH, w, h)
	p.state = state.StatePlaying
	p.summary = sim.RunSummary{}
	p.shopMessage = ""

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(seed, p.dt)
		p.recorder.SetLoadout(replay.Loadout{Stats: stats, BossLocked: opts.BossLocked})
	}
}

// Update proceeds the scene by one tick
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if p.keys.JustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		return nil, p.updateGameOver()
	}
	return nil, nil
}

func (p *Playing) updatePlaying(dt float64) {
	if p.keys.JustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if p.keys.JustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := readInput(p.keys)
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.sim.Update(input, dt)
	p.observe()

	if p.sim.Over() {
		p.endRun()
	}
}

func (p *Playing) observe() {
	m := p.deps.Metrics
	if m == nil {
		return
	}
	player, enemy := p.sim.PoolStats()
	m.ObservePool("player", player)
	m.ObservePool("enemy", enemy)
	m.SetEnemiesAlive(len(p.sim.Enemies()))
}

func (p *Playing) endRun() {
	p.state = state.StateGameOver
	p.summary, _ = p.sim.Summary()
	log.Printf("Run %s over at wave %d (%d kills, %d coins, %d exp)",
		p.summary.ID, p.summary.Wave, p.summary.Kills, p.summary.Coins, p.summary.Exp)

	if p.deps.History != nil {
		if err := p.deps.History.Record(p.summary.Record(time.Now())); err != nil {
			log.Printf("[Playing] Warning: failed to record run: %v", err)
		}
	}

	// Auto-save recording on game over
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

func (p *Playing) updateGameOver() error {
	if p.keys.JustPressed(ebiten.KeyQ) {
		return scene.ErrQuit
	}
	if p.keys.JustPressed(ebiten.KeyZ) || p.keys.JustPressed(ebiten.KeySpace) {
		p.restart()
		return nil
	}
	if i, ok := shopSelection(p.keys); ok && p.deps.Profile != nil {
		p.buy(i)
	}
	return nil
}

func (p *Playing) buy(i int) {
	upgrades := p.deps.Profile.Upgrades
	types := upgrades.Types()
	if i >= len(types) {
		return
	}
	t := types[i]
	if err := upgrades.TryBuy(t); err != nil {
		p.shopMessage = err.Error()
		return
	}
	p.shopMessage = fmt.Sprintf("Bought %s (lv %d)", t, upgrades.Level(t))
	log.Printf("Upgrade bought: %s lv %d", t, upgrades.Level(t))
}

func (p *Playing) restart() {
	p.start(time.Now().UnixNano())
	if p.recorder != nil {
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	p.cam.follow(p.sim.Player().Pos)

	p.drawArena(screen)
	p.drawMedkits(screen)
	p.drawEnemies(screen)
	p.drawProjectiles(screen)
	p.drawPlayer(screen)

	// Draw UI (HP bar, wave info) - always on top
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawArena(screen *ebiten.Image) {
	arena := p.sim.Arena()
	size := p.cam.scale(arena.CellSize())
	for row := 0; row < arena.Rows(); row++ {
		for col := 0; col < arena.Cols(); col++ {
			if !arena.Blocked(col, row) {
				continue
			}
			x, y := p.cam.toScreen(arena.CellCenter(col, row))
			ebitenutil.DrawRect(screen, x-size/2, y-size/2, size, size, colorWall)
		}
	}
}

func (p *Playing) drawCircle(screen *ebiten.Image, pos entity.Vec2, radius float64, c color.Color) {
	x, y := p.cam.toScreen(pos)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(max(1, p.cam.scale(radius))), c, true)
}

func (p *Playing) drawMedkits(screen *ebiten.Image) {
	for _, m := range p.sim.Medkits() {
		if m.Collected {
			continue
		}
		x, y := p.cam.toScreen(m.Pos)
		r := p.cam.scale(m.Radius)
		ebitenutil.DrawRect(screen, x-r, y-r, 2*r, 2*r, colorMedkit)
		ebitenutil.DrawRect(screen, x-r/4, y-r*0.75, r/2, r*1.5, colorMedkitCross)
		ebitenutil.DrawRect(screen, x-r*0.75, y-r/4, r*1.5, r/2, colorMedkitCross)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.sim.Enemies() {
		if !e.Alive() {
			continue
		}
		c := colorEnemy
		if e.Boss {
			c = colorBoss
		}
		p.drawCircle(screen, e.Pos, e.Size, c)

		// Health pip above damaged enemies
		if frac := e.Health.Fraction(); frac < 1 {
			x, y := p.cam.toScreen(e.Pos)
			w := p.cam.scale(2 * e.Size)
			top := y - p.cam.scale(e.Size) - 5
			ebitenutil.DrawRect(screen, x-w/2, top, w, 3, colorHealthBG)
			ebitenutil.DrawRect(screen, x-w/2, top, w*frac, 3, colorHealthFG)
		}
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	player, enemy := p.sim.Projectiles()
	for _, proj := range player {
		p.drawCircle(screen, proj.Pos, proj.Radius(), colorPlayerShot)
	}
	for _, proj := range enemy {
		p.drawCircle(screen, proj.Pos, proj.Radius(), colorEnemyShot)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.sim.Player()
	if !player.Alive() {
		return
	}
	p.drawCircle(screen, player.Pos, player.Size, colorPlayer)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*p.sim.Player().Health.Fraction(), barH, colorHealthFG)

	ebitenutil.DebugPrintAt(screen, strings.Join(hudLines(p.sim), "\n"), 10, 20)

	// Controls
	debugText := "WASD: Move | Arrows: Shoot | N: Next wave | ESC: Pause | F5: Save replay"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := summaryText(p.summary, p.deps.Profile)
	if p.shopMessage != "" {
		text += "\n\n" + p.shopMessage
	}
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-120, 60)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Run is already started in New
}

// OnExit is called when leaving this scene.
// A game-over recording was already saved by endRun.
func (p *Playing) OnExit() {
	if p.state != state.StateGameOver {
		p.saveRecording()
	}
}
