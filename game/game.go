// Package game runs the particle field in a raylib window or headless.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/headless"
	"github.com/pthm-cable/glowfield/renderer"
	"github.com/pthm-cable/glowfield/stage"
	"github.com/pthm-cable/glowfield/telemetry"
	"github.com/pthm-cable/glowfield/theme"
	"github.com/pthm-cable/glowfield/ui"
)

// DT is the simulated frame length in headless mode.
const DT = time.Second / 60

// backgroundAccentMix is the share of the link color in the backdrop's bottom edge.
const backgroundAccentMix = 0.06

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	ThemeFile      string
	Headless       bool
	ClickEvery     int // Headless only: synthesize a click every N ticks (0 = never)
}

// Game owns the stage and everything the host needs around it.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	// Time
	mock  *clock.Mock // headless only
	sched *clock.Scheduler
	tick  int32

	stage *stage.Stage

	// Hosts; exactly one is set
	window   *renderer.WindowContainer
	headless *headless.Container

	// Graphics
	background *renderer.Background
	hud        *ui.HUD
	pointer    stage.PointerTracker
	theme      theme.Theme
	visible    bool

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	monitor   *telemetry.FrameMonitor
}

// NewGameWithOptions creates a game from the global config and starts the
// field. Graphical mode requires an open raylib window.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		cfg:     cfg,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		visible: true,
		perf:    telemetry.NewPerfCollector(clock.NewReal(), cfg.Screen.TargetFPS),
	}

	var provider clock.Provider
	var container field.Container
	if opts.Headless {
		g.mock = clock.NewMock(time.Now())
		provider = g.mock
		g.headless = headless.NewContainer(float64(cfg.Screen.Width), float64(cfg.Screen.Height))
		container = g.headless
	} else {
		provider = clock.NewReal()
		g.window = renderer.NewWindowContainer()
		container = g.window
	}
	g.sched = clock.NewScheduler(provider)

	t, err := theme.Load(opts.ThemeFile, theme.Parse(cfg.Theme.Default))
	if err != nil {
		slog.Warn("theme_load_failed", "error", err)
	}
	g.theme = t
	g.background = renderer.NewBackground(
		t.Background(cfg.Theme),
		components.ColorFrom(cfg.Render.LinkColor),
		backgroundAccentMix,
	)
	g.hud = ui.NewHUD(10, 10, 230)

	window := opts.StatsWindowSec
	if window <= 0 {
		window = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(time.Duration(window*float64(time.Second)), provider.Now())

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	stageOpts := []stage.Option{
		stage.WithSeed(opts.Seed),
		stage.WithCollector(g.collector),
	}
	if cfg.Perf.Enabled {
		g.monitor = telemetry.NewFrameMonitor(provider, cfg.Perf.LowFPS, cfg.Derived.SampleEvery)
		stageOpts = append(stageOpts, stage.WithMonitor(g.monitor))
	}
	g.stage = stage.New(container, g.sched, cfg, stageOpts...)

	if err := g.stage.Start(); err != nil {
		g.output.Close()
		return nil, fmt.Errorf("starting field: %w", err)
	}

	slog.Info("game_started",
		"headless", opts.Headless,
		"seed", opts.Seed,
		"theme", string(g.theme),
		"stats_window", window,
	)
	return g, nil
}

// Update polls input and pumps the scheduler once.
func (g *Game) Update() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseScheduler)
	g.sched.Advance()
	g.tick++
}

// Draw composites the field over the backdrop and draws the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.perf.StartPhase(telemetry.PhaseComposite)
	g.background.Draw()
	g.window.Composite()

	g.perf.StartPhase(telemetry.PhaseHUD)
	actions := g.hud.Draw(g.hudData())
	g.hud.DrawControls(int32(rl.GetScreenHeight()), g.theme, "[H] HUD  [T] Theme  [R] Restart  [V] Hide/Show  [Esc] Quit")

	rl.EndDrawing()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrameTime(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	g.flushTelemetry()
	g.perf.EndTick()
	g.perf.RecordFrame()

	g.applyActions(actions)
}

// UpdateHeadless advances one simulated frame without graphics.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	if g.opts.ClickEvery > 0 && g.tick > 0 && int(g.tick)%g.opts.ClickEvery == 0 {
		w, h := g.headless.Bounds()
		g.stage.Click(g.rng.Float64()*w, g.rng.Float64()*h)
	}

	g.perf.StartPhase(telemetry.PhaseScheduler)
	g.mock.Advance(DT)
	g.sched.Advance()
	g.tick++

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrameTime(DT)
	g.flushTelemetry()
	g.perf.EndTick()
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Title:    g.cfg.Screen.Title,
		State:    field.Stopped.String(),
		FPS:      rl.GetFPS(),
		Restarts: g.stage.Restarts(),
		Dimmed:   g.stage.Dimmed(),
		Theme:    g.theme,
		Revert:   g.cfg.Pointer.RevertHighlight,
	}
	if f := g.stage.Field(); f != nil {
		data.State = f.State().String()
		data.Particles = f.Count()
		data.Links = len(f.Links())
		data.PointerOver = f.PointerOver()
	}
	return data
}

func (g *Game) applyActions(a ui.HUDActions) {
	if a.ToggleTheme {
		g.toggleTheme()
	}
	if a.ToggleRevert {
		g.cfg.Pointer.RevertHighlight = !g.cfg.Pointer.RevertHighlight
		slog.Info("revert_highlight_toggled", "enabled", g.cfg.Pointer.RevertHighlight)
	}
	if a.Restart {
		g.restart()
	}
}

func (g *Game) toggleTheme() {
	g.theme = g.theme.Toggle()
	g.background.SetBase(g.theme.Background(g.cfg.Theme))
	if err := theme.Save(g.opts.ThemeFile, g.theme); err != nil {
		slog.Error("failed to save theme", "error", err)
	}
	slog.Info("theme_changed", "theme", string(g.theme))
}

// Stage returns the stage.
func (g *Game) Stage() *stage.Stage {
	return g.stage
}

// Tick returns the number of frames run.
func (g *Game) Tick() int32 {
	return g.tick
}

// Theme returns the current theme.
func (g *Game) Theme() theme.Theme {
	return g.theme
}

// Unload tears everything down and closes output files.
func (g *Game) Unload() {
	g.stage.Unload()
	if g.window != nil {
		g.window.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
