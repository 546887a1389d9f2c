// Package browser runs the particle field on ebiten, the backend used for
// the WebAssembly build embedded in the portfolio page.
package browser

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/stage"
	"github.com/pthm-cable/glowfield/telemetry"
	"github.com/pthm-cable/glowfield/theme"
)

// Game implements ebiten.Game around a stage.
type Game struct {
	cfg       *config.Config
	logger    *slog.Logger
	sched     *clock.Scheduler
	container *Container
	stage     *stage.Stage

	pointer stage.PointerTracker
	touches []ebiten.TouchID
	focused bool
	resized bool
	theme   theme.Theme
}

// NewGame builds the stage and starts the field at the configured screen size.
func NewGame(cfg *config.Config, seed int64, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sched := clock.NewScheduler(clock.NewReal())
	container := NewContainer(cfg.Screen.Width, cfg.Screen.Height)

	opts := []stage.Option{stage.WithLogger(logger), stage.WithSeed(seed)}
	if cfg.Perf.Enabled {
		opts = append(opts, stage.WithMonitor(
			telemetry.NewFrameMonitor(clock.NewReal(), cfg.Perf.LowFPS, cfg.Derived.SampleEvery),
		))
	}

	g := &Game{
		cfg:       cfg,
		logger:    logger,
		sched:     sched,
		container: container,
		stage:     stage.New(container, sched, cfg, opts...),
		focused:   true,
		theme:     theme.Parse(cfg.Theme.Default),
	}
	if err := g.stage.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update feeds input to the stage and runs one scheduler pass.
func (g *Game) Update() error {
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.stage.SetVisible(focused)
	}

	if g.resized {
		g.resized = false
		g.stage.Resize()
	}

	x, y := ebiten.CursorPosition()
	g.pointer.Update(g.stage, float64(x), float64(y), g.container.Contains(x, y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.container.Contains(x, y) {
		g.stage.Click(float64(x), float64(y))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		g.stage.PointerMove(float64(tx), float64(ty))
		g.stage.Click(float64(tx), float64(ty))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.theme = g.theme.Toggle()
		g.logger.Info("theme_toggled", "theme", string(g.theme))
	}

	g.sched.Advance()
	return nil
}

// Draw paints the theme background and composites the field over it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(NRGBA(g.theme.Background(g.cfg.Theme), 1))
	g.container.Composite(screen)
}

// Layout tracks the outside size; a change is forwarded as a resize on the
// next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.container.SetBounds(outsideWidth, outsideHeight) {
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// Stage returns the stage the game drives.
func (g *Game) Stage() *stage.Stage {
	return g.stage
}

// Unload stops the stage.
func (g *Game) Unload() {
	g.stage.Unload()
}
